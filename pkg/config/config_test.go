package config

import (
	"testing"
	"time"
)

func TestFromDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
		ok     bool
	}{
		{"heute", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), true},
		{"letzte_woche", now.AddDate(0, 0, -7), true},
		{"letzter_monat", now.AddDate(0, 0, -30), true},
		{"letzte_3_monate", now.AddDate(0, 0, -90), true},
		{"letztes_jahr", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, ok := FromDate(tt.period, now)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FromDate(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestHostEmails(t *testing.T) {
	cfg := &Config{Company: CompanyConfig{HostEmailsRaw: "a@x.example, b@x.example ,, c@x.example"}}

	got := cfg.HostEmails()
	want := []string{"a@x.example", "b@x.example", "c@x.example"}
	if len(got) != len(want) {
		t.Fatalf("HostEmails = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HostEmails[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := &Config{}
	if emails := empty.HostEmails(); emails != nil {
		t.Errorf("empty config should yield nil, got %v", emails)
	}
}

func TestCacheTTL(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{DurationHours: 2}}
	if got := cfg.CacheTTL(); got != 2*time.Hour {
		t.Errorf("CacheTTL = %v", got)
	}
}

func TestValidateReady(t *testing.T) {
	cfg := &Config{
		Fireflies: FirefliesConfig{APIKey: "ff-key"},
		AI:        AIConfig{Provider: "anthropic", AnthropicAPIKey: "sk-key"},
	}

	status := cfg.Validate()
	if !status.Ready || !status.FirefliesAPI || !status.AIProvider {
		t.Errorf("status = %+v", status)
	}
	if len(status.Messages) != 0 {
		t.Errorf("unexpected messages: %v", status.Messages)
	}
}

func TestValidateMissingKeys(t *testing.T) {
	cfg := &Config{AI: AIConfig{Provider: "openai"}}

	status := cfg.Validate()
	if status.Ready {
		t.Error("status must not be ready without keys")
	}
	if len(status.Messages) != 2 {
		t.Errorf("expected 2 findings, got %v", status.Messages)
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := &Config{
		Fireflies: FirefliesConfig{APIKey: "ff-key"},
		AI:        AIConfig{Provider: "gemini"},
	}

	status := cfg.Validate()
	if status.AIProvider || status.Ready {
		t.Error("unknown provider must not validate")
	}
}

func TestAllowedOriginList(t *testing.T) {
	cfg := ServerConfig{AllowedOrigins: "http://localhost:3000,https://app.example.com"}
	got := cfg.AllowedOriginList()
	if len(got) != 2 || got[1] != "https://app.example.com" {
		t.Errorf("AllowedOriginList = %v", got)
	}
}
