package fireflies

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// flexDate accepts both millisecond timestamps and ISO-8601 strings,
// which the API mixes depending on the field and account age.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}

	var ms float64
	if err := json.Unmarshal(b, &ms); err == nil {
		d.Time = time.UnixMilli(int64(ms))
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if t, err := time.Parse(time.RFC3339, strings.Replace(str, "Z", "+00:00", 1)); err == nil {
			d.Time = t
			return nil
		}
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			d.Time = t
			return nil
		}
	}

	d.Time = time.Now()
	return nil
}

// transcriptDetail mirrors the detail query response
type transcriptDetail struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Date           flexDate `json:"date"`
	Duration       int      `json:"duration"`
	HostEmail      string   `json:"host_email"`
	OrganizerEmail string   `json:"organizer_email"`
	TranscriptURL  string   `json:"transcript_url"`
	Participants   []string `json:"participants"`
	Speakers       []struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Email     string  `json:"email"`
		Duration  float64 `json:"duration"`
		WordCount int     `json:"word_count"`
	} `json:"speakers"`
	Sentences []struct {
		Index       int     `json:"index"`
		Text        string  `json:"text"`
		RawText     string  `json:"raw_text"`
		SpeakerID   string  `json:"speaker_id"`
		SpeakerName string  `json:"speaker_name"`
		StartTime   float64 `json:"start_time"`
		EndTime     float64 `json:"end_time"`
	} `json:"sentences"`
	Summary *struct {
		Keywords    []string `json:"keywords"`
		ActionItems []string `json:"action_items"`
		Outline     []string `json:"outline"`
		MeetingType string   `json:"meeting_type"`
	} `json:"summary"`
	AIFilters *struct {
		Questions []struct {
			Text        string `json:"text"`
			SpeakerName string `json:"speaker_name"`
		} `json:"questions"`
	} `json:"ai_filters"`
}

// toMeeting converts the API payload into the domain entity
func (t *transcriptDetail) toMeeting() *entities.Meeting {
	speakers := make([]entities.Speaker, 0, len(t.Speakers))
	for _, sp := range t.Speakers {
		name := sp.Name
		if name == "" {
			name = "Unknown"
		}
		speakers = append(speakers, entities.Speaker{
			ID:        sp.ID,
			Name:      name,
			Email:     sp.Email,
			Duration:  sp.Duration,
			WordCount: sp.WordCount,
		})
	}

	sentences := make([]entities.Sentence, 0, len(t.Sentences))
	for _, s := range t.Sentences {
		name := s.SpeakerName
		if name == "" {
			name = "Unknown"
		}
		sentences = append(sentences, entities.Sentence{
			Index:       s.Index,
			Text:        s.Text,
			RawText:     s.RawText,
			SpeakerID:   s.SpeakerID,
			SpeakerName: name,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}

	summary := entities.TranscriptSummary{
		Keywords:    []string{},
		ActionItems: []string{},
		Outline:     []string{},
		Questions:   []string{},
	}
	if t.Summary != nil {
		if t.Summary.Keywords != nil {
			summary.Keywords = t.Summary.Keywords
		}
		if t.Summary.ActionItems != nil {
			summary.ActionItems = t.Summary.ActionItems
		}
		if t.Summary.Outline != nil {
			summary.Outline = t.Summary.Outline
		}
		summary.MeetingType = t.Summary.MeetingType
	}
	if t.AIFilters != nil {
		for _, q := range t.AIFilters.Questions {
			summary.Questions = append(summary.Questions, q.Text)
		}
	}

	title := t.Title
	if title == "" {
		title = "Untitled Meeting"
	}

	date := t.Date.Time
	if date.IsZero() {
		date = time.Now()
	}

	participants := t.Participants
	if participants == nil {
		participants = []string{}
	}

	return &entities.Meeting{
		ID:             t.ID,
		Title:          title,
		Date:           date,
		Duration:       t.Duration,
		HostEmail:      t.HostEmail,
		OrganizerEmail: t.OrganizerEmail,
		Speakers:       speakers,
		Sentences:      sentences,
		Summary:        summary,
		TranscriptURL:  t.TranscriptURL,
		Participants:   participants,
	}
}
