package entities

import (
	"strings"
	"time"
)

// Speaker represents a meeting participant as reported by the transcript source
type Speaker struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Duration  float64 `json:"duration"`
	WordCount int     `json:"word_count"`
	IsHost    bool    `json:"is_host"`
}

// Sentence represents a single transcript sentence.
// Index order is the canonical transcript order.
type Sentence struct {
	Index       int     `json:"index"`
	Text        string  `json:"text"`
	RawText     string  `json:"raw_text,omitempty"`
	SpeakerID   string  `json:"speaker_id"`
	SpeakerName string  `json:"speaker_name"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
}

// TranscriptSummary is the source-provided summary of a meeting
type TranscriptSummary struct {
	Keywords    []string `json:"keywords"`
	ActionItems []string `json:"action_items"`
	Outline     []string `json:"outline"`
	MeetingType string   `json:"meeting_type,omitempty"`
	Questions   []string `json:"questions"`
}

// Meeting holds the full transcript data for one meeting.
// It is immutable once parsed from the source response.
type Meeting struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Date           time.Time         `json:"date"`
	Duration       int               `json:"duration"` // minutes
	HostEmail      string            `json:"host_email,omitempty"`
	OrganizerEmail string            `json:"organizer_email,omitempty"`
	Speakers       []Speaker         `json:"speakers"`
	Sentences      []Sentence        `json:"sentences"`
	Summary        TranscriptSummary `json:"summary"`
	TranscriptURL  string            `json:"transcript_url,omitempty"`
	Participants   []string          `json:"participants"`
}

// LeadStatements returns the sentences not attributed to a host speaker,
// preserving transcript order.
//
// A speaker counts as host when its explicit flag is set, or when any
// non-empty marker (caller-supplied identifiers plus the meeting's host and
// organizer emails) is a case-insensitive substring of the speaker's name or
// email. Substring matching tolerates display-name variants at the cost of
// occasional false positives; that trade-off is deliberate.
func (m *Meeting) LeadStatements(hostIdentifiers []string) []Sentence {
	markers := make([]string, 0, len(hostIdentifiers)+2)
	for _, id := range hostIdentifiers {
		if id != "" {
			markers = append(markers, strings.ToLower(id))
		}
	}
	if m.HostEmail != "" {
		markers = append(markers, strings.ToLower(m.HostEmail))
	}
	if m.OrganizerEmail != "" {
		markers = append(markers, strings.ToLower(m.OrganizerEmail))
	}

	hostSpeakerIDs := make(map[string]struct{})
	for _, sp := range m.Speakers {
		if sp.IsHost {
			hostSpeakerIDs[sp.ID] = struct{}{}
			continue
		}
		name := strings.ToLower(sp.Name)
		email := strings.ToLower(sp.Email)
		for _, marker := range markers {
			if (name != "" && strings.Contains(name, marker)) ||
				(email != "" && strings.Contains(email, marker)) {
				hostSpeakerIDs[sp.ID] = struct{}{}
				break
			}
		}
	}

	lead := make([]Sentence, 0, len(m.Sentences))
	for _, s := range m.Sentences {
		if _, isHost := hostSpeakerIDs[s.SpeakerID]; !isHost {
			lead = append(lead, s)
		}
	}
	return lead
}

// LeadQuestions returns the lead statements containing a question mark
func (m *Meeting) LeadQuestions(hostIdentifiers []string) []Sentence {
	statements := m.LeadStatements(hostIdentifiers)
	questions := make([]Sentence, 0, len(statements))
	for _, s := range statements {
		if strings.Contains(s.Text, "?") {
			questions = append(questions, s)
		}
	}
	return questions
}
