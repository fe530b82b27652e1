package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	apperrors "github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
)

// transcriptsQuery lists meeting metadata with pagination
const transcriptsQuery = `
query Transcripts($date: Float, $limit: Int, $skip: Int, $hostEmail: String) {
    transcripts(date: $date, limit: $limit, skip: $skip, host_email: $hostEmail) {
        id
        title
        date
        duration
        host_email
        organizer_email
        transcript_url
        participants
    }
}`

// transcriptDetailQuery fetches one transcript with speakers and sentences
const transcriptDetailQuery = `
query Transcript($transcriptId: String!) {
    transcript(id: $transcriptId) {
        id
        title
        date
        duration
        host_email
        organizer_email
        transcript_url
        participants
        speakers {
            id
            name
            email
            duration
            word_count
        }
        sentences {
            index
            text
            raw_text
            speaker_id
            speaker_name
            start_time
            end_time
        }
        summary {
            keywords
            action_items
            outline
            meeting_type
        }
        ai_filters {
            questions {
                text
                speaker_name
            }
        }
    }
}`

// pageDelay paces pagination requests against the source's rate limits
const pageDelay = 500 * time.Millisecond

// Client talks to the Fireflies.ai GraphQL API
type Client struct {
	apiKey    string
	apiURL    string
	pageLimit int
	client    *http.Client
}

// NewClient creates a Fireflies client from config
func NewClient(cfg *config.FirefliesConfig) *Client {
	return &Client{
		apiKey:    cfg.APIKey,
		apiURL:    cfg.APIURL,
		pageLimit: cfg.MaxMeetingsPerRequest,
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// TranscriptMeta is a list entry from the transcripts query
type TranscriptMeta struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Date           flexDate `json:"date"`
	Duration       int      `json:"duration"`
	HostEmail      string   `json:"host_email"`
	OrganizerEmail string   `json:"organizer_email"`
	TranscriptURL  string   `json:"transcript_url"`
	Participants   []string `json:"participants"`
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do executes one GraphQL request and returns the data payload
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrSourceUnavailable(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.ErrSourceUnavailable(resp.StatusCode, fmt.Errorf("%s", strings.TrimSpace(string(snippet))))
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, apperrors.ErrSourceUnavailable(resp.StatusCode, err)
	}
	if len(gr.Errors) > 0 {
		messages := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			messages = append(messages, e.Message)
		}
		return nil, apperrors.ErrSourceProtocol(strings.Join(messages, "; "))
	}

	return gr.Data, nil
}

// ListOptions filter the transcript listing
type ListOptions struct {
	FromDate  *time.Time
	HostEmail string
	Limit     int
}

// ListTranscripts pages through all transcripts matching the options.
// A fixed delay between pages paces requests; it is the only rate handling.
func (c *Client) ListTranscripts(ctx context.Context, opts ListOptions) ([]TranscriptMeta, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = c.pageLimit
	}

	variables := map[string]interface{}{"limit": limit}
	if opts.FromDate != nil {
		// Fireflies expects milliseconds
		variables["date"] = opts.FromDate.UnixMilli()
	}
	if opts.HostEmail != "" {
		variables["hostEmail"] = opts.HostEmail
	}

	var all []TranscriptMeta
	skip := 0

	for {
		variables["skip"] = skip
		data, err := c.do(ctx, transcriptsQuery, variables)
		if err != nil {
			return nil, err
		}

		var page struct {
			Transcripts []TranscriptMeta `json:"transcripts"`
		}
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, apperrors.ErrSourceProtocol(err.Error())
		}
		if len(page.Transcripts) == 0 {
			break
		}

		all = append(all, page.Transcripts...)
		if len(page.Transcripts) < limit {
			break
		}
		skip += len(page.Transcripts)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pageDelay):
		}
	}

	return all, nil
}

// GetTranscript fetches one transcript with full detail
func (c *Client) GetTranscript(ctx context.Context, transcriptID string) (*entities.Meeting, error) {
	data, err := c.do(ctx, transcriptDetailQuery, map[string]interface{}{"transcriptId": transcriptID})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transcript *transcriptDetail `json:"transcript"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperrors.ErrSourceProtocol(err.Error())
	}
	if payload.Transcript == nil || payload.Transcript.ID == "" {
		return nil, apperrors.ErrNotFound("transcript").WithDetail("transcript_id", transcriptID)
	}

	return payload.Transcript.toMeeting(), nil
}

// ListHosts returns the distinct host/organizer emails seen since fromDate
func (c *Client) ListHosts(ctx context.Context, fromDate *time.Time) ([]string, error) {
	transcripts, err := c.ListTranscripts(ctx, ListOptions{FromDate: fromDate})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, t := range transcripts {
		if t.HostEmail != "" {
			seen[t.HostEmail] = struct{}{}
		}
		if t.OrganizerEmail != "" {
			seen[t.OrganizerEmail] = struct{}{}
		}
	}

	hosts := make([]string, 0, len(seen))
	for h := range seen {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts, nil
}
