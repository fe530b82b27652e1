package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/cache"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/external/fireflies"
	"github.com/leadinsights/fireflies-analyzer/pkg/ai"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
)

// TranscriptSource is the slice of the Fireflies client the pipeline needs
type TranscriptSource interface {
	ListTranscripts(ctx context.Context, opts fireflies.ListOptions) ([]fireflies.TranscriptMeta, error)
	GetTranscript(ctx context.Context, transcriptID string) (*entities.Meeting, error)
	ListHosts(ctx context.Context, fromDate *time.Time) ([]string, error)
}

// Service runs the analysis pipeline
type Service interface {
	Run(ctx context.Context, opts RunOptions) (*entities.AnalysisResult, error)
	Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error)
	Hosts(ctx context.Context, period string) ([]string, error)
}

// RunOptions select which meetings to analyze and whom to exclude
type RunOptions struct {
	Period       string
	HostEmail    string
	ExcludeHosts []string
	Limit        int
}

type service struct {
	source   TranscriptSource
	provider ai.Provider
	parser   *Parser
	meetings *cache.MeetingStore
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService constructs the analysis service
func NewService(
	source TranscriptSource,
	provider ai.Provider,
	meetings *cache.MeetingStore,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &service{
		source:   source,
		provider: provider,
		parser:   NewParser(),
		meetings: meetings,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run executes the full pipeline: fetch → attribute → analyze → ingest → aggregate.
//
// Per-meeting detail failures are logged and skipped. Zero meetings or zero
// lead statements end the run with an error. An unusable LLM response does
// not: it degrades to an empty result.
func (s *service) Run(ctx context.Context, opts RunOptions) (*entities.AnalysisResult, error) {
	fromDate, ok := config.FromDate(opts.Period, time.Now())
	if !ok {
		return nil, apperrors.ErrInvalidArgument("unknown time period: " + opts.Period)
	}

	metas, err := s.source.ListTranscripts(ctx, fireflies.ListOptions{
		FromDate:  &fromDate,
		HostEmail: opts.HostEmail,
		Limit:     opts.Limit,
	})
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, apperrors.ErrNoMeetings()
	}

	meetings := s.fetchDetails(ctx, metas)
	if len(meetings) == 0 {
		return nil, apperrors.ErrNoMeetings()
	}

	hostIdentifiers := append(s.cfg.HostEmails(), opts.ExcludeHosts...)

	var statements []entities.Sentence
	for _, m := range meetings {
		statements = append(statements, m.LeadStatements(hostIdentifiers)...)
	}
	if len(statements) == 0 {
		return nil, apperrors.ErrNoLeadStatements()
	}

	s.logger.Info("analysis.run.start",
		zap.String("period", opts.Period),
		zap.String("provider", s.provider.Name()),
		zap.Int("meetings", len(meetings)),
		zap.Int("lead_statements", len(statements)),
	)

	systemPrompt := buildSystemPrompt(s.cfg.Company.Name)
	userPrompt := buildAnalysisPrompt(meetings, statements, s.cfg.Company.Name)

	raw, err := s.provider.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		// Degrade to an empty result instead of failing the run; the
		// counts still describe what was analyzed.
		s.logger.Warn("analysis.provider.failed", zap.Error(err))
		raw = ""
	}

	result := s.parser.ParseResponse(raw, len(meetings), len(statements))
	if raw != "" && resultEmpty(result) {
		if _, ok := ExtractJSONObject(raw); !ok {
			s.logger.Warn("analysis.ingestion.degraded",
				zap.Int("response_chars", len(raw)),
			)
		}
	}

	s.logger.Info("analysis.run.done",
		zap.String("run_id", result.RunID.String()),
		zap.Int("pain_points", len(result.PainPoints)),
		zap.Int("questions", len(result.Questions)),
		zap.Int("objections", len(result.Objections)),
	)

	return result, nil
}

// fetchDetails loads full transcripts, serving repeats from the cache and
// skipping meetings whose detail fetch fails.
func (s *service) fetchDetails(ctx context.Context, metas []fireflies.TranscriptMeta) []*entities.Meeting {
	meetings := make([]*entities.Meeting, 0, len(metas))
	for _, meta := range metas {
		if cached, ok := s.meetings.Get(meta.ID); ok {
			meetings = append(meetings, cached)
			continue
		}

		meeting, err := s.source.GetTranscript(ctx, meta.ID)
		if err != nil {
			s.logger.Warn("analysis.detail.skipped",
				zap.String("meeting_id", meta.ID),
				zap.String("title", meta.Title),
				zap.Error(apperrors.ErrDetailFetchFailed(meta.ID, err)),
			)
			continue
		}

		s.meetings.Put(meeting)
		meetings = append(meetings, meeting)
	}
	return meetings
}

// Summarize asks the provider for an executive summary of a finished result
func (s *service) Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error) {
	text, err := s.provider.Complete(ctx, summarySystemPrompt, buildSummaryPrompt(result))
	if err != nil {
		return "", apperrors.ErrAIAnalysisFailed(err)
	}
	return text, nil
}

// Hosts lists the distinct meeting hosts within a time period
func (s *service) Hosts(ctx context.Context, period string) ([]string, error) {
	fromDate, ok := config.FromDate(period, time.Now())
	if !ok {
		return nil, apperrors.ErrInvalidArgument("unknown time period: " + period)
	}
	return s.source.ListHosts(ctx, &fromDate)
}

func resultEmpty(r *entities.AnalysisResult) bool {
	return len(r.PainPoints) == 0 &&
		len(r.Questions) == 0 &&
		len(r.Objections) == 0 &&
		len(r.CustomerProfiles) == 0 &&
		len(r.LanguagePatterns) == 0
}
