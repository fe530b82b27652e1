package entities

import (
	"time"

	"github.com/google/uuid"
)

// Impact levels reported for pain points. The source reports German labels.
const (
	ImpactHigh   = "Hoch"
	ImpactMedium = "Mittel"
	ImpactLow    = "Niedrig"
)

// Fallback categories applied when the model omits one
const (
	PainCategoryOther       = "Sonstiges"
	QuestionCategoryGeneral = "Allgemein"
)

// Language pattern categories, rendered in this fixed order
const (
	PatternIndustryTerm = "industry_term"
	PatternEmotional    = "emotional"
	PatternPowerWord    = "power_word"
	PatternMetaphor     = "metaphor"
)

// PatternCategories lists the four pattern categories in render order
var PatternCategories = []string{
	PatternIndustryTerm,
	PatternEmotional,
	PatternPowerWord,
	PatternMetaphor,
}

// CommonQuestionLimit bounds the common_questions list
const CommonQuestionLimit = 10

// PainPoint is a lead-stated problem backed by a direct quote
type PainPoint struct {
	Category        string `json:"category"`
	Description     string `json:"description"`
	DirectQuote     string `json:"direct_quote"`
	Speaker         string `json:"speaker"`
	ImpactLevel     string `json:"impact_level"` // Hoch, Mittel, Niedrig
	Context         string `json:"context"`
	DesiredOutcome  string `json:"desired_outcome"`
	ImpactStatement string `json:"impact_statement"`
}

// Question is a question asked by a lead
type Question struct {
	Text              string `json:"text"`
	Speaker           string `json:"speaker"`
	Category          string `json:"category"`
	UnderlyingConcern string `json:"underlying_concern"`
	Context           string `json:"context"`
}

// Objection is a lead objection with resolution analysis
type Objection struct {
	ObjectionText      string `json:"objection_text"`
	DirectQuote        string `json:"direct_quote"`
	Speaker            string `json:"speaker"`
	EmotionalUndertone string `json:"emotional_undertone"`
	RootCause          string `json:"root_cause"`
	ResolutionPathway  string `json:"resolution_pathway"`
	ConversionTrigger  string `json:"conversion_trigger"`
}

// LanguagePattern is a notable phrase from lead speech
type LanguagePattern struct {
	Category   string `json:"category"` // industry_term, emotional, power_word, metaphor
	Phrase     string `json:"phrase"`
	Context    string `json:"context"`
	Speaker    string `json:"speaker"`
	UsageCount int    `json:"usage_count"`
}

// SupportingQuote backs a customer profile claim
type SupportingQuote struct {
	Quote   string `json:"quote"`
	Context string `json:"context"`
}

// CustomerProfile is the aggregated insight profile of a lead's company
type CustomerProfile struct {
	CompanyName         string            `json:"company_name"`
	Industry            string            `json:"industry"`
	CompanySize         string            `json:"company_size"`
	DecisionMakerRole   string            `json:"decision_maker_role"`
	PurchasingAuthority string            `json:"purchasing_authority"`
	BusinessContext     string            `json:"business_context"`
	CurrentSolutions    []string          `json:"current_solutions"`
	BudgetIndicators    string            `json:"budget_indicators"`
	TimelineUrgency     string            `json:"timeline_urgency"`
	SupportingQuotes    []SupportingQuote `json:"supporting_quotes"`
}

// AnalysisResult is the complete outcome of one analysis run.
// The value_propositions, marketing_recommendations and messaging_guidelines
// lists stay untyped: their shape is model-determined and only ever rendered.
type AnalysisResult struct {
	RunID               uuid.UUID `json:"run_id"`
	Timestamp           time.Time `json:"timestamp"`
	MeetingsAnalyzed    int       `json:"meetings_analyzed"`
	TotalLeadStatements int       `json:"total_lead_statements"`

	CustomerProfiles []CustomerProfile `json:"customer_profiles"`
	PainPoints       []PainPoint       `json:"pain_points"`
	Questions        []Question        `json:"questions"`
	Objections       []Objection       `json:"objections"`
	LanguagePatterns []LanguagePattern `json:"language_patterns"`

	TopPainCategories        map[string]int           `json:"top_pain_categories"`
	CommonQuestions          []string                 `json:"common_questions"`
	ConversionTriggers       []string                 `json:"conversion_triggers"`
	ValuePropositions        []map[string]interface{} `json:"value_propositions"`
	MarketingRecommendations []map[string]interface{} `json:"marketing_recommendations"`
	MessagingGuidelines      []map[string]interface{} `json:"messaging_guidelines"`
}

// NewAnalysisResult constructs an empty result with counts fixed at creation
func NewAnalysisResult(meetingsAnalyzed, totalLeadStatements int) *AnalysisResult {
	return &AnalysisResult{
		RunID:               uuid.New(),
		Timestamp:           time.Now(),
		MeetingsAnalyzed:    meetingsAnalyzed,
		TotalLeadStatements: totalLeadStatements,
		CustomerProfiles:    []CustomerProfile{},
		PainPoints:          []PainPoint{},
		Questions:           []Question{},
		Objections:          []Objection{},
		LanguagePatterns:    []LanguagePattern{},

		TopPainCategories:        map[string]int{},
		CommonQuestions:          []string{},
		ConversionTriggers:       []string{},
		ValuePropositions:        []map[string]interface{}{},
		MarketingRecommendations: []map[string]interface{}{},
		MessagingGuidelines:      []map[string]interface{}{},
	}
}

// TopPainCategories counts pain points per category.
// Re-running on the same list yields identical output.
func TopPainCategories(points []PainPoint) map[string]int {
	counts := make(map[string]int, len(points))
	for _, pp := range points {
		counts[pp.Category]++
	}
	return counts
}

// CommonQuestions returns the text of the first CommonQuestionLimit questions
// in list order.
func CommonQuestions(questions []Question) []string {
	limit := len(questions)
	if limit > CommonQuestionLimit {
		limit = CommonQuestionLimit
	}
	texts := make([]string, 0, limit)
	for _, q := range questions[:limit] {
		texts = append(texts, q.Text)
	}
	return texts
}

// Aggregate populates the derived fields from the already-built record lists
func (r *AnalysisResult) Aggregate() {
	r.TopPainCategories = TopPainCategories(r.PainPoints)
	r.CommonQuestions = CommonQuestions(r.Questions)
}
