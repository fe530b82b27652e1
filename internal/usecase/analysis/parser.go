package analysis

import (
	"encoding/json"
	"strings"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// Parser turns raw LLM response text into a typed AnalysisResult.
//
// The model is asked for a single JSON object but may wrap it in prose or
// markdown fences, omit fields, or return garbage. The parser degrades
// silently: unparseable responses yield an empty result, missing fields get
// defaults. It never fails a run.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseResponse builds an AnalysisResult from the raw response text.
// Meeting and statement counts come from the caller, never from the model.
func (p *Parser) ParseResponse(raw string, meetingsAnalyzed, totalLeadStatements int) *entities.AnalysisResult {
	result := entities.NewAnalysisResult(meetingsAnalyzed, totalLeadStatements)

	data, ok := ExtractJSONObject(raw)
	if !ok {
		result.Aggregate()
		return result
	}

	for _, item := range mapList(data, "customer_profiles") {
		result.CustomerProfiles = append(result.CustomerProfiles, entities.CustomerProfile{
			CompanyName:         stringOr(item, "company_name", ""),
			Industry:            stringOr(item, "industry", ""),
			CompanySize:         stringOr(item, "company_size", ""),
			DecisionMakerRole:   stringOr(item, "decision_maker_role", ""),
			PurchasingAuthority: stringOr(item, "purchasing_authority", ""),
			BusinessContext:     stringOr(item, "business_context", ""),
			CurrentSolutions:    stringList(item, "current_solutions"),
			BudgetIndicators:    stringOr(item, "budget_indicators", ""),
			TimelineUrgency:     stringOr(item, "timeline_urgency", ""),
			SupportingQuotes:    supportingQuotes(item, "supporting_quotes"),
		})
	}

	for _, item := range mapList(data, "pain_points") {
		result.PainPoints = append(result.PainPoints, entities.PainPoint{
			Category:        stringOr(item, "category", entities.PainCategoryOther),
			Description:     stringOr(item, "description", ""),
			DirectQuote:     stringOr(item, "direct_quote", ""),
			Speaker:         stringOr(item, "speaker", ""),
			ImpactLevel:     stringOr(item, "impact_level", entities.ImpactMedium),
			Context:         stringOr(item, "context", ""),
			DesiredOutcome:  stringOr(item, "desired_outcome", ""),
			ImpactStatement: stringOr(item, "impact_statement", ""),
		})
	}

	for _, item := range mapList(data, "questions") {
		result.Questions = append(result.Questions, entities.Question{
			Text:              stringOr(item, "text", ""),
			Speaker:           stringOr(item, "speaker", ""),
			Category:          stringOr(item, "category", entities.QuestionCategoryGeneral),
			UnderlyingConcern: stringOr(item, "underlying_concern", ""),
			Context:           stringOr(item, "context", ""),
		})
	}

	for _, item := range mapList(data, "objections") {
		result.Objections = append(result.Objections, entities.Objection{
			ObjectionText:      stringOr(item, "objection_text", ""),
			DirectQuote:        stringOr(item, "direct_quote", ""),
			Speaker:            stringOr(item, "speaker", ""),
			EmotionalUndertone: stringOr(item, "emotional_undertone", ""),
			RootCause:          stringOr(item, "root_cause", ""),
			ResolutionPathway:  stringOr(item, "resolution_pathway", ""),
			ConversionTrigger:  stringOr(item, "conversion_trigger", ""),
		})
	}

	for _, item := range mapList(data, "language_patterns") {
		result.LanguagePatterns = append(result.LanguagePatterns, entities.LanguagePattern{
			Category:   stringOr(item, "category", ""),
			Phrase:     stringOr(item, "phrase", ""),
			Context:    stringOr(item, "context", ""),
			Speaker:    stringOr(item, "speaker", ""),
			UsageCount: intOr(item, "usage_count", 1),
		})
	}

	// Pass-through sections: rendered, never computed upon
	result.ValuePropositions = mapList(data, "value_propositions")
	result.MarketingRecommendations = mapList(data, "marketing_recommendations")
	result.MessagingGuidelines = mapList(data, "messaging_guidelines")
	result.ConversionTriggers = stringList(data, "conversion_triggers")

	result.Aggregate()
	return result
}

// ExtractJSONObject finds and parses the JSON object in the response text.
// First attempt: the whole text. Second attempt: the span from the first '{'
// to the last '}'. Returns false when neither parses.
func ExtractJSONObject(raw string) (map[string]interface{}, bool) {
	if data, ok := parseObject(raw); ok {
		return data, true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}
	return parseObject(raw[start : end+1])
}

func parseObject(s string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, false
	}
	return data, true
}

// Mapping readers. Each returns the value at key or the default, so the six
// record schemas above stay visible as one block per type.

func stringOr(m map[string]interface{}, key, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

func intOr(m map[string]interface{}, key string, def int) int {
	if v, ok := m[key].(float64); ok && v >= 1 {
		return int(v)
	}
	return def
}

func rawList(m map[string]interface{}, key string) []interface{} {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	return v
}

func mapList(m map[string]interface{}, key string) []map[string]interface{} {
	items := make([]map[string]interface{}, 0)
	for _, el := range rawList(m, key) {
		if obj, ok := el.(map[string]interface{}); ok {
			items = append(items, obj)
		}
	}
	return items
}

func stringList(m map[string]interface{}, key string) []string {
	items := make([]string, 0)
	for _, el := range rawList(m, key) {
		if s, ok := el.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

func supportingQuotes(m map[string]interface{}, key string) []entities.SupportingQuote {
	quotes := make([]entities.SupportingQuote, 0)
	for _, item := range mapList(m, key) {
		quotes = append(quotes, entities.SupportingQuote{
			Quote:   stringOr(item, "quote", ""),
			Context: stringOr(item, "context", ""),
		})
	}
	return quotes
}
