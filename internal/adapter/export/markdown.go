package export

import (
	"fmt"
	"strings"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// patternCategoryNames maps pattern categories to their German section names
var patternCategoryNames = map[string]string{
	entities.PatternIndustryTerm: "Fachterminologie",
	entities.PatternEmotional:    "Emotionale Sprache",
	entities.PatternPowerWord:    "Power Words",
	entities.PatternMetaphor:     "Metaphern & Analogien",
}

// BuildMarkdown renders the result as one Markdown document with nine fixed,
// ordered sections. Sections with zero records are omitted entirely.
func BuildMarkdown(result *entities.AnalysisResult) string {
	var lines []string
	add := func(l string) { lines = append(lines, l) }

	add("# Meeting-Analyse Report")
	add("")
	add(fmt.Sprintf("**Erstellt:** %s", result.Timestamp.Format("02.01.2006 15:04")))
	add(fmt.Sprintf("**Analysierte Meetings:** %d", result.MeetingsAnalyzed))
	add(fmt.Sprintf("**Lead-Aussagen:** %d", result.TotalLeadStatements))
	add("")
	add("---")
	add("")

	if len(result.CustomerProfiles) > 0 {
		add("## 1. Kunden-Insight-Profile")
		add("")
		for i, profile := range result.CustomerProfiles {
			add(fmt.Sprintf("### Profil %d", i+1))
			if profile.CompanyName != "" {
				add(fmt.Sprintf("- **Unternehmen:** %s", profile.CompanyName))
			}
			if profile.Industry != "" {
				add(fmt.Sprintf("- **Branche:** %s", profile.Industry))
			}
			if profile.DecisionMakerRole != "" {
				add(fmt.Sprintf("- **Entscheider-Rolle:** %s", profile.DecisionMakerRole))
			}
			if profile.BusinessContext != "" {
				add(fmt.Sprintf("- **Geschäftskontext:** %s", profile.BusinessContext))
			}
			if profile.TimelineUrgency != "" {
				add(fmt.Sprintf("- **Dringlichkeit:** %s", profile.TimelineUrgency))
			}
			if len(profile.SupportingQuotes) > 0 {
				add("")
				add("**Unterstützende Zitate:**")
				for _, quote := range profile.SupportingQuotes {
					add(fmt.Sprintf("> \"%s\"", quote.Quote))
					if quote.Context != "" {
						add(fmt.Sprintf("> *%s*", quote.Context))
					}
				}
			}
			add("")
		}
	}

	if len(result.PainPoints) > 0 {
		add("## 2. Pain Point Matrix")
		add("")
		for _, group := range groupPainPoints(result.PainPoints) {
			add(fmt.Sprintf("### %s", group.category))
			add("")
			for _, pp := range group.points {
				add(fmt.Sprintf("**%s** (Priorität: %s)", pp.Description, pp.ImpactLevel))
				add("")
				add(fmt.Sprintf("> \"%s\"", pp.DirectQuote))
				add(fmt.Sprintf("> — *%s*", pp.Speaker))
				add("")
				if pp.Context != "" {
					add(fmt.Sprintf("**Kontext:** %s", pp.Context))
				}
				if pp.DesiredOutcome != "" {
					add(fmt.Sprintf("**Gewünschtes Ergebnis:** %s", pp.DesiredOutcome))
				}
				if pp.ImpactStatement != "" {
					add(fmt.Sprintf("**Auswirkung:** %s", pp.ImpactStatement))
				}
				add("")
			}
		}
	}

	if len(result.Questions) > 0 {
		add("## 3. Lead-Fragen")
		add("")
		for _, group := range groupQuestions(result.Questions) {
			add(fmt.Sprintf("### %s", group.category))
			add("")
			for _, q := range group.questions {
				add(fmt.Sprintf("**Frage:** \"%s\"", q.Text))
				add(fmt.Sprintf("- *%s*", q.Speaker))
				if q.UnderlyingConcern != "" {
					add(fmt.Sprintf("- **Zugrundeliegende Sorge:** %s", q.UnderlyingConcern))
				}
				add("")
			}
		}
	}

	if len(result.Objections) > 0 {
		add("## 4. Einwand-Analyse")
		add("")
		for _, obj := range result.Objections {
			add(fmt.Sprintf("### \"%s\"", obj.ObjectionText))
			add("")
			add(fmt.Sprintf("> \"%s\"", obj.DirectQuote))
			add(fmt.Sprintf("> — *%s*", obj.Speaker))
			add("")
			if obj.EmotionalUndertone != "" {
				add(fmt.Sprintf("**Emotionale Färbung:** %s", obj.EmotionalUndertone))
			}
			if obj.RootCause != "" {
				add(fmt.Sprintf("**Ursache:** %s", obj.RootCause))
			}
			if obj.ResolutionPathway != "" {
				add(fmt.Sprintf("**Lösungsweg:** %s", obj.ResolutionPathway))
			}
			if obj.ConversionTrigger != "" {
				add(fmt.Sprintf("**Conversion Trigger:** %s", obj.ConversionTrigger))
			}
			add("")
		}
	}

	if len(result.LanguagePatterns) > 0 {
		add("## 5. Sprachanalyse")
		add("")
		for _, category := range entities.PatternCategories {
			var patterns []entities.LanguagePattern
			for _, lp := range result.LanguagePatterns {
				if lp.Category == category {
					patterns = append(patterns, lp)
				}
			}
			if len(patterns) == 0 {
				continue
			}
			add(fmt.Sprintf("### %s", patternCategoryNames[category]))
			add("")
			for _, lp := range patterns {
				add(fmt.Sprintf("- **\"%s\"** — %s", lp.Phrase, lp.Speaker))
				if lp.Context != "" {
					add(fmt.Sprintf("  - Kontext: %s", lp.Context))
				}
			}
			add("")
		}
	}

	if len(result.ValuePropositions) > 0 {
		add("## 6. Value Propositions")
		add("")
		for _, vp := range result.ValuePropositions {
			add(fmt.Sprintf("**Kundenbedürfnis:** %s", mapString(vp, "customer_need")))
			add(fmt.Sprintf("**Lösung:** %s", mapString(vp, "solution_alignment")))
			add(fmt.Sprintf("**Nutzenaussage:** %s", mapString(vp, "benefit_statement")))
			add("")
		}
	}

	if len(result.MarketingRecommendations) > 0 {
		add("## 7. Marketing-Empfehlungen")
		add("")
		for _, rec := range result.MarketingRecommendations {
			section := mapString(rec, "section")
			if section == "" {
				section = "Allgemein"
			}
			add(fmt.Sprintf("### %s", section))
			if quote := mapString(rec, "customer_quote"); quote != "" {
				add(fmt.Sprintf("> \"%s\"", quote))
			}
			add(fmt.Sprintf("**Empfehlung:** %s", mapString(rec, "recommended_message")))
			add("")
		}
	}

	if len(result.MessagingGuidelines) > 0 {
		add("## 8. Messaging-Leitfaden")
		add("")
		for _, msg := range result.MessagingGuidelines {
			add(fmt.Sprintf("**Begriff:** \"%s\"", mapString(msg, "effective_term")))
			if quote := mapString(msg, "customer_quote"); quote != "" {
				add(fmt.Sprintf("> \"%s\"", quote))
			}
			add(fmt.Sprintf("**Empfehlung:** %s", mapString(msg, "usage_recommendation")))
			add("")
		}
	}

	if len(result.ConversionTriggers) > 0 {
		add("## 9. Conversion Triggers")
		add("")
		for _, trigger := range result.ConversionTriggers {
			add(fmt.Sprintf("- %s", trigger))
		}
		add("")
	}

	return strings.Join(lines, "\n")
}

// painGroup keeps first-seen category order while grouping
type painGroup struct {
	category string
	points   []entities.PainPoint
}

func groupPainPoints(points []entities.PainPoint) []painGroup {
	index := make(map[string]int)
	var groups []painGroup
	for _, pp := range points {
		category := pp.Category
		if category == "" {
			category = entities.PainCategoryOther
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, painGroup{category: category})
		}
		groups[i].points = append(groups[i].points, pp)
	}
	return groups
}

type questionGroup struct {
	category  string
	questions []entities.Question
}

func groupQuestions(questions []entities.Question) []questionGroup {
	index := make(map[string]int)
	var groups []questionGroup
	for _, q := range questions {
		category := q.Category
		if category == "" {
			category = entities.QuestionCategoryGeneral
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, questionGroup{category: category})
		}
		groups[i].questions = append(groups[i].questions, q)
	}
	return groups
}

func mapString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
