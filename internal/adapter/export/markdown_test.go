package export

import (
	"strings"
	"testing"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

func TestBuildMarkdownHeader(t *testing.T) {
	result := entities.NewAnalysisResult(3, 120)

	md := BuildMarkdown(result)

	if !strings.HasPrefix(md, "# Meeting-Analyse Report") {
		t.Error("report title missing")
	}
	if !strings.Contains(md, "**Analysierte Meetings:** 3") {
		t.Error("meeting count missing from header")
	}
	if !strings.Contains(md, "**Lead-Aussagen:** 120") {
		t.Error("statement count missing from header")
	}
}

func TestBuildMarkdownOmitsEmptySections(t *testing.T) {
	result := entities.NewAnalysisResult(1, 10)

	md := BuildMarkdown(result)

	for _, heading := range []string{
		"## 1. Kunden-Insight-Profile",
		"## 2. Pain Point Matrix",
		"## 3. Lead-Fragen",
		"## 4. Einwand-Analyse",
		"## 5. Sprachanalyse",
		"## 6. Value Propositions",
		"## 7. Marketing-Empfehlungen",
		"## 8. Messaging-Leitfaden",
		"## 9. Conversion Triggers",
	} {
		if strings.Contains(md, heading) {
			t.Errorf("empty section %q must be omitted", heading)
		}
	}
}

func TestBuildMarkdownObjectionSection(t *testing.T) {
	result := entities.NewAnalysisResult(1, 10)
	result.Objections = []entities.Objection{
		{
			ObjectionText:      "Zu teuer",
			DirectQuote:        "Das sprengt unser Budget.",
			Speaker:            "Bob",
			RootCause:          "Unklarer ROI",
			ResolutionPathway:  "ROI-Rechnung zeigen",
			ConversionTrigger:  "Transparente Preisstaffel",
			EmotionalUndertone: "Frustration",
		},
	}

	md := BuildMarkdown(result)

	if !strings.Contains(md, "## 4. Einwand-Analyse") {
		t.Fatal("objection section missing")
	}
	if !strings.Contains(md, `> "Das sprengt unser Budget."`) {
		t.Error("direct quote not rendered as blockquote")
	}
	if !strings.Contains(md, "> — *Bob*") {
		t.Error("speaker attribution missing")
	}
	if !strings.Contains(md, "**Ursache:** Unklarer ROI") {
		t.Error("root cause missing")
	}
}

func TestBuildMarkdownPainPointGrouping(t *testing.T) {
	result := entities.NewAnalysisResult(1, 10)
	result.PainPoints = []entities.PainPoint{
		{Category: "Kosten", Description: "A", DirectQuote: "a", Speaker: "Bob", ImpactLevel: entities.ImpactHigh},
		{Category: "Technisch", Description: "B", DirectQuote: "b", Speaker: "Bob", ImpactLevel: entities.ImpactLow},
		{Category: "Kosten", Description: "C", DirectQuote: "c", Speaker: "Bob", ImpactLevel: entities.ImpactMedium},
	}

	md := BuildMarkdown(result)

	// First-seen category order: Kosten before Technisch
	kosten := strings.Index(md, "### Kosten")
	technisch := strings.Index(md, "### Technisch")
	if kosten == -1 || technisch == -1 {
		t.Fatal("category headings missing")
	}
	if kosten > technisch {
		t.Error("categories must keep first-seen order")
	}
	if strings.Count(md, "### Kosten") != 1 {
		t.Error("category heading duplicated")
	}
}

func TestBuildMarkdownLanguagePatternOrder(t *testing.T) {
	result := entities.NewAnalysisResult(1, 10)
	result.LanguagePatterns = []entities.LanguagePattern{
		{Category: entities.PatternMetaphor, Phrase: "wie ein Uhrwerk", Speaker: "Bob"},
		{Category: entities.PatternIndustryTerm, Phrase: "Churn Rate", Speaker: "Bob"},
	}

	md := BuildMarkdown(result)

	// Render order is fixed: industry terms before metaphors
	industry := strings.Index(md, "### Fachterminologie")
	metaphor := strings.Index(md, "### Metaphern & Analogien")
	if industry == -1 || metaphor == -1 {
		t.Fatal("pattern headings missing")
	}
	if industry > metaphor {
		t.Error("pattern categories must render in fixed order")
	}
	if strings.Contains(md, "### Emotionale Sprache") {
		t.Error("empty pattern category must be omitted")
	}
}

func TestBuildMarkdownPassThroughSections(t *testing.T) {
	result := entities.NewAnalysisResult(1, 10)
	result.ValuePropositions = []map[string]interface{}{
		{"customer_need": "Schnellere Releases", "solution_alignment": "Automatisierung", "benefit_statement": "Ein Tag pro Release gespart"},
	}
	result.ConversionTriggers = []string{"Transparente Preise"}

	md := BuildMarkdown(result)

	if !strings.Contains(md, "**Kundenbedürfnis:** Schnellere Releases") {
		t.Error("value proposition not rendered")
	}
	if !strings.Contains(md, "- Transparente Preise") {
		t.Error("conversion trigger not rendered")
	}
}
