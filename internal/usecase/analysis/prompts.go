package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// maxStatementChars bounds the prompt size to keep token usage predictable
const maxStatementChars = 50000

const systemPromptTemplate = `Du bist ein erfahrener Sales-Analyst, der Meeting-Transkripte analysiert, um wertvolle Insights über potenzielle Kunden (Leads) zu gewinnen.

KONTEXT:
- Unternehmen: %[1]s
- Ziel: Leads besser verstehen und Konversionsraten verbessern
- Fokus: Nur Aussagen der LEADS analysieren, NICHT die des Sales-Teams/Hosts

DEINE AUFGABEN:
1. Extrahiere DIREKTE ZITATE der Leads - keine Paraphrasierung
2. Identifiziere Pain Points, Einwände und Fragen
3. Erkenne emotionale Auslöser und Kaufsignale
4. Dokumentiere Fachterminologie und Sprachmuster
5. Alle Insights MÜSSEN durch Zitate belegt sein

WICHTIGE REGELN:
- Verwende IMMER die exakten Worte des Kunden
- Jede Erkenntnis braucht mindestens ein Zitat
- Kategorisiere logisch und konsistent
- Behalte den authentischen Ton bei
- Antworte auf DEUTSCH`

const analysisPromptTemplate = `Analysiere die folgenden Lead-Aussagen aus %[1]d Meeting(s).

MEETING-KONTEXT:
%[2]s

LEAD-AUSSAGEN (nur Kunden, nicht Host):
%[3]s

Erstelle eine strukturierte JSON-Analyse mit folgenden Abschnitten:

{
    "customer_profiles": [
        {
            "company_name": "Name falls erwähnt",
            "industry": "Branche",
            "company_size": "Größe falls erwähnt",
            "decision_maker_role": "Rolle des Entscheiders",
            "purchasing_authority": "Kaufentscheidungskompetenz",
            "business_context": "Geschäftskontext",
            "current_solutions": ["Aktuelle Lösungen"],
            "budget_indicators": "Budget-Hinweise",
            "timeline_urgency": "Dringlichkeit",
            "supporting_quotes": [{"quote": "Direktes Zitat", "context": "Kontext"}]
        }
    ],
    "pain_points": [
        {
            "category": "Kategorie (Technisch/Prozess/Kosten/Skalierung/Support)",
            "description": "Beschreibung des Problems",
            "direct_quote": "Exaktes Zitat des Kunden",
            "speaker": "Name des Sprechers",
            "impact_level": "Hoch/Mittel/Niedrig",
            "context": "Situationskontext",
            "desired_outcome": "Gewünschtes Ergebnis in Kundenworten",
            "impact_statement": "Auswirkung laut Kunde"
        }
    ],
    "questions": [
        {
            "text": "Die gestellte Frage",
            "speaker": "Name",
            "category": "Kategorie (Preis/Funktionen/Integration/Support/Sicherheit)",
            "underlying_concern": "Zugrundeliegende Sorge",
            "context": "Kontext der Frage"
        }
    ],
    "objections": [
        {
            "objection_text": "Der Einwand",
            "direct_quote": "Exaktes Zitat",
            "speaker": "Name",
            "emotional_undertone": "Emotionale Färbung",
            "root_cause": "Ursache des Einwands",
            "resolution_pathway": "Lösungsweg",
            "conversion_trigger": "Was würde überzeugen"
        }
    ],
    "language_patterns": [
        {
            "category": "industry_term/emotional/power_word/metaphor",
            "phrase": "Der genaue Ausdruck",
            "context": "Verwendungskontext",
            "speaker": "Name"
        }
    ],
    "value_propositions": [
        {
            "customer_need": "Kundenbedürfnis (Zitat)",
            "solution_alignment": "Wie %[4]s hilft",
            "benefit_statement": "Nutzenaussage in Kundensprache"
        }
    ],
    "marketing_recommendations": [
        {
            "section": "Abschnitt (z.B. Homepage, Landing Page)",
            "customer_quote": "Unterstützendes Zitat",
            "recommended_message": "Empfohlene Botschaft"
        }
    ],
    "messaging_guidelines": [
        {
            "effective_term": "Wirkungsvoller Begriff",
            "customer_quote": "Zitat als Beleg",
            "usage_recommendation": "Anwendungsempfehlung"
        }
    ],
    "conversion_triggers": ["Liste der identifizierten Kaufauslöser mit Zitaten"]
}

WICHTIG:
- Nur echte, im Transkript vorkommende Zitate verwenden
- Keine erfundenen oder paraphrasierten Aussagen
- Bei Unsicherheit lieber weglassen als erfinden
- Alle Ausgaben auf DEUTSCH`

const summaryPromptTemplate = `Erstelle eine Executive Summary auf Deutsch für folgende Analyseergebnisse:

Analysierte Meetings: %[1]d
Lead-Aussagen: %[2]d

Top Pain Points: %[3]s
Häufige Fragen: %[4]s
Einwände: %[5]s
Conversion Triggers: %[6]s

Erstelle eine prägnante Zusammenfassung (max 500 Wörter) mit:
1. Kernerkenntnisse
2. Top 3 Pain Points mit Zitaten
3. Wichtigste Handlungsempfehlungen
4. Dringende nächste Schritte`

const summarySystemPrompt = "Du bist ein Sales-Stratege, der Analyseergebnisse zusammenfasst. Antworte auf Deutsch."

// meetingContext is the per-meeting metadata embedded into the prompt
type meetingContext struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Duration     string   `json:"duration"`
	Participants []string `json:"participants"`
}

// buildSystemPrompt renders the system instruction for the analysis call
func buildSystemPrompt(companyName string) string {
	return fmt.Sprintf(systemPromptTemplate, companyName)
}

// buildAnalysisPrompt renders the user prompt with meeting context and lead statements
func buildAnalysisPrompt(meetings []*entities.Meeting, statements []entities.Sentence, companyName string) string {
	contexts := make([]meetingContext, 0, len(meetings))
	for _, m := range meetings {
		participants := make([]string, 0, len(m.Speakers))
		for _, sp := range m.Speakers {
			participants = append(participants, sp.Name)
		}
		contexts = append(contexts, meetingContext{
			Title:        m.Title,
			Date:         m.Date.Format("02.01.2006"),
			Duration:     fmt.Sprintf("%d Minuten", m.Duration),
			Participants: participants,
		})
	}

	contextJSON, err := json.MarshalIndent(contexts, "", "  ")
	if err != nil {
		contextJSON = []byte("[]")
	}

	return fmt.Sprintf(analysisPromptTemplate,
		len(meetings),
		string(contextJSON),
		formatStatements(statements, maxStatementChars),
		companyName,
	)
}

// buildSummaryPrompt renders the executive-summary prompt for a finished result
func buildSummaryPrompt(result *entities.AnalysisResult) string {
	topPainPoints := result.PainPoints
	if len(topPainPoints) > 5 {
		topPainPoints = topPainPoints[:5]
	}
	topObjections := result.Objections
	if len(topObjections) > 5 {
		topObjections = topObjections[:5]
	}

	painJSON, _ := json.Marshal(topPainPoints)
	objectionJSON, _ := json.Marshal(topObjections)
	questionJSON, _ := json.Marshal(result.CommonQuestions)
	triggerJSON, _ := json.Marshal(result.ConversionTriggers)

	return fmt.Sprintf(summaryPromptTemplate,
		result.MeetingsAnalyzed,
		result.TotalLeadStatements,
		string(painJSON),
		string(questionJSON),
		string(objectionJSON),
		string(triggerJSON),
	)
}

// formatStatements renders "[speaker]: text" lines up to the character budget.
// Statements past the budget are dropped, never truncated mid-line.
func formatStatements(statements []entities.Sentence, maxChars int) string {
	var b strings.Builder
	total := 0
	for _, stmt := range statements {
		line := fmt.Sprintf("[%s]: %s", stmt.SpeakerName, stmt.Text)
		if total+len(line) > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		total += len(line)
	}
	return b.String()
}
