package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// ToExcel writes the result as an xlsx workbook and returns the file path.
// One sheet per non-empty category plus a fixed overview sheet.
func (e *Exporter) ToExcel(result *entities.AnalysisResult, filename string) (string, error) {
	path := e.resolvePath(filename, "xlsx")

	f := excelize.NewFile()
	defer f.Close()

	overview := "Übersicht"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return "", apperrors.ErrExportFailed("excel", err)
	}
	f.SetCellValue(overview, "A1", "Meeting-Analyse Report")
	f.SetCellValue(overview, "A3", "Erstellt:")
	f.SetCellValue(overview, "B3", result.Timestamp.Format("02.01.2006 15:04"))
	f.SetCellValue(overview, "A4", "Analysierte Meetings:")
	f.SetCellValue(overview, "B4", result.MeetingsAnalyzed)
	f.SetCellValue(overview, "A5", "Lead-Aussagen:")
	f.SetCellValue(overview, "B5", result.TotalLeadStatements)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", apperrors.ErrExportFailed("excel", err)
	}

	if len(result.PainPoints) > 0 {
		rows := make([][]interface{}, 0, len(result.PainPoints))
		for _, pp := range result.PainPoints {
			rows = append(rows, []interface{}{
				pp.Category, pp.Description, pp.DirectQuote, pp.Speaker,
				pp.ImpactLevel, pp.Context, pp.DesiredOutcome,
			})
		}
		if err := writeSheet(f, "Pain Points", headerStyle,
			[]interface{}{"Kategorie", "Beschreibung", "Zitat", "Sprecher", "Priorität", "Kontext", "Gewünschtes Ergebnis"},
			rows,
		); err != nil {
			return "", apperrors.ErrExportFailed("excel", err)
		}
	}

	if len(result.Questions) > 0 {
		rows := make([][]interface{}, 0, len(result.Questions))
		for _, q := range result.Questions {
			rows = append(rows, []interface{}{
				q.Text, q.Speaker, q.Category, q.UnderlyingConcern, q.Context,
			})
		}
		if err := writeSheet(f, "Fragen", headerStyle,
			[]interface{}{"Frage", "Sprecher", "Kategorie", "Zugrundeliegende Sorge", "Kontext"},
			rows,
		); err != nil {
			return "", apperrors.ErrExportFailed("excel", err)
		}
	}

	if len(result.Objections) > 0 {
		rows := make([][]interface{}, 0, len(result.Objections))
		for _, obj := range result.Objections {
			rows = append(rows, []interface{}{
				obj.ObjectionText, obj.DirectQuote, obj.Speaker, obj.EmotionalUndertone,
				obj.RootCause, obj.ResolutionPathway, obj.ConversionTrigger,
			})
		}
		if err := writeSheet(f, "Einwände", headerStyle,
			[]interface{}{"Einwand", "Zitat", "Sprecher", "Emotionale Färbung", "Ursache", "Lösungsweg", "Conversion Trigger"},
			rows,
		); err != nil {
			return "", apperrors.ErrExportFailed("excel", err)
		}
	}

	if len(result.LanguagePatterns) > 0 {
		rows := make([][]interface{}, 0, len(result.LanguagePatterns))
		for _, lp := range result.LanguagePatterns {
			category := lp.Category
			if name, ok := patternCategoryNames[category]; ok {
				category = name
			}
			rows = append(rows, []interface{}{category, lp.Phrase, lp.Speaker, lp.Context})
		}
		if err := writeSheet(f, "Sprachanalyse", headerStyle,
			[]interface{}{"Kategorie", "Ausdruck", "Sprecher", "Kontext"},
			rows,
		); err != nil {
			return "", apperrors.ErrExportFailed("excel", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", apperrors.ErrExportFailed("excel", err)
	}
	return path, nil
}

// writeSheet creates a sheet with a styled header row and one row per record
func writeSheet(f *excelize.File, name string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	endCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", endCell, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
