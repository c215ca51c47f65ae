package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/pkg/formatting"
)

const (
	assessmentSheet = "Client Assessments"
	summarySheet    = "Summary"
)

var headers = []string{
	"Case Name",
	"Source",
	"Client Classification",
	"Type of Notice Sent",
	"Firm Fault",
	"Firm Fault Explanation",
	"Current Status",
	"Recommendation",
	"Reasoning",
	"Key Evidence",
}

var columnWidths = []float64{25, 30, 20, 25, 12, 40, 20, 30, 50, 50}

// Recommendation color coding: green continue, yellow cure, red terminate,
// blue review.
var recommendationFills = map[classifier.Recommendation]string{
	classifier.RecommendContinue:        "C6EFCE",
	classifier.RecommendCure:            "FFEB9C",
	classifier.RecommendTerminate:       "FFC7CE",
	classifier.RecommendExecutiveReview: "BDD7EE",
	classifier.RecommendManualReview:    "BDD7EE",
}

// Excel renders the assessment workbook: one sheet with the per-case rows
// and recommendation color coding, one summary sheet with classification,
// recommendation, and firm-fault breakdowns.
type Excel struct{}

// NewExcel creates the xlsx renderer.
func NewExcel() *Excel {
	return &Excel{}
}

// Render writes the workbook to path, creating parent directories as
// needed. An empty result set returns ErrNoResults; the caller is expected
// to detect that before running the batch.
func (e *Excel) Render(results []classifier.Result, path string) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", assessmentSheet)

	if err := e.writeAssessments(f, results); err != nil {
		return fmt.Errorf("write assessments: %w", err)
	}

	if err := e.writeSummary(f, results); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

func (e *Excel) writeAssessments(f *excelize.File, results []classifier.Result) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	faultStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "C00000"},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(assessmentSheet, cell, header); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(assessmentSheet, name, name, columnWidths[col]); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(assessmentSheet, "A1", "J1", headerStyle); err != nil {
		return err
	}

	for i, result := range results {
		row := i + 2
		values := []any{
			result.CaseName,
			result.Source,
			string(result.Classification),
			result.NoticeSent,
			string(result.FirmFault),
			formatting.CollapseSpace(result.FirmFaultExplanation),
			result.CurrentStatus,
			string(result.Recommendation),
			formatting.CollapseSpace(result.Reasoning),
			formatting.CollapseSpace(result.KeyEvidence),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(assessmentSheet, cell, value); err != nil {
				return err
			}
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := f.SetCellStyle(assessmentSheet, first, last, cellStyle); err != nil {
			return err
		}

		if result.FirmFault == classifier.FaultYes {
			cell, _ := excelize.CoordinatesToCellName(5, row)
			if err := f.SetCellStyle(assessmentSheet, cell, cell, faultStyle); err != nil {
				return err
			}
		}

		if fill, ok := recommendationFills[result.Recommendation]; ok {
			style, err := f.NewStyle(&excelize.Style{
				Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
				Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			})
			if err != nil {
				return err
			}
			cell, _ := excelize.CoordinatesToCellName(8, row)
			if err := f.SetCellStyle(assessmentSheet, cell, cell, style); err != nil {
				return err
			}
		}

		if err := f.SetRowHeight(assessmentSheet, row, 60); err != nil {
			return err
		}
	}

	return nil
}

func (e *Excel) writeSummary(f *excelize.File, results []classifier.Result) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	set := func(cell string, value any) error {
		return f.SetCellValue(summarySheet, cell, value)
	}

	if err := set("A1", "CLIENT ASSESSMENT SUMMARY"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	if err := set("A2", "Generated:"); err != nil {
		return err
	}
	if err := set("B2", time.Now().Format("2006-01-02 15:04:05")); err != nil {
		return err
	}
	if err := set("A3", "Total Cases Analyzed:"); err != nil {
		return err
	}
	if err := set("B3", len(results)); err != nil {
		return err
	}

	row := 5
	row, err = e.writeBreakdown(f, row, "CLASSIFICATION BREAKDOWN", boldStyle,
		Tally(results, func(r classifier.Result) string { return string(r.Classification) }))
	if err != nil {
		return err
	}

	row, err = e.writeBreakdown(f, row+1, "RECOMMENDATION BREAKDOWN", boldStyle,
		Tally(results, func(r classifier.Result) string { return string(r.Recommendation) }))
	if err != nil {
		return err
	}

	if _, err = e.writeBreakdown(f, row+1, "FIRM FAULT ANALYSIS", boldStyle,
		Tally(results, func(r classifier.Result) string {
			return "Firm Fault: " + strings.ToUpper(string(r.FirmFault))
		})); err != nil {
		return err
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 35); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 15)
}

func (e *Excel) writeBreakdown(
	f *excelize.File,
	row int,
	title string,
	titleStyle int,
	counts map[string]int,
) (int, error) {
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(summarySheet, cell, title); err != nil {
		return row, err
	}
	if err := f.SetCellStyle(summarySheet, cell, cell, titleStyle); err != nil {
		return row, err
	}
	row++

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), label); err != nil {
			return row, err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), counts[label]); err != nil {
			return row, err
		}
		row++
	}

	return row, nil
}
