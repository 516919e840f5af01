package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kritsw/lexiscan/internal/model"
)

// XLSXWriter renders a batch as a three-sheet workbook: a per-source
// summary, a long-form word table, and the cleaned texts.
type XLSXWriter struct {
	output io.Writer
}

// NewXLSXWriter creates an XLSXWriter that writes the workbook bytes to
// the given writer.
func NewXLSXWriter(output io.Writer) *XLSXWriter {
	return &XLSXWriter{output: output}
}

// Write builds and emits the workbook.
func (w *XLSXWriter) Write(batch *model.AnalysisBatch) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, batch); err != nil {
		return err
	}
	if err := w.writeTokens(f, batch); err != nil {
		return err
	}
	if err := w.writeTexts(f, batch); err != nil {
		return err
	}
	// Replace the default sheet rather than leaving it empty.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if _, err := f.WriteTo(w.output); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) writeSummary(f *excelize.File, batch *model.AnalysisBatch) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	header := []any{"Source", "Method", "Word Count", "Unique Words", "Tokens", "Generated"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	labels := batch.Labels()
	for i, rec := range batch.Records {
		row := []any{
			labels[i],
			string(rec.Method),
			rec.WordCount(),
			rec.UniqueWordCount(),
			strings.Join(rec.Tokens, " | "),
			batch.Timestamp.Format(timestampFormat),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *XLSXWriter) writeTokens(f *excelize.File, batch *model.AnalysisBatch) error {
	const sheet = "Tokens"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []any{"Source", "Word", "Index"}); err != nil {
		return err
	}
	rowNum := 2
	labels := batch.Labels()
	for i, rec := range batch.Records {
		label := labels[i]
		for pos, token := range rec.Tokens {
			if err := setRow(f, sheet, rowNum, []any{label, token, pos + 1}); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func (w *XLSXWriter) writeTexts(f *excelize.File, batch *model.AnalysisBatch) error {
	const sheet = "Text"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []any{"Source", "Cleaned Text"}); err != nil {
		return err
	}
	labels := batch.Labels()
	for i, rec := range batch.Records {
		if err := setRow(f, sheet, i+2, []any{labels[i], rec.CleanedText}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
