package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kritsw/lexiscan/internal/model"
)

// CSVWriter renders the long-form word table: one row per token with
// its source and 1-based position.
type CSVWriter struct {
	output io.Writer
}

// NewCSVWriter creates a CSVWriter targeting the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{output: output}
}

// Write emits the word table with a header row.
func (w *CSVWriter) Write(batch *model.AnalysisBatch) error {
	cw := csv.NewWriter(w.output)
	if err := cw.Write([]string{"Source", "Word", "Index"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	labels := batch.Labels()
	for i, rec := range batch.Records {
		label := labels[i]
		for pos, token := range rec.Tokens {
			if err := cw.Write([]string{label, token, strconv.Itoa(pos + 1)}); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
