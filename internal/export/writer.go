// Package export renders finished analysis batches for downstream use:
// an XLSX workbook, a delimited word table, a plain-text report, and a
// Markdown summary. Writers hold no business logic; they lay out what
// the pipeline produced.
package export

import (
	"github.com/kritsw/lexiscan/internal/model"
)

// Writer renders one analysis batch to its configured destination.
type Writer interface {
	Write(batch *model.AnalysisBatch) error
}

// MultiWriter fans a batch out to several writers, stopping on the
// first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the batch with every configured writer.
func (m *MultiWriter) Write(batch *model.AnalysisBatch) error {
	for _, w := range m.writers {
		if err := w.Write(batch); err != nil {
			return err
		}
	}
	return nil
}

// timestampFormat is shared by all report formats.
const timestampFormat = "2006-01-02 15:04:05"
