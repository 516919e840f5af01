package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/kritsw/lexiscan/internal/model"
)

// TextWriter renders a plain-text analysis report: banner, per-source
// cleaned and tokenized text, and aggregate counts.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter targeting the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

const bannerLine = "================================================================================"

// Write emits the report.
func (w *TextWriter) Write(batch *model.AnalysisBatch) error {
	var b strings.Builder

	b.WriteString(bannerLine + "\n")
	b.WriteString("LINGUIST ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", batch.Timestamp.Format(timestampFormat))
	fmt.Fprintf(&b, "Sources: %d\n", len(batch.Records))
	b.WriteString(bannerLine + "\n\n")

	labels := batch.Labels()
	for i, rec := range batch.Records {
		fmt.Fprintf(&b, "Source: %s\n", labels[i])
		fmt.Fprintf(&b, "Method: %s\n\n", rec.Method)
		if !rec.Method.OK() {
			b.WriteString("(no content)\n\n")
			continue
		}
		fmt.Fprintf(&b, "Original Text:\n%s\n\n", rec.CleanedText)
		fmt.Fprintf(&b, "Tokenized:\n%s\n\n", strings.Join(rec.Tokens, " | "))
		b.WriteString("Statistics:\n")
		fmt.Fprintf(&b, "- Total Tokens: %d\n", rec.WordCount())
		fmt.Fprintf(&b, "- Unique Tokens: %d\n\n", rec.UniqueWordCount())
	}

	fmt.Fprintf(&b, "Total Tokens (all sources): %d\n", batch.TotalWords())

	_, err := io.WriteString(w.output, b.String())
	return err
}
