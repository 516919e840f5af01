package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/kritsw/lexiscan/internal/model"
)

// MarkdownWriter renders the batch summary as GitHub-flavored markdown,
// suitable for pasting into research notes or issue trackers.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter targeting the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write emits the summary tables.
func (w *MarkdownWriter) Write(batch *model.AnalysisBatch) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Lexiscan Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", batch.Timestamp.Format(timestampFormat)},
			{"Sources", strconv.Itoa(len(batch.Records))},
			{"Succeeded", strconv.Itoa(len(batch.Succeeded()))},
			{"Total Tokens", strconv.Itoa(batch.TotalWords())},
		},
	})
	md.PlainText("")

	md.H2("Sources")
	md.PlainText("")
	rows := make([][]string, 0, len(batch.Records))
	labels := batch.Labels()
	for i, rec := range batch.Records {
		rows = append(rows, []string{
			labels[i],
			string(rec.Method),
			strconv.Itoa(rec.WordCount()),
			strconv.Itoa(rec.UniqueWordCount()),
			preview(rec.Tokens, 10),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Source", "Method", "Words", "Unique", "First Tokens"},
		Rows:   rows,
	})

	return md.Build()
}

// preview joins the first n tokens for the summary table.
func preview(tokens []string, n int) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) > n {
		return strings.Join(tokens[:n], " | ") + " …"
	}
	return strings.Join(tokens, " | ")
}
