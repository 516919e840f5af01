package extract

import (
	"bytes"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// densityExtract runs the generic content-density pass over the raw
// document. It kicks in only when no targeted rule matched, and favors
// precision: an empty or error result just hands off to the sweep tier.
func densityExtract(input []byte) (string, bool) {
	article, err := readability.FromReader(bytes.NewReader(input), nil)
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", false
	}
	return text, true
}
