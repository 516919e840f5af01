// Package extract isolates article body text from raw HTML using a
// three-tier cascade: targeted structural rules for known page
// templates, a generic readability pass, and finally a filtered sweep
// of the whole document.
package extract

import (
	"bytes"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/kritsw/lexiscan/internal/model"
	"github.com/kritsw/lexiscan/internal/normalize"
)

// minSweepRunes is the usable-length floor for sweep output. A whole-page
// sweep that normalizes to less than this is navigation residue, not an
// article.
const minSweepRunes = 100

// Result is the extractor's outcome for one document.
type Result struct {
	Text   string
	Method model.Method
}

// Extract runs the cascade over a UTF-8 HTML document. The first tier
// that yields text wins. filterJunk matches the normalization setting
// the caller will tokenize with, so the length floor judges the same
// text the pipeline will keep. It never panics on malformed markup;
// documents with nothing usable come back as MethodEmpty.
func Extract(input []byte, filterJunk bool) Result {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return Result{Method: model.MethodError}
	}

	if text, ok := snipe(doc); ok {
		return Result{Text: text, Method: model.MethodSniper}
	}

	if text, ok := densityExtract(input); ok && usable(text, filterJunk) {
		return Result{Text: text, Method: model.MethodDensity}
	}

	text := sweep(doc)
	if !usable(text, filterJunk) {
		return Result{Method: model.MethodEmpty}
	}
	return Result{Text: text, Method: model.MethodSweep}
}

// usable applies the minimum-length floor to a tier's raw output, post
// normalization. The readability pass will happily echo trivial body
// text, so the floor applies to it as well as to the sweep.
func usable(text string, filterJunk bool) bool {
	return utf8.RuneCountInString(normalize.Normalize(text, filterJunk)) >= minSweepRunes
}
