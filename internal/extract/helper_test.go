package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}
