package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sniperRule pins down the article container of a known page template by
// one attribute. Rules are tried in slice order and the first structural
// match wins, so the order below is a priority ranking, not a set.
type sniperRule struct {
	attr  string
	value string
}

var sniperRules = []sniperRule{
	{"class", "EntryReaderInner"}, // Sanook
	{"id", "EntryReader_0"},       // Sanook legacy
	{"class", "article-body"},     // common semantic markup
	{"itemprop", "articleBody"},   // schema.org
	{"class", "content-detail"},   // Thai news portals
	{"class", "news-detail"},      // Thai news portals
	{"class", "story-body"},       // BBC and derivatives
	{"class", "article-content"},  // general
	{"role", "main"},              // ARIA landmark
}

// sniperContainers are the element types a rule may match on. Anything
// else carrying the attribute (a span, a link) is too small to be the
// article body.
var sniperContainers = []string{"div", "article", "section", "main"}

// junkWithinMatch is removed from inside a matched container before text
// extraction: scripts, styles and in-article ad/related blocks.
const junkWithinMatch = `script, style, .ads, .advertisement, .related, [class*="related-content"]`

// snipe tries each targeted rule in priority order and returns the text
// of the first matching container.
func snipe(doc *goquery.Document) (string, bool) {
	for _, rule := range sniperRules {
		sel := doc.Find(rule.selector()).First()
		if sel.Length() == 0 {
			continue
		}
		sel.Find(junkWithinMatch).Remove()
		text := blockText(sel)
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, true
	}
	return "", false
}

// selector renders the rule as a CSS selector over the allowed
// container elements.
func (r sniperRule) selector() string {
	parts := make([]string, 0, len(sniperContainers))
	for _, tag := range sniperContainers {
		if r.attr == "class" {
			parts = append(parts, tag+"."+r.value)
			continue
		}
		parts = append(parts, fmt.Sprintf(`%s[%s=%q]`, tag, r.attr, r.value))
	}
	return strings.Join(parts, ", ")
}
