package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// sweepDenylist names the structural tags stripped from the whole
// document before the last-resort sweep.
const sweepDenylist = "script, style, nav, footer, header, aside, button, form, iframe, noscript"

// sweep strips non-content structure from the entire document and
// returns whatever text remains, with line breaks at block boundaries.
func sweep(doc *goquery.Document) string {
	doc.Find(sweepDenylist).Remove()
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return blockText(root)
}

// blockText extracts the text of a selection, inserting newlines around
// block-level elements so that lines survive for junk filtering.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(&b, n)
	}
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "iframe":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol",
			"div", "section", "article", "table", "tr", "blockquote", "figcaption":
			b.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "div",
			"section", "article", "tr", "blockquote", "figcaption":
			b.WriteString("\n")
		}
	}
}
