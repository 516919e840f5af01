package extract

import (
	"strings"
	"testing"

	"github.com/kritsw/lexiscan/internal/model"
)

func TestExtract_SniperWinsAndExcludesNav(t *testing.T) {
	html := `<html><body>
		<article class="article-body">Text here</article>
		<nav>Menu</nav>
	</body></html>`

	res := Extract([]byte(html), true)
	if res.Method != model.MethodSniper {
		t.Fatalf("expected sniper method, got %s", res.Method)
	}
	if strings.TrimSpace(res.Text) != "Text here" {
		t.Fatalf("expected %q, got %q", "Text here", res.Text)
	}
	if strings.Contains(res.Text, "Menu") {
		t.Fatalf("nav content leaked into extraction: %q", res.Text)
	}
}

func TestExtract_SniperMatchesAttributeRules(t *testing.T) {
	html := `<html><body>
		<div itemprop="articleBody">Schema body content</div>
	</body></html>`

	res := Extract([]byte(html), true)
	if res.Method != model.MethodSniper {
		t.Fatalf("expected sniper method, got %s", res.Method)
	}
	if !strings.Contains(res.Text, "Schema body content") {
		t.Fatalf("expected attribute-matched content, got %q", res.Text)
	}
}

func TestExtract_SniperRemovesInlineJunk(t *testing.T) {
	html := `<html><body>
		<div class="content-detail">
			<p>Real paragraph one.</p>
			<script>alert("x")</script>
			<div class="ads">Buy now</div>
			<p>Real paragraph two.</p>
		</div>
	</body></html>`

	res := Extract([]byte(html), true)
	if res.Method != model.MethodSniper {
		t.Fatalf("expected sniper method, got %s", res.Method)
	}
	if strings.Contains(res.Text, "Buy now") || strings.Contains(res.Text, "alert") {
		t.Fatalf("junk not removed from matched container: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Real paragraph one.") || !strings.Contains(res.Text, "Real paragraph two.") {
		t.Fatalf("content lost: %q", res.Text)
	}
}

func TestExtract_SniperRuleOrderIsPriority(t *testing.T) {
	// Both rules match; the higher-priority article-body must win even
	// though role=main appears first in the document.
	html := `<html><body>
		<div role="main">Landmark text</div>
		<div class="article-body">Priority text</div>
	</body></html>`

	res := Extract([]byte(html), true)
	if res.Method != model.MethodSniper {
		t.Fatalf("expected sniper method, got %s", res.Method)
	}
	if !strings.Contains(res.Text, "Priority text") || strings.Contains(res.Text, "Landmark text") {
		t.Fatalf("rule priority not honored: %q", res.Text)
	}
}

func TestExtract_ShortPageIsEmpty(t *testing.T) {
	html := `<html><body><div>tiny</div></body></html>`
	res := Extract([]byte(html), true)
	if res.Method != model.MethodEmpty {
		t.Fatalf("expected empty method, got %s with %q", res.Method, res.Text)
	}
	if res.Text != "" {
		t.Fatalf("expected empty text on failure, got %q", res.Text)
	}
}

func TestExtract_JunkFilterSettingChangesUsability(t *testing.T) {
	// A page of short navigation-style lines clears the length floor
	// only when junk filtering is off. The cascade must judge usability
	// with the same setting the caller tokenizes with.
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 12; i++ {
		sb.WriteString("<p>คลิก อ่านต่อ หน้าแรก เมนู</p>")
	}
	sb.WriteString("</body></html>")
	page := []byte(sb.String())

	if res := Extract(page, true); res.Method != model.MethodEmpty {
		t.Fatalf("expected empty with junk filter on, got %s with %q", res.Method, res.Text)
	}
	if res := Extract(page, false); !res.Method.OK() {
		t.Fatalf("expected usable extraction with junk filter off, got %s", res.Method)
	}
}

func TestExtract_UnmarkedPageFallsThroughWithContent(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 12; i++ {
		sb.WriteString("<p>A reasonably long sentence of plain readable body text for fallback extraction.</p>")
	}
	sb.WriteString("</body></html>")

	res := Extract([]byte(sb.String()), true)
	if res.Method != model.MethodDensity && res.Method != model.MethodSweep {
		t.Fatalf("expected density or sweep, got %s", res.Method)
	}
	if !strings.Contains(res.Text, "plain readable body text") {
		t.Fatalf("content lost in fallback: %q", res.Text)
	}
}

func TestExtract_MalformedHTMLDoesNotPanic(t *testing.T) {
	res := Extract([]byte("<div><<<><p unclosed"), true)
	if res.Method.OK() && res.Text == "" {
		t.Fatalf("ok method with empty text")
	}
}

func TestSweep_StripsDenylistTags(t *testing.T) {
	html := `<html><body>
		<nav>Navigation menu</nav>
		<header>Site header</header>
		<p>Surviving paragraph.</p>
		<footer>Footer links</footer>
		<form><button>Submit</button></form>
		<noscript>Enable JS</noscript>
	</body></html>`

	doc := mustParse(t, html)
	text := sweep(doc)
	for _, junk := range []string{"Navigation menu", "Site header", "Footer links", "Submit", "Enable JS"} {
		if strings.Contains(text, junk) {
			t.Fatalf("denylisted content %q survived sweep: %q", junk, text)
		}
	}
	if !strings.Contains(text, "Surviving paragraph.") {
		t.Fatalf("content lost in sweep: %q", text)
	}
}

func TestSnipe_NoMatch(t *testing.T) {
	doc := mustParse(t, `<html><body><div class="unrelated">text</div></body></html>`)
	if _, ok := snipe(doc); ok {
		t.Fatalf("expected no sniper match")
	}
}

func TestBlockText_InsertsLineBreaks(t *testing.T) {
	doc := mustParse(t, `<html><body><p>one</p><p>two</p></body></html>`)
	text := blockText(doc.Find("body"))
	if !strings.Contains(text, "\n") {
		t.Fatalf("expected line breaks between blocks, got %q", text)
	}
}
