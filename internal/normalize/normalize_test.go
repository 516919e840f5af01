package normalize

import (
	"strings"
	"testing"
)

func TestNormalize_CollapsesWhitespaceAndInvisibles(t *testing.T) {
	got := Normalize(" Hello   world \u200b", false)
	if got != "Hello world" {
		t.Fatalf("expected %q, got %q", "Hello world", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		" Hello   world \u200b",
		"ข่าว &amp; บทความ\nอ่านต่อ คลิก",
		"Mixed ไทย English 123. lines\n\nwith &lt;tags&gt;",
		"\ufeffbom prefixed",
		"โฆษณา" + strings.Repeat("!", 40),
	}
	for _, in := range inputs {
		once := Normalize(in, true)
		twice := Normalize(once, true)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalize_UnescapesEntities(t *testing.T) {
	got := Normalize("fish &amp; chips", false)
	// The ampersand itself is outside the allowlist and becomes a space.
	if got != "fish chips" {
		t.Fatalf("expected %q, got %q", "fish chips", got)
	}
}

func TestNormalize_DropsShortJunkLines(t *testing.T) {
	in := "คลิก อ่านต่อ\nThis is a perfectly normal sentence that should absolutely survive filtering."
	got := Normalize(in, true)
	if strings.Contains(got, "คลิก") {
		t.Fatalf("expected junk line dropped, got %q", got)
	}
	if !strings.Contains(got, "normal sentence") {
		t.Fatalf("expected real content kept, got %q", got)
	}
}

func TestNormalize_JunkFilterSeesCleanedLines(t *testing.T) {
	// Punctuation padding makes the raw line longer than the junk-line
	// ceiling, but cleaning shrinks it below. The filter must measure
	// the cleaned line so a second pass has nothing left to remove.
	in := "โฆษณา" + strings.Repeat("!", 40)
	once := Normalize(in, true)
	if once != "" {
		t.Fatalf("expected junk line dropped on first pass, got %q", once)
	}
	if twice := Normalize(once, true); twice != once {
		t.Fatalf("not idempotent: first %q, second %q", once, twice)
	}
}

func TestNormalize_KeepsLongLinesMentioningJunkWords(t *testing.T) {
	long := "บทความนี้พูดถึงโฆษณาในสื่อไทยอย่างละเอียดและมีความยาวเกินเกณฑ์การกรองบรรทัดขยะแน่นอน"
	got := Normalize(long, true)
	if got == "" {
		t.Fatalf("expected long line kept despite junk keyword")
	}
}

func TestNormalize_JunkFilterDisabled(t *testing.T) {
	got := Normalize("คลิก อ่านต่อ", false)
	if got == "" {
		t.Fatalf("expected junk line kept when filtering is off")
	}
}

func TestNormalize_ReplacesDisallowedRunes(t *testing.T) {
	got := Normalize("a–b—c☃d", false)
	if got != "a b c d" {
		t.Fatalf("expected %q, got %q", "a b c d", got)
	}
}

func TestNormalize_KeepsThaiAndDigitsAndPeriods(t *testing.T) {
	in := "ราคา 99.50 บาท"
	got := Normalize(in, false)
	if got != in {
		t.Fatalf("expected %q unchanged, got %q", in, got)
	}
}

func TestNormalize_MalformedUTF8DoesNotPanic(t *testing.T) {
	got := Normalize("ok \xff\xfe broken", false)
	if !strings.Contains(got, "ok") || !strings.Contains(got, "broken") {
		t.Fatalf("expected best-effort output, got %q", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize("", true); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
