// Package normalize cleans extracted page text down to the plain
// Thai/English character set the tokenizer expects.
package normalize

import (
	"html"
	"regexp"
	"strings"
)

// junkKeywords marks short promotional or navigation lines that carry no
// article content. The list targets Thai news portals.
var junkKeywords = []string{
	"หวย", "ดวง", "โฆษณา", "อ่านต่อ", "คลิก", "หน้าแรก", "เมนู", "Login",
}

// junkLineMaxLen is the length ceiling for junk-line filtering. Longer
// lines are kept even when they mention a junk keyword, since real
// sentences can do that too.
const junkLineMaxLen = 40

// keepRe matches every rune outside the allowed character set: ASCII
// letters, the Thai consonant and vowel/tone ranges, digits, periods and
// whitespace. Disallowed runs are replaced with a single space.
var keepRe = regexp.MustCompile(`[^a-zA-Zก-ฮะ-์0-9.\s]+`)

// spaceRe collapses any whitespace run to a single space.
var spaceRe = regexp.MustCompile(`\s+`)

// Normalize cleans raw text for tokenization. When filterJunk is set,
// short lines containing a junk keyword are dropped. The function is
// pure and idempotent; malformed UTF-8 is replaced rather than
// rejected.
//
// The junk filter measures lines after character cleaning, not before.
// Filtering raw lines would let a line shrink below the length ceiling
// on a later pass and break idempotence.
func Normalize(raw string, filterJunk bool) string {
	if raw == "" {
		return ""
	}
	text := strings.ToValidUTF8(raw, " ")
	text = html.UnescapeString(text)
	text = stripInvisible(text)
	text = keepRe.ReplaceAllString(text, " ")
	if filterJunk {
		text = dropJunkLines(text)
	}
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// dropJunkLines removes short lines that look like navigation chrome or
// promotional filler. Line length and keyword checks run against the
// collapsed form of each line, so they see exactly what the final
// output will contain.
func dropJunkLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		if len([]rune(line)) < junkLineMaxLen && containsJunk(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func containsJunk(line string) bool {
	for _, kw := range junkKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// stripInvisible removes zero-width spaces/joiners and byte order marks
// that survive HTML extraction and would otherwise glue words together.
func stripInvisible(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
