package model

import (
	"testing"
	"time"
)

func TestMethodOK(t *testing.T) {
	for _, m := range []Method{MethodSniper, MethodDensity, MethodSweep, MethodDirect} {
		if !m.OK() {
			t.Fatalf("expected %s to be usable", m)
		}
	}
	for _, m := range []Method{MethodError, MethodEmpty} {
		if m.OK() {
			t.Fatalf("expected %s to be a failure", m)
		}
	}
}

func TestSourceLabel(t *testing.T) {
	u := Source{Kind: KindURL, Value: "https://example.com"}
	if got := u.Label(0); got != "https://example.com" {
		t.Fatalf("unexpected label %q", got)
	}
	txt := Source{Kind: KindText, Value: "whatever"}
	if got := txt.Label(2); got != "text-3" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestBatchLabels_NumbersTextItemsAmongThemselves(t *testing.T) {
	b := &AnalysisBatch{
		Records: []TokenizedRecord{
			{Source: Source{Kind: KindURL, Value: "https://example.com/a"}},
			{Source: Source{Kind: KindURL, Value: "https://example.com/b"}},
			{Source: Source{Kind: KindText, Value: "ข้อความแรก"}},
			{Source: Source{Kind: KindURL, Value: "https://example.com/c"}},
			{Source: Source{Kind: KindText, Value: "ข้อความที่สอง"}},
		},
	}
	got := b.Labels()
	want := []string{
		"https://example.com/a",
		"https://example.com/b",
		"text-1",
		"https://example.com/c",
		"text-2",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRecordCounts(t *testing.T) {
	rec := TokenizedRecord{Tokens: []string{"a", "b", "a"}}
	if rec.WordCount() != 3 {
		t.Fatalf("expected 3 words")
	}
	if rec.UniqueWordCount() != 2 {
		t.Fatalf("expected 2 unique words")
	}
}

func TestBatchAggregates(t *testing.T) {
	b := &AnalysisBatch{
		Timestamp: time.Now(),
		Records: []TokenizedRecord{
			{Method: MethodSniper, Tokens: []string{"x", "y"}},
			{Method: MethodError, Tokens: []string{}},
			{Method: MethodDirect, Tokens: []string{"z"}},
		},
	}
	if got := len(b.Succeeded()); got != 2 {
		t.Fatalf("expected 2 succeeded, got %d", got)
	}
	if b.TotalWords() != 3 {
		t.Fatalf("expected 3 total words, got %d", b.TotalWords())
	}
}
