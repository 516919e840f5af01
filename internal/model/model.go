// Package model holds the shared data types that flow between the
// extraction pipeline, the tokenizer, and the export writers.
package model

import (
	"strconv"
	"time"
)

// SourceKind distinguishes URL sources, which are fetched over HTTP,
// from raw text sources, which skip the network entirely.
type SourceKind int

const (
	KindURL SourceKind = iota
	KindText
)

func (k SourceKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Source is a single input item. Immutable once created.
type Source struct {
	Kind  SourceKind
	Value string
}

// Label returns the identifier used for this source in exports: the
// URL itself, or a positional name for raw text items. ordinal counts
// text items only, starting at zero.
func (s Source) Label(ordinal int) string {
	if s.Kind == KindURL {
		return s.Value
	}
	return "text-" + strconv.Itoa(ordinal+1)
}

// Method records which extraction strategy produced a result.
type Method string

const (
	// MethodSniper means a targeted structural rule matched a known
	// article container.
	MethodSniper Method = "sniper"
	// MethodDensity means the generic readability/content-density
	// extractor produced the text.
	MethodDensity Method = "density"
	// MethodSweep means the filtered full-page sweep produced the text.
	MethodSweep Method = "sweep"
	// MethodDirect means the source was raw text and only normalization
	// was applied.
	MethodDirect Method = "direct"
	// MethodError means fetching or parsing failed.
	MethodError Method = "error"
	// MethodEmpty means every tier ran but nothing usable came out.
	MethodEmpty Method = "empty"
)

// OK reports whether the method represents a usable extraction.
func (m Method) OK() bool {
	return m == MethodSniper || m == MethodDensity || m == MethodSweep || m == MethodDirect
}

// ExtractionResult is the outcome of running the extractor cascade over
// one HTML document. Text is empty exactly when Method is error/empty.
type ExtractionResult struct {
	Text   string
	Method Method
}

// TokenizedRecord is one fully processed source. CleanedText is the
// exact string that was handed to the tokenizer; Tokens preserves the
// tokenizer's left-to-right order and is never nil.
type TokenizedRecord struct {
	Source      Source
	CleanedText string
	Tokens      []string
	Method      Method
	Timestamp   time.Time
}

// WordCount returns the number of tokens in the record.
func (r TokenizedRecord) WordCount() int { return len(r.Tokens) }

// UniqueWordCount returns the number of distinct tokens in the record.
func (r TokenizedRecord) UniqueWordCount() int {
	seen := make(map[string]struct{}, len(r.Tokens))
	for _, t := range r.Tokens {
		seen[t] = struct{}{}
	}
	return len(seen)
}

// AnalysisBatch is the result of one run over a list of sources.
// Records keeps the input order of the sources that produced them.
type AnalysisBatch struct {
	Timestamp time.Time
	Records   []TokenizedRecord
}

// Labels returns one export label per record, in record order. Text
// items are numbered 1..N among themselves, so a mixed batch never
// skips a text number because of interleaved URLs.
func (b *AnalysisBatch) Labels() []string {
	labels := make([]string, len(b.Records))
	var textOrdinal int
	for i, r := range b.Records {
		labels[i] = r.Source.Label(textOrdinal)
		if r.Source.Kind == KindText {
			textOrdinal++
		}
	}
	return labels
}

// Succeeded returns the records whose extraction produced usable text.
func (b *AnalysisBatch) Succeeded() []TokenizedRecord {
	out := make([]TokenizedRecord, 0, len(b.Records))
	for _, r := range b.Records {
		if r.Method.OK() {
			out = append(out, r)
		}
	}
	return out
}

// TotalWords sums the token counts across all records.
func (b *AnalysisBatch) TotalWords() int {
	var n int
	for _, r := range b.Records {
		n += len(r.Tokens)
	}
	return n
}
