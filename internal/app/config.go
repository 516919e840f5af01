package app

import "time"

// DefaultMaxAttempts is the flag default for fetch attempts per URL,
// including the first.
const DefaultMaxAttempts = 2

// InputMode controls how input lines are interpreted.
type InputMode string

const (
	// ModeAuto treats lines starting with http:// or https:// as URLs
	// and everything else as raw text.
	ModeAuto InputMode = "auto"
	// ModeURL treats every line as a URL.
	ModeURL InputMode = "url"
	// ModeText treats every line as raw text to analyze directly.
	ModeText InputMode = "text"
)

// Config holds runtime configuration for the application.
type Config struct {
	// InputPath is the newline-separated source list; "-" reads stdin.
	InputPath string
	Mode      InputMode

	// Exports. Empty paths disable the corresponding writer.
	XLSXPath     string
	CSVPath      string
	TextPath     string
	MarkdownPath string

	// Fetching
	UserAgent    string
	FetchTimeout time.Duration
	MaxAttempts  int

	// Processing
	Concurrency int
	FilterJunk  bool

	// Behavior
	Verbose bool
}
