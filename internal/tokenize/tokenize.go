// Package tokenize wraps pluggable word-segmentation engines behind a
// fallback chain that never fails: dictionary segmenter first, Unicode
// word boundaries second, naive whitespace split last.
package tokenize

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Adapter runs the engine chain. The zero value (no engines) degrades
// to the naive whitespace split. Safe for concurrent use.
type Adapter struct {
	primary   Engine
	secondary Engine

	// resetMu makes the reset-and-retry path exclusive so concurrent
	// failures cannot interleave engine rebuilds.
	resetMu sync.Mutex
}

// NewAdapter builds an adapter over the given engines. Either may be
// nil, in which case the chain skips that slot.
func NewAdapter(primary, secondary Engine) *Adapter {
	return &Adapter{primary: primary, secondary: secondary}
}

// NewDefaultAdapter wires the standard chain: Thai dictionary segmenter
// when its dictionary loads, UAX #29 words otherwise. An unavailable
// dictionary is logged and tolerated.
func NewDefaultAdapter() *Adapter {
	var primary Engine
	dict, err := NewDictEngine()
	if err != nil {
		log.Warn().Err(err).Msg("dictionary segmenter unavailable; falling back to unicode segmentation")
	} else {
		primary = dict
	}
	return NewAdapter(primary, NewUnicodeEngine())
}

// Tokenize segments text into words. It never returns nil: empty input
// yields an empty slice, and total engine failure degrades to a
// whitespace split. Left-to-right token order is preserved; there is no
// deduplication or case folding.
func (a *Adapter) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	if a.primary != nil {
		if tokens, err := a.primary.Segment(text); err == nil {
			return nonNil(tokens)
		} else if tokens, ok := a.retryAfterReset(text, err); ok {
			return nonNil(tokens)
		}
	}

	if a.secondary != nil {
		if tokens, err := a.secondary.Segment(text); err == nil {
			return nonNil(tokens)
		}
	}

	return naiveSplit(text)
}

// retryAfterReset resets the primary engine once and retries. The reset
// is serialized across callers; segment calls that are already running
// keep their own engine snapshot.
func (a *Adapter) retryAfterReset(text string, cause error) ([]string, bool) {
	a.resetMu.Lock()
	resetErr := a.primary.Reset()
	a.resetMu.Unlock()

	if resetErr != nil {
		log.Warn().Err(cause).AnErr("reset_error", resetErr).
			Str("engine", a.primary.Name()).Msg("engine reset failed")
		return nil, false
	}
	tokens, err := a.primary.Segment(text)
	if err != nil {
		log.Warn().Err(err).Str("engine", a.primary.Name()).Msg("engine failed after reset")
		return nil, false
	}
	return tokens, true
}

// naiveSplit is the terminal fallback. It splits on whitespace only, so
// unsegmented Thai input degenerates to a single token; that matches
// the historical behavior under total segmenter failure.
func naiveSplit(text string) []string {
	fields := strings.Fields(text)
	if fields == nil {
		return []string{}
	}
	return fields
}

func nonNil(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
