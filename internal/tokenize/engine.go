package tokenize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/clipperhouse/uax29/v2/words"
	mapkha "github.com/veer66/mapkha"
)

// Engine is one word-segmentation backend. Segment returns tokens in
// left-to-right order; Reset rebuilds internal state after a failure and
// must be safe to call while other goroutines are segmenting.
type Engine interface {
	Name() string
	Segment(text string) ([]string, error)
	Reset() error
}

// DictEngine segments Thai text with the mapkha longest-matching
// dictionary wordcut. The handle is explicitly owned and resettable:
// Reset rebuilds the wordcut from a freshly loaded dictionary instead of
// reloading anything process-wide. Segment calls may run concurrently;
// Reset is exclusive.
type DictEngine struct {
	mu sync.RWMutex
	wc *mapkha.Wordcut
}

// NewDictEngine loads the default bundled dictionary. Callers should
// treat an error as "engine unavailable" and run without a primary.
func NewDictEngine() (*DictEngine, error) {
	wc, err := newWordcut()
	if err != nil {
		return nil, err
	}
	return &DictEngine{wc: wc}, nil
}

func newWordcut() (*mapkha.Wordcut, error) {
	dict, err := mapkha.LoadDefaultDict()
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return mapkha.NewWordcut(dict), nil
}

func (e *DictEngine) Name() string { return "dict" }

// Segment tokenizes text, converting any internal panic of the wordcut
// into an error so the adapter can trigger a reset.
func (e *DictEngine) Segment(text string) (tokens []string, err error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("dict engine panic: %v", r)
		}
	}()
	if e.wc == nil {
		return nil, fmt.Errorf("dict engine not initialized")
	}
	raw := e.wc.Segment(text)
	tokens = make([]string, 0, len(raw))
	for _, t := range raw {
		if strings.TrimSpace(t) == "" {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// Reset discards the wordcut and rebuilds it from the dictionary.
func (e *DictEngine) Reset() error {
	wc, err := newWordcut()
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.wc = wc
	e.mu.Unlock()
	return nil
}

// UnicodeEngine segments by UAX #29 word boundaries. It has no state,
// cannot fail, and serves as the secondary engine: better than a bare
// whitespace split for scripts without spaces, weaker than a dictionary.
type UnicodeEngine struct{}

func NewUnicodeEngine() *UnicodeEngine { return &UnicodeEngine{} }

func (e *UnicodeEngine) Name() string { return "uax29" }

func (e *UnicodeEngine) Segment(text string) ([]string, error) {
	tokens := make([]string, 0, len(text)/4)
	iter := words.FromString(text)
	for iter.Next() {
		t := strings.TrimSpace(iter.Value())
		if t == "" {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (e *UnicodeEngine) Reset() error { return nil }
