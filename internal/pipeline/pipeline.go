// Package pipeline fans a list of sources out to the fetch/extract/
// tokenize stages with bounded concurrency and collects one record per
// source, failures included.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/kritsw/lexiscan/internal/extract"
	"github.com/kritsw/lexiscan/internal/model"
	"github.com/kritsw/lexiscan/internal/normalize"
)

// ErrNoSources is returned when a run is requested with an empty source
// list. It is the only error a batch run surfaces; per-source failures
// become error records instead.
var ErrNoSources = errors.New("no sources to process")

// DefaultConcurrency bounds simultaneous in-flight extractions.
const DefaultConcurrency = 10

// Fetcher retrieves one URL and returns the decoded body.
type Fetcher interface {
	Get(ctx context.Context, url string) (body []byte, contentType string, err error)
}

// Tokenizer segments cleaned text into words.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Runner executes batches. Construct with NewRunner.
type Runner struct {
	fetcher     Fetcher
	tokenizer   Tokenizer
	concurrency int
	filterJunk  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency caps simultaneous extractions. Non-positive values
// keep the default of 10.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithJunkFilter toggles the junk-line heuristics during normalization.
func WithJunkFilter(on bool) Option {
	return func(r *Runner) { r.filterJunk = on }
}

// NewRunner builds a Runner over the given collaborators.
func NewRunner(fetcher Fetcher, tokenizer Tokenizer, opts ...Option) *Runner {
	r := &Runner{
		fetcher:     fetcher,
		tokenizer:   tokenizer,
		concurrency: DefaultConcurrency,
		filterJunk:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes all sources and returns the finished batch. URL sources
// are fetched and extracted concurrently up to the concurrency limit;
// text sources skip the network. A failing source becomes an error or
// empty record and never delays the others. Record order matches the
// input order.
func (r *Runner) Run(ctx context.Context, sources []model.Source) (*model.AnalysisBatch, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	started := time.Now()
	log.Info().Int("sources", len(sources)).Int("concurrency", r.concurrency).
		Msg("starting batch")

	records := make([]model.TokenizedRecord, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			records[i] = r.processOne(ctx, src)
			// Failures are recorded in the slot, never returned,
			// so one bad source cannot cancel the group.
			return nil
		})
	}
	_ = g.Wait()

	batch := &model.AnalysisBatch{Timestamp: started, Records: records}
	log.Info().Int("records", len(records)).Int("succeeded", len(batch.Succeeded())).
		Dur("elapsed", time.Since(started)).Msg("batch complete")
	return batch, nil
}

func (r *Runner) processOne(ctx context.Context, src model.Source) model.TokenizedRecord {
	rec := model.TokenizedRecord{
		Source:    src,
		Tokens:    []string{},
		Timestamp: time.Now(),
	}

	switch src.Kind {
	case model.KindText:
		rec.Method = model.MethodDirect
		rec.CleanedText = normalize.Normalize(src.Value, r.filterJunk)
		if rec.CleanedText == "" {
			rec.Method = model.MethodEmpty
			return rec
		}
	default:
		body, _, err := r.fetcher.Get(ctx, src.Value)
		if err != nil {
			log.Warn().Err(err).Str("url", src.Value).Msg("fetch failed")
			rec.Method = model.MethodError
			return rec
		}
		res := extract.Extract(body, r.filterJunk)
		rec.Method = res.Method
		if !res.Method.OK() {
			log.Warn().Str("url", src.Value).Str("method", string(res.Method)).
				Msg("no content extracted")
			return rec
		}
		rec.CleanedText = normalize.Normalize(res.Text, r.filterJunk)
		if rec.CleanedText == "" {
			rec.Method = model.MethodEmpty
			return rec
		}
	}

	rec.Tokens = r.tokenizer.Tokenize(rec.CleanedText)
	log.Debug().Str("source", src.Value).Str("method", string(rec.Method)).
		Int("tokens", len(rec.Tokens)).Msg("source processed")
	return rec
}
