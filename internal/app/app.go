// Package app wires configuration, input parsing, the batch pipeline
// and the export writers into one run.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kritsw/lexiscan/internal/export"
	"github.com/kritsw/lexiscan/internal/fetch"
	"github.com/kritsw/lexiscan/internal/model"
	"github.com/kritsw/lexiscan/internal/pipeline"
	"github.com/kritsw/lexiscan/internal/tokenize"
)

// ErrNoSources is surfaced to the caller when the input contains no
// usable lines. It is the only pre-processing error shown to the user.
var ErrNoSources = pipeline.ErrNoSources

// App owns the long-lived collaborators of one session.
type App struct {
	cfg      Config
	runner   *pipeline.Runner
	sessions *SessionStore
}

// New builds the application from configuration.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.FetchTimeout,
	}
	runner := pipeline.NewRunner(client, tokenize.NewDefaultAdapter(),
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithJunkFilter(cfg.FilterJunk),
	)

	return &App{
		cfg:      cfg,
		runner:   runner,
		sessions: NewSessionStore(),
	}, nil
}

// Sessions exposes the session store for the invoking collaborator.
func (a *App) Sessions() *SessionStore { return a.sessions }

// Run reads the input, processes every source, records the batch in the
// session store, and writes the configured exports.
func (a *App) Run(ctx context.Context) error {
	sources, err := a.readSources()
	if err != nil {
		return err
	}

	batch, err := a.runner.Run(ctx, sources)
	if err != nil {
		return err
	}
	a.sessions.Add(batch)

	return a.writeExports(batch)
}

// readSources loads and classifies the input lines.
func (a *App) readSources() ([]model.Source, error) {
	var raw []byte
	var err error
	if a.cfg.InputPath == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(a.cfg.InputPath)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	sources := ParseSources(string(raw), a.cfg.Mode)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	return sources, nil
}

// ParseSources splits newline-separated input into sources according to
// the mode. Blank lines are skipped.
func ParseSources(input string, mode InputMode) []model.Source {
	lines := strings.Split(input, "\n")
	sources := make([]model.Source, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kind := model.KindText
		switch mode {
		case ModeURL:
			kind = model.KindURL
		case ModeText:
			kind = model.KindText
		default:
			if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
				kind = model.KindURL
			}
		}
		sources = append(sources, model.Source{Kind: kind, Value: line})
	}
	return sources
}

// writeExports renders the batch with every configured writer.
func (a *App) writeExports(batch *model.AnalysisBatch) error {
	type target struct {
		path string
		make func(io.Writer) export.Writer
	}
	targets := []target{
		{a.cfg.XLSXPath, func(w io.Writer) export.Writer { return export.NewXLSXWriter(w) }},
		{a.cfg.CSVPath, func(w io.Writer) export.Writer { return export.NewCSVWriter(w) }},
		{a.cfg.TextPath, func(w io.Writer) export.Writer { return export.NewTextWriter(w) }},
		{a.cfg.MarkdownPath, func(w io.Writer) export.Writer { return export.NewMarkdownWriter(w) }},
	}

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		f, err := os.Create(t.path)
		if err != nil {
			return fmt.Errorf("create export %s: %w", t.path, err)
		}
		werr := t.make(f).Write(batch)
		cerr := f.Close()
		if werr != nil {
			return fmt.Errorf("write export %s: %w", t.path, werr)
		}
		if cerr != nil {
			return fmt.Errorf("close export %s: %w", t.path, cerr)
		}
		log.Info().Str("path", t.path).Msg("export written")
	}
	return nil
}
