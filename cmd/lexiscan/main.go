package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kritsw/lexiscan/internal/app"
	"github.com/kritsw/lexiscan/internal/fetch"
	"github.com/kritsw/lexiscan/internal/pipeline"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		mode         string
		configPath   string
		xlsxPath     string
		csvPath      string
		textPath     string
		markdownPath string
		userAgent    string
		fetchTimeout time.Duration
		maxAttempts  int
		concurrency  int
		noJunkFilter bool
		verbose      bool
	)

	flag.StringVar(&inputPath, "input", "-", "Path to newline-separated URL/text list ('-' reads stdin)")
	flag.StringVar(&mode, "mode", "auto", "Input interpretation: auto, url or text")
	flag.StringVar(&configPath, "config", os.Getenv("LEXISCAN_CONFIG"), "Optional YAML config file")
	flag.StringVar(&xlsxPath, "out.xlsx", "", "Write XLSX workbook to this path")
	flag.StringVar(&csvPath, "out.csv", "", "Write long-form word table CSV to this path")
	flag.StringVar(&textPath, "out.txt", "", "Write plain-text report to this path")
	flag.StringVar(&markdownPath, "out.md", "", "Write Markdown summary to this path")
	flag.StringVar(&userAgent, "fetch.ua", fetch.DefaultUserAgent, "User-Agent header for page fetches")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", fetch.DefaultTimeout, "Per-request fetch timeout")
	flag.IntVar(&maxAttempts, "fetch.attempts", app.DefaultMaxAttempts, "Fetch attempts per URL including the first")
	flag.IntVar(&concurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum concurrent extractions")
	flag.BoolVar(&noJunkFilter, "no-junk-filter", false, "Disable junk-line filtering during normalization")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:    inputPath,
		Mode:         app.InputMode(mode),
		XLSXPath:     xlsxPath,
		CSVPath:      csvPath,
		TextPath:     textPath,
		MarkdownPath: markdownPath,
		UserAgent:    userAgent,
		FetchTimeout: fetchTimeout,
		MaxAttempts:  maxAttempts,
		Concurrency:  concurrency,
		FilterJunk:   !noJunkFilter,
		Verbose:      verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	// The level is decided only after the file overlay so a config file
	// can turn verbose logging on.
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Empty input is a user mistake worth a distinct exit code; the
		// batch itself never fails on per-source errors.
		if errors.Is(err, app.ErrNoSources) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(context.Background())
}
