package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/presshound/pkg/config"
	"github.com/umputun/presshound/pkg/enrich"
	"github.com/umputun/presshound/pkg/feed"
	"github.com/umputun/presshound/pkg/publisher"
	"github.com/umputun/presshound/pkg/scraper"
	"github.com/umputun/presshound/server"
)

// Opts with all CLI options
type Opts struct {
	Config     string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults used if not set"`
	Listen     string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	HunterKey  string `long:"hunter-key" env:"HUNTER_API_KEY" description:"hunter.io api key, overrides config"`
	Publishers string `long:"publishers" env:"PUBLISHERS" description:"publishers registry file, embedded registry if not set"`

	Topic     string `short:"t" long:"topic" description:"run a single scrape for the topic and print results as JSON"`
	Geography string `short:"g" long:"geography" description:"geography filter for --topic"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts, opts.HunterKey) // early setup keeps config warnings off stdout in one-shot mode
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	setupLog(opts, cfg.Hunter.APIKey)
	log.Printf("[INFO] starting presshound version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, cfg, opts, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// loadConfig reads the config file if set and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.HunterKey != "" {
		cfg.Hunter.APIKey = opts.HunterKey
	}
	if opts.Publishers != "" {
		cfg.Scrape.PublishersFile = opts.Publishers
	}
	return cfg, nil
}

// run wires the pipeline and either serves http or, with a topic set, makes a single scrape
// and writes the result to out
func run(ctx context.Context, cfg *config.Config, opts Opts, out io.Writer) error {
	registry, err := loadRegistry(cfg.Scrape.PublishersFile)
	if err != nil {
		return fmt.Errorf("failed to load publishers: %w", err)
	}

	if cfg.Hunter.APIKey == "" {
		log.Print("[WARN] hunter api key is not set, emails fall back to editor@domain")
	}

	hunter := enrich.NewHunterClient(enrich.HunterConfig{
		Endpoint: cfg.Hunter.Endpoint,
		APIKey:   cfg.Hunter.APIKey,
		Timeout:  cfg.Hunter.Timeout,
		Attempts: cfg.Hunter.Attempts,
	})

	sc := scraper.New(scraper.Config{
		Fetcher: feed.NewFetcher(feed.Config{
			Timeout:    cfg.Scrape.FeedTimeout,
			UserAgent:  cfg.Scrape.UserAgent,
			MaxEntries: cfg.Scrape.MaxEntries,
		}),
		Enricher: enrich.NewEnricher(hunter, enrich.Config{
			MinConfidence: cfg.Hunter.MinConfidence,
			Concurrency:   cfg.Hunter.Concurrency,
			RateLimit:     cfg.Hunter.RateLimit,
		}),
		Registry:    registry,
		Concurrency: cfg.Scrape.Concurrency,
		MaxArticles: cfg.Scrape.MaxArticles,
	})

	if opts.Topic != "" {
		return scrapeOnce(ctx, sc, opts.Topic, opts.Geography, out)
	}

	srv := server.New(cfg, sc, registry, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func loadRegistry(path string) (*publisher.Registry, error) {
	if path == "" {
		return publisher.Default()
	}
	log.Printf("[INFO] loading publishers from %s", path)
	return publisher.Load(path)
}

// scrapeOnce runs a single scrape and prints enriched journalists as indented JSON
func scrapeOnce(ctx context.Context, sc *scraper.Scraper, topic, geography string, out io.Writer) error {
	res, err := sc.Scrape(ctx, topic, geography)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Journalists); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func setupLog(opts Opts, secs ...string) {
	logOpts := []lgr.Option{lgr.LevelBraces}
	if opts.Debug {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}
	if opts.Topic != "" {
		// stdout carries the JSON result in one-shot mode
		logOpts = append(logOpts, lgr.Out(os.Stderr))
	}

	color.NoColor = color.NoColor || opts.NoColor
	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
