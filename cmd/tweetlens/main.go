// Copyright 2026 Sociolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sociolens/tweetlens"
	"github.com/sociolens/tweetlens/ai"
	"github.com/sociolens/tweetlens/analyzer"
	"github.com/sociolens/tweetlens/collector"
	"github.com/sociolens/tweetlens/core"
	"github.com/sociolens/tweetlens/stats"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tweetlens",
		Usage: "Semantic search and analysis over a social-media corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load records from a JSON corpus file into the archive",
				Action: loadCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the JSON corpus file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "Only load records containing any of these terms (empty loads everything)",
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of records to load (0 for no limit)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed reads",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.Float64Flag{
						Name:  "rate-limit",
						Usage: "Maximum fetches per second",
						Value: 1,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the archive with a boolean query plus semantic ranking",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags:     append([]cli.Flag{dbFlag()}, serviceFlags()...),
			},
			{
				Name:   "analyze",
				Usage:  "Run topic and discussion analysis over the stored corpus",
				Action: analyzeCommand,
				Flags:  append([]cli.Flag{dbFlag(), authorFlag()}, serviceFlags()...),
			},
			{
				Name:   "sentiment",
				Usage:  "Run sentiment analysis over the stored corpus",
				Action: sentimentCommand,
				Flags:  append([]cli.Flag{dbFlag(), authorFlag()}, serviceFlags()...),
			},
			{
				Name:   "stats",
				Usage:  "Print engagement statistics and trending keywords",
				Action: statsCommand,
				Flags: []cli.Flag{
					dbFlag(),
					authorFlag(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "How many trending keywords to report",
						Value: 5,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to the archive directory",
		Required: true,
	}
}

func authorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "author",
		Usage: "Restrict to records by this author",
	}
}

func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Semantic service host URL",
			Value: "https://api.openai.com/v1",
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "Model name",
			Value: "gpt-4o",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token",
			EnvVars: []string{"TWEETLENS_API_TOKEN"},
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Response size budget",
			Value: 4000,
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature",
			Value: 0.3,
		},
		&cli.Float64Flag{
			Name:  "min-relevance",
			Usage: "Minimum relevance score a match must reach",
			Value: analyzer.DefaultMinRelevance,
		},
		&cli.IntFlag{
			Name:  "candidate-cap",
			Usage: "Maximum candidates handed to the semantic service",
		},
		&cli.StringFlag{
			Name:  "domain",
			Usage: "Subject area the analysis prompts are framed in",
			Value: analyzer.DefaultDomain,
		},
	}
}

func openArchive(c *cli.Context) (*tweetlens.Archive, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithTemperature(c.Float64("temperature")),
	)
	return tweetlens.Open(c.String("db"), tweetlens.WithAIConfig(config))
}

func newAnalyzer(c *cli.Context, archive *tweetlens.Archive) (*analyzer.Analyzer, error) {
	opts := []analyzer.Option{
		analyzer.WithMinRelevance(c.Float64("min-relevance")),
		analyzer.WithDomain(c.String("domain")),
	}
	if cap := c.Int("candidate-cap"); cap > 0 {
		opts = append(opts, analyzer.WithCandidateCap(cap))
	}
	return archive.NewAnalyzer(opts...)
}

func loadCommand(c *cli.Context) error {
	archive, err := tweetlens.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	fetcher, err := collector.WithRetry(
		collector.NewFileSource(c.String("file")),
		c.Int("max-retries"),
		c.Duration("retry-delay"),
	)
	if err != nil {
		return err
	}
	fetcher = collector.WithRateLimit(fetcher, c.Float64("rate-limit"), 1)

	stored, err := archive.NewCollector(fetcher).Collect(c.Context, c.String("query"), c.Int("max-results"))
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	fmt.Printf("loaded %d records\n", len(stored))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	archive, err := openArchive(c)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	anlz, err := newAnalyzer(c, archive)
	if err != nil {
		return err
	}
	defer anlz.Release()

	result, err := archive.Search(c.Context, anlz, query, nil)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func analyzeCommand(c *cli.Context) error {
	archive, anlz, records, err := setupAnalysis(c)
	if err != nil {
		return err
	}
	defer archive.Close()
	defer anlz.Release()

	return printJSON(anlz.AnalyzeContent(c.Context, records))
}

func sentimentCommand(c *cli.Context) error {
	archive, anlz, records, err := setupAnalysis(c)
	if err != nil {
		return err
	}
	defer archive.Close()
	defer anlz.Release()

	return printJSON(anlz.AnalyzeSentiment(c.Context, records))
}

func statsCommand(c *cli.Context) error {
	archive, err := tweetlens.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	records, err := loadRecords(c.Context, archive, c.String("author"))
	if err != nil {
		return err
	}

	reporter := stats.NewReporter()
	out := struct {
		Summary  stats.Summary        `json:"summary"`
		Trending []stats.KeywordCount `json:"trending_keywords"`
	}{
		Summary:  reporter.Summarize(records),
		Trending: reporter.TrendingKeywords(records, c.Int("top")),
	}
	return printJSON(out)
}

func setupAnalysis(c *cli.Context) (*tweetlens.Archive, *analyzer.Analyzer, []*core.Record, error) {
	archive, err := openArchive(c)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open archive: %w", err)
	}
	anlz, err := newAnalyzer(c, archive)
	if err != nil {
		archive.Close()
		return nil, nil, nil, err
	}
	records, err := loadRecords(c.Context, archive, c.String("author"))
	if err != nil {
		anlz.Release()
		archive.Close()
		return nil, nil, nil, err
	}
	return archive, anlz, records, nil
}

func loadRecords(ctx context.Context, archive *tweetlens.Archive, author string) ([]*core.Record, error) {
	if author != "" {
		return archive.Records().GetRecordsByAuthor(ctx, author)
	}
	return archive.Records().GetAllRecords(ctx)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
