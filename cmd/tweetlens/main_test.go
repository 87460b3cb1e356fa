package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	app := &cli.App{
		Name: "tweetlens",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Before: setupLogger,
		Action: func(*cli.Context) error { return nil },
	}

	t.Run("valid level", func(t *testing.T) {
		err := app.Run([]string{"tweetlens", "--log-level", "debug"})
		require.NoError(t, err)
		assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		err := app.Run([]string{"tweetlens", "--log-level", "WARN"})
		require.NoError(t, err)
		assert.False(t, slog.Default().Enabled(nil, slog.LevelInfo))
	})

	t.Run("invalid level", func(t *testing.T) {
		err := app.Run([]string{"tweetlens", "--log-level", "verbose"})
		assert.Error(t, err)
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	app := &cli.App{
		Name: "tweetlens",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags:  append([]cli.Flag{dbFlag()}, serviceFlags()...),
			},
		},
	}

	err := app.Run([]string{"tweetlens", "search", "--db", t.TempDir()})
	assert.ErrorContains(t, err, "search query is required")
}
