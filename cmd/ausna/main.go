// Copyright 2025 Doelenia
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	ausna "github.com/doelenia/ausna-sub004"
	"github.com/doelenia/ausna-sub004/ai"
	"github.com/doelenia/ausna-sub004/core"
	"github.com/doelenia/ausna-sub004/reindex"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ausna",
		Usage: "Knowledge indexing pipeline for user-authored notes",
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
				Name:   "add",
				Usage:  "Add a note and index it synchronously",
				Action: addCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "author",
						Usage:    "Author ID of the note",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "text",
						Usage:    "Raw text of the note",
						Required: true,
					},
				),
			},
			{
				Name:   "index",
				Usage:  "Run the indexing pipeline for a single note",
				Action: indexCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "id",
						Usage:    "Note ID to index",
						Required: true,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Rerun the indexing pipeline over stored notes",
				Action: reindexCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of notes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N notes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "failed-only",
						Usage: "Only reindex notes whose last run failed",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the shared AI service flags used by every command that
// runs the pipeline.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:     "embedding-model",
			Usage:    "Embedding model name",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "extractor-model",
			Usage:    "Knowledge extraction model name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "vision-model",
			Usage: "Image description model name",
			Value: "llava:13b",
		},
		&cli.BoolFlag{
			Name:  "intentions",
			Usage: "Extract candidate intentions alongside topics",
		},
	}
}

// openDatabase builds the AI config from the common flags and opens the
// database at the db flag path.
func openDatabase(c *cli.Context) (*ausna.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithExtractorModel(c.String("extractor-model")),
		ai.WithVisionModel(c.String("vision-model")),
		ai.WithIntentions(c.Bool("intentions")),
	)

	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := ausna.NewDatabase(c.String("db"), ausna.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func addCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := db.AddNote(ctx, &core.Note{
		AuthorId: core.ID(c.Uint64("author")),
		Text:     c.String("text"),
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	if err := db.IndexNote(ctx, added.Id); err != nil {
		return fmt.Errorf("indexing failed for note %d: %w", added.Id, err)
	}

	note, err := db.GetNote(ctx, added.Id)
	if err != nil {
		return fmt.Errorf("failed to read back note %d: %w", added.Id, err)
	}

	fmt.Fprintf(os.Stderr, "Note %d indexed (%s)\n", note.Id, note.Status)
	if note.Summary != "" {
		fmt.Fprintf(os.Stderr, "Summary: %s\n", note.Summary)
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	id := core.ID(c.Uint64("id"))
	if err := db.IndexNote(ctx, id); err != nil {
		return fmt.Errorf("indexing failed for note %d: %w", id, err)
	}

	fmt.Fprintf(os.Stderr, "Note %d indexed\n", id)
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		FailedOnly:     c.Bool("failed-only"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Host: %s\n", c.String("host"))
	fmt.Fprintln(os.Stderr)

	reindexer := db.NewReindexer(config, os.Stderr)
	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
