// Copyright 2025 Poiesic Systems
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
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/longdoc"
	"github.com/poiesic/longdoc/batch"
	"github.com/poiesic/longdoc/config"
	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/search"
	"github.com/poiesic/longdoc/solver"
	"github.com/poiesic/longdoc/task"
)

func main() {
	app := &cli.App{
		Name:  "longdoc",
		Usage: "Long-document question answering with bounded rolling context",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "solve",
				Usage:  "Solve a single task file and write the prediction",
				Action: solveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "task",
						Aliases:  []string{"t"},
						Usage:    "Path to a task JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the result JSON file",
						Value:   "result.json",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Solve every task in a directory concurrently",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tasks",
						Usage:    "Directory of task JSON files",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory for result JSON files",
						Value:   "results",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of tasks to solve concurrently",
						Value: 2,
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Search a document file for keywords",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "document",
						Aliases:  []string{"d"},
						Usage:    "Path to the document file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "keywords",
						Aliases:  []string{"k"},
						Usage:    "Comma-separated keywords; the first anchors the search",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of results",
						Value: search.DefaultMaxResults,
					},
					&cli.IntFlag{
						Name:  "context-chars",
						Usage: "Snippet half-width in characters",
						Value: search.DefaultContextChars,
					},
					&cli.BoolFlag{
						Name:  "fuzzy",
						Usage: "Use fuzzy substring matching instead of proximity search",
					},
				},
			},
			{
				Name:   "context",
				Usage:  "Print the document text around a cursor position",
				Action: contextCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "document",
						Aliases:  []string{"d"},
						Usage:    "Path to the document file",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "cursor",
						Usage:    "Character offset to expand around",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "before",
						Usage: "Characters to include before the cursor",
						Value: search.DefaultExpandChars,
					},
					&cli.IntFlag{
						Name:  "after",
						Usage: "Characters to include after the cursor",
						Value: search.DefaultExpandChars,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	return config.Load(c.String("config"))
}

func solveCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	t, err := task.Load(c.String("task"))
	if err != nil {
		return err
	}

	wb, err := newWorkbench(cfg)
	if err != nil {
		return err
	}
	defer wb.Close()

	s, err := wb.NewSolver(
		solver.WithChunkSize(cfg.Solver.ChunkSize),
		solver.WithContextSize(cfg.Solver.ContextSize),
	)
	if err != nil {
		return err
	}

	result, err := s.Solve(ctx, t)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	outputPath := c.String("output")
	if err := task.WriteResult(outputPath, result); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Task: %s\n", result.TaskID)
	fmt.Fprintf(os.Stderr, "Answer: %s\n", result.PredictedAnswer)
	fmt.Fprintf(os.Stderr, "Result written to %s\n", outputPath)
	return nil
}

func batchCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	tasks, err := task.LoadDir(c.String("tasks"))
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no task files found in %s", c.String("tasks"))
	}

	wb, err := newWorkbench(cfg)
	if err != nil {
		return err
	}
	defer wb.Close()

	runner, err := wb.NewBatchRunner(
		[]solver.Option{
			solver.WithChunkSize(cfg.Solver.ChunkSize),
			solver.WithContextSize(cfg.Solver.ContextSize),
		},
		batch.WithPoolSize(c.Int("workers")),
	)
	if err != nil {
		return err
	}
	defer runner.Release()

	outputDir := c.String("output")
	outcomes := runner.Run(ctx, tasks)

	var failed int
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", outcome.Task.ID, outcome.Err)
			continue
		}
		path := filepath.Join(outputDir, outcome.Result.TaskID+".json")
		if err := task.WriteResult(path, outcome.Result); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", outcome.Task.ID, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %s: %s\n", outcome.Result.TaskID, outcome.Result.PredictedAnswer)
	}

	fmt.Fprintf(os.Stderr, "\n%d solved, %d failed\n", len(outcomes)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d tasks failed", failed, len(outcomes))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	engine, err := loadEngine(c.String("document"))
	if err != nil {
		return err
	}

	keywords := splitKeywords(c.String("keywords"))
	if len(keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}

	maxResults := c.Int("max-results")
	contextChars := c.Int("context-chars")

	var results []*core.SearchResult
	if c.Bool("fuzzy") {
		results = engine.FuzzySearch(keywords, maxResults, contextChars)
	} else {
		results = engine.ProximitySearch(keywords, maxResults, contextChars)
	}

	fmt.Println(search.FormatResults(results, keywords))
	return nil
}

func contextCommand(c *cli.Context) error {
	engine, err := loadEngine(c.String("document"))
	if err != nil {
		return err
	}

	text := engine.ContextAt(c.Int("cursor"), c.Int("before"), c.Int("after"))
	fmt.Println(text)
	return nil
}

func newWorkbench(cfg config.Config) (*longdoc.Workbench, error) {
	opts := []longdoc.WorkbenchOption{
		longdoc.WithAIConfig(cfg.AIConfig()),
	}
	if cfg.Storage.InMemory {
		opts = append(opts, longdoc.WithInMemoryStorage())
	}
	return longdoc.NewWorkbench(cfg.Storage.Path, opts...)
}

func loadEngine(path string) (*search.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return search.NewEngine(core.NewDocument(string(data)))
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
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
