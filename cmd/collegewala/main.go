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
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/collegewala"
	"github.com/poiesic/collegewala/ai"
	"github.com/poiesic/collegewala/miner"
)

func main() {
	// Environment beats nothing, .env beats nothing, flags beat both.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "collegewala",
		Usage: "Knowledge-base assistant for college admissions queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the JSON knowledge stores",
				Value:   "./data",
				EnvVars: []string{"COLLEGEWALA_DATA_DIR"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question from the knowledge base",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "ai-host",
						Usage:   "OpenAI-compatible completion host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"COLLEGEWALA_AI_HOST"},
					},
					&cli.StringFlag{
						Name:    "ai-model",
						Usage:   "Completion model name",
						Value:   "qwen2.5:3b",
						EnvVars: []string{"COLLEGEWALA_AI_MODEL"},
					},
					&cli.IntFlag{
						Name:  "max-suggestions",
						Usage: "Maximum number of follow-up suggestions",
						Value: 4,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print keyword index statistics",
				Action: statsCommand,
			},
			{
				Name:   "train",
				Usage:  "Mine the feedback log and grow the training set",
				Action: trainCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for candidate scoring",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithMaxSuggestions(c.Int("max-suggestions")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	assistant, err := collegewala.NewAssistant(c.String("data-dir"), collegewala.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer assistant.Close()

	responder, err := assistant.NewResponder()
	if err != nil {
		return err
	}

	response := responder.Respond(context.Background(), question)
	fmt.Println(response.Answer)
	if len(response.Suggestions) > 0 {
		fmt.Println("\nYou could also ask:")
		for _, suggestion := range response.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	assistant, err := collegewala.NewAssistant(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer assistant.Close()

	stats, err := assistant.KeywordStats()
	if err != nil {
		return err
	}

	fmt.Printf("Total keywords: %d\n", stats.TotalKeywords)
	fmt.Println("By source:")
	for source, count := range stats.BySource {
		fmt.Printf("  %s: %d\n", source, count)
	}
	fmt.Println("Sample keywords:")
	for _, keyword := range stats.SampleKeywords {
		fmt.Printf("  %s\n", keyword)
	}
	return nil
}

func trainCommand(c *cli.Context) error {
	assistant, err := collegewala.NewAssistant(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer assistant.Close()

	opts := []miner.Option{miner.WithProgress(os.Stdout)}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, miner.WithPoolSize(size))
	}

	jobMiner, err := assistant.NewMiner(opts...)
	if err != nil {
		return err
	}
	defer jobMiner.Close()

	if _, err := jobMiner.Run(context.Background()); err != nil {
		return fmt.Errorf("training run failed: %w", err)
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
