package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/programme-lv/scoring/evalres"
	"github.com/programme-lv/scoring/logger"
	"github.com/programme-lv/scoring/scoretype"
	"github.com/programme-lv/scoring/srvcerror"
	"github.com/programme-lv/scoring/taskcfg"
	"github.com/programme-lv/scoring/translations"
	"github.com/programme-lv/scoring/translations/lv"
	"github.com/urfave/cli/v3"
)

func main() {
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "score",
		Usage: "compute a submission's score from judged testcase outcomes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "task",
				Aliases:  []string{"t"},
				Usage:    "path to the task scoring config (TOML)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "results",
				Aliases:  []string{"r"},
				Usage:    "path to the submission result (JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "locale for contestant-facing text (en, lv)",
				Value: "en",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "print the full (administrative) breakdown instead of the contestant view",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var srvcErr *srvcerror.Error
		if errors.As(err, &srvcErr) {
			slog.Error(srvcErr.Error(), "code", srvcErr.ErrorCode(), "debug", srvcErr.DebugInfo())
		} else {
			slog.Error(err.Error())
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(log)
	ctx = logger.WithLogger(ctx, log)

	task, err := taskcfg.Read(cmd.String("task"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cmd.String("results"))
	if err != nil {
		return fmt.Errorf("failed to read submission result: %w", err)
	}
	var subm evalres.SubmissionResult
	if err := json.Unmarshal(data, &subm); err != nil {
		return fmt.Errorf("failed to unmarshal submission result: %w", err)
	}
	ctx = logger.WithSubmUuid(ctx, subm.SubmUuid.String())

	tr := translations.Default()
	switch cmd.String("locale") {
	case "", "en":
	case "lv":
		tr = lv.Translation()
	default:
		return fmt.Errorf("unsupported locale %q", cmd.String("locale"))
	}

	st, err := scoretype.New(task)
	if err != nil {
		return err
	}
	res, err := st.ComputeScore(subm)
	if err != nil {
		return err
	}

	printReport(ctx, res, tr, cmd.Bool("full"))
	return nil
}
