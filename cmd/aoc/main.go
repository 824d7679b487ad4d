package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/multimediallc/aoc-2023/internal/app"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var logger *zap.Logger

	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		_, _ = fmt.Fprintln(cCtx.App.Writer, cCtx.App.Version)
	}

	return &cli.App{
		Name:    "aoc",
		Usage:   "Advent of Code 2023 puzzle solvers",
		Version: "v1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   "./",
				Usage:   "Directory containing aoc.toml and the inputs directory",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "",
				Usage:   "Output format. Allowed values are: default, one-line, json and yaml (overrides aoc.toml)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "Log parsing and timing details to stderr",
			},
		},
		Before: func(cCtx *cli.Context) error {
			config := zap.NewProductionConfig()
			if cCtx.Bool("verbose") {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:        "run",
				Aliases:     []string{"r"},
				Usage:       "Solve one or more days",
				UsageText:   "aoc run [options] <day> [day...]",
				Description: "Solve the given days, reading inputs/dayNN.txt unless --input is given for a single day.",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "part",
						Aliases: []string{"p"},
						Value:   0,
						Usage:   "Only solve this part (1 or 2)",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "",
						Usage:   "Custom input file path, or - for stdin (single day only)",
					},
				},
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() == 0 {
						return fmt.Errorf("at least one day is required")
					}
					days := make([]int, 0, cCtx.NArg())
					for _, arg := range cCtx.Args().Slice() {
						day, err := strconv.Atoi(arg)
						if err != nil {
							return fmt.Errorf("invalid day %q", arg)
						}
						days = append(days, day)
					}
					inputPath := cCtx.String("input")
					if inputPath == app.StdinPath && !isStdinPiped() {
						return fmt.Errorf("--input - requires input piped to stdin")
					}
					return solve(cCtx, app.Config{
						Days:      days,
						Part:      cCtx.Int("part"),
						InputPath: inputPath,
						Stdin:     os.Stdin,
					}, logger)
				},
			},
			{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "Solve every day that has an input file",
				UsageText:   "aoc all [options]",
				Description: "Solve every registered day whose inputs/dayNN.txt exists. Days without input are skipped.",
				Action: func(cCtx *cli.Context) error {
					return solve(cCtx, app.Config{}, logger)
				},
			},
			{
				Name:      "list",
				Aliases:   []string{"l"},
				Usage:     "List the registered days and their input files",
				UsageText: "aoc list [options]",
				Action: func(cCtx *cli.Context) error {
					a, err := app.New(app.Config{Root: cCtx.String("root"), Logger: logger})
					if err != nil {
						return err
					}
					statuses, err := a.List()
					if err != nil {
						return err
					}
					printStatuses(cCtx.App.Writer, statuses)
					return nil
				},
			},
		},
	}
}

func solve(cCtx *cli.Context, cfg app.Config, logger *zap.Logger) error {
	cfg.Root = cCtx.String("root")
	cfg.Logger = logger
	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	formatName := cCtx.String("format")
	if formatName == "" {
		formatName = a.Conf.Format
	}
	format, err := validateFormat(formatName)
	if err != nil {
		return err
	}

	out, err := a.Run()
	if err != nil {
		return err
	}
	for _, day := range out.Skipped {
		logger.Info("Skipping day without input", zap.Int("day", day))
	}
	return writeOutput(cCtx.App.Writer, out, format)
}

func printStatuses(w io.Writer, statuses []app.DayStatus) {
	for _, s := range statuses {
		status := "no input"
		if s.HasInput {
			status = "input"
		}
		_, _ = fmt.Fprintf(w, "Day %2d: %-32s (%s)\n", s.Day, s.Title, status)
	}
}
