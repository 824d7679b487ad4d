package app

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/input"
	"github.com/multimediallc/aoc-2023/internal/registry"
	_ "github.com/multimediallc/aoc-2023/internal/solutions" // registers the puzzles
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

// Result is one answered puzzle part
type Result struct {
	Day     int           `json:"day" yaml:"day"`
	Title   string        `json:"title" yaml:"title"`
	Part    int           `json:"part" yaml:"part"`
	Label   string        `json:"label" yaml:"label"`
	Answer  int           `json:"answer" yaml:"answer"`
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// OutputData holds everything a run produced, in day then part order
type OutputData struct {
	Results []Result `json:"results" yaml:"results"`
	// Skipped lists registered days without an input file when running every day
	Skipped []int `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// DayStatus describes a registered day for listing
type DayStatus struct {
	Day      int
	Title    string
	HasInput bool
}

// Config holds the application configuration
type Config struct {
	// Root holds aoc.toml and, by default, the inputs directory
	Root string
	// Days to run; empty means every registered day with an input file
	Days []int
	// Part to run; 0 means both
	Part int
	// InputPath overrides the input file; only valid with a single day.
	// StdinPath reads the input from Stdin instead.
	InputPath string
	// Stdin defaults to os.Stdin
	Stdin  io.Reader
	Logger *zap.Logger
}

// StdinPath is the InputPath that selects standard input
const StdinPath = "-"

// App represents the application with its dependencies
type App struct {
	Conf   *config.Config
	config *Config
	logger *zap.Logger
}

// New creates a new App instance with the given configuration
func New(cfg Config) (*App, error) {
	if cfg.Part != 0 && cfg.Part != 1 && cfg.Part != 2 {
		return nil, fmt.Errorf("invalid part: %d", cfg.Part)
	}
	if cfg.InputPath != "" && len(cfg.Days) != 1 {
		return nil, fmt.Errorf("an input file can only be given for a single day")
	}
	for _, day := range cfg.Days {
		if _, found := registry.Lookup(day); !found {
			return nil, fmt.Errorf("no solver registered for day %d", day)
		}
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	conf, err := config.ReadConfig(cfg.Root)
	if err != nil {
		logger.Warn("Error reading "+config.FileName+" - using default config", zap.Error(err))
	}

	return &App{Conf: conf, config: &cfg, logger: logger}, nil
}

func (a *App) inputsDir() string {
	return a.Conf.InputsPath(a.config.Root)
}

// List reports every registered day and whether its input file is present
func (a *App) List() ([]DayStatus, error) {
	available, err := input.Discover(a.inputsDir())
	if err != nil {
		return nil, err
	}
	return f.Map(registry.Days(), func(day int) DayStatus {
		puzzle, _ := registry.Lookup(day)
		return DayStatus{Day: day, Title: puzzle.Title, HasInput: slices.Contains(available, day)}
	}), nil
}

// Run solves the configured days and parts. The first failing part aborts the run.
func (a *App) Run() (*OutputData, error) {
	out := &OutputData{Results: make([]Result, 0)}

	days := a.config.Days
	if len(days) == 0 {
		available, err := input.Discover(a.inputsDir())
		if err != nil {
			return out, err
		}
		a.logger.Debug("Discovered inputs", zap.String("dir", a.inputsDir()), zap.Ints("days", available))
		for _, day := range registry.Days() {
			if slices.Contains(available, day) {
				days = append(days, day)
			} else {
				out.Skipped = append(out.Skipped, day)
			}
		}
	}

	parts := []int{1, 2}
	if a.config.Part != 0 {
		parts = []int{a.config.Part}
	}

	for _, day := range days {
		results, err := a.runDay(day, parts)
		if err != nil {
			return out, err
		}
		out.Results = append(out.Results, results...)
	}
	return out, nil
}

func (a *App) runDay(day int, parts []int) ([]Result, error) {
	puzzle, found := registry.Lookup(day)
	if !found {
		return nil, fmt.Errorf("no solver registered for day %d", day)
	}

	path := a.config.InputPath
	if path == "" {
		path = input.Path(a.inputsDir(), day)
	}
	var lines []string
	var err error
	if path == StdinPath {
		lines, err = input.Read(a.config.Stdin)
	} else {
		lines, err = input.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}
	a.logger.Debug("Loaded input", zap.Int("day", day), zap.String("path", path), zap.Int("lines", len(lines)))

	results := make([]Result, 0, len(parts))
	for _, n := range parts {
		part, err := puzzle.Part(n)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		answer, err := part.Solve(lines, a.Conf)
		if err != nil {
			return nil, fmt.Errorf("day %d part %d: %w", day, n, err)
		}
		elapsed := time.Since(start)
		a.logger.Debug("Solved",
			zap.Int("day", day),
			zap.Int("part", n),
			zap.Int("answer", answer),
			zap.Duration("elapsed", elapsed))
		results = append(results, Result{
			Day:     day,
			Title:   puzzle.Title,
			Part:    n,
			Label:   part.Label,
			Answer:  answer,
			Elapsed: elapsed,
		})
	}
	return results, nil
}
