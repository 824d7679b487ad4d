package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const day06Input = "Time:      7  15   30\nDistance:  9  40  200\n"

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	inputs := filepath.Join(root, "inputs")
	if err := os.MkdirAll(inputs, 0755); err != nil {
		t.Fatalf("failed to create inputs dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inputs, "day06.txt"), []byte(day06Input), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a := newApp()
	a.Writer = &buf
	a.ErrWriter = &buf
	err := a.Run(append([]string{"aoc"}, args...))
	return buf.String(), err
}

func TestCLI(t *testing.T) {
	root := setupRoot(t)
	sample := filepath.Join(root, "sample.txt")
	if err := os.WriteFile(sample, []byte("Time: 7\nDistance: 9\n"), 0644); err != nil {
		t.Fatalf("failed to write sample: %v", err)
	}

	tests := []struct {
		name        string
		args        []string
		expected    string
		expectError string
	}{
		{
			name: "run one day",
			args: []string{"--root", root, "run", "6"},
			expected: "Part 1: Product of number of ways to break record = 288\n" +
				"Part 2: Number of ways to break single race record = 71503\n",
		},
		{
			name:     "run one part",
			args:     []string{"-r", root, "run", "--part", "2", "6"},
			expected: "Part 2: Number of ways to break single race record = 71503\n",
		},
		{
			name:     "one-line format",
			args:     []string{"-r", root, "-f", "one-line", "run", "6"},
			expected: "6.1 288\n6.2 71503\n",
		},
		{
			name:     "custom input",
			args:     []string{"-r", root, "run", "-p", "1", "-i", sample, "6"},
			expected: "Part 1: Product of number of ways to break record = 4\n",
		},
		{
			name:     "all days with input",
			args:     []string{"-r", root, "-f", "one-line", "all"},
			expected: "6.1 288\n6.2 71503\n",
		},
		{
			name:        "missing day",
			args:        []string{"-r", root, "run"},
			expectError: "at least one day is required",
		},
		{
			name:        "non-numeric day",
			args:        []string{"-r", root, "run", "six"},
			expectError: "invalid day",
		},
		{
			name:        "unregistered day",
			args:        []string{"-r", root, "run", "24"},
			expectError: "no solver registered for day 24",
		},
		{
			name:        "missing input",
			args:        []string{"-r", root, "run", "7"},
			expectError: "failed to load input",
		},
		{
			name:        "invalid format",
			args:        []string{"-r", root, "-f", "xml", "run", "6"},
			expectError: "invalid format xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			if tt.expectError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("expected error containing %q, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestCLIFormatFromConfig(t *testing.T) {
	root := setupRoot(t)
	if err := os.WriteFile(filepath.Join(root, "aoc.toml"), []byte("format = \"one-line\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := runCLI(t, "-r", root, "run", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "6.1 288\n6.2 71503\n" {
		t.Errorf("expected config format to apply, got:\n%s", got)
	}

	got, err = runCLI(t, "-r", root, "-f", "default", "run", "-p", "1", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Part 1: Product of number of ways to break record = 288\n" {
		t.Errorf("expected flag to override config format, got:\n%s", got)
	}
}

func TestCLIList(t *testing.T) {
	root := setupRoot(t)
	got, err := runCLI(t, "-r", root, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 days, got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[5], "Day  6: Wait For It") || !strings.HasSuffix(lines[5], "(input)") {
		t.Errorf("unexpected line for day 6: %q", lines[5])
	}
	if !strings.HasSuffix(lines[0], "(no input)") {
		t.Errorf("unexpected line for day 1: %q", lines[0])
	}
}
