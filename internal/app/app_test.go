package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/input"
)

const day09Input = "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n"

const day11Input = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func writeInput(t *testing.T, dir string, day int, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(input.Path(dir, day), []byte(content), 0644))
}

func TestNew(t *testing.T) {
	tt := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"single day and part", Config{Days: []int{5}, Part: 2}, false},
		{"input override for one day", Config{Days: []int{5}, InputPath: "x.txt"}, false},
		{"invalid part", Config{Part: 3}, true},
		{"unregistered day", Config{Days: []int{25}}, true},
		{"input override without day", Config{InputPath: "x.txt"}, true},
		{"input override for two days", Config{Days: []int{1, 2}, InputPath: "x.txt"}, true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Root = t.TempDir()
			a, err := New(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, config.Default(), a.Conf)
		})
	}
}

func TestNewWarnsOnBadConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("format = ["), 0644))
	core, logs := observer.New(zapcore.WarnLevel)

	a, err := New(Config{Root: root, Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), a.Conf)
	assert.Equal(t, 1, logs.FilterMessageSnippet("using default config").Len())
}

func TestRunAll(t *testing.T) {
	root := t.TempDir()
	inputs := filepath.Join(root, "inputs")
	writeInput(t, inputs, 9, day09Input)
	writeInput(t, inputs, 11, day11Input)
	core, logs := observer.New(zapcore.DebugLevel)

	a, err := New(Config{Root: root, Logger: zap.New(core)})
	require.NoError(t, err)
	out, err := a.Run()
	require.NoError(t, err)

	want := []Result{
		{Day: 9, Title: "Mirage Maintenance", Part: 1, Label: "Sum of extrapolated values", Answer: 114},
		{Day: 9, Title: "Mirage Maintenance", Part: 2, Label: "Sum of extrapolated values", Answer: 2},
		{Day: 11, Title: "Cosmic Expansion", Part: 1, Label: "Sum of shortest paths between galaxy pairs", Answer: 374},
		{Day: 11, Title: "Cosmic Expansion", Part: 2, Label: "Sum of shortest paths between older galaxy pairs", Answer: 82000210},
	}
	if diff := cmp.Diff(want, out.Results, cmpopts.IgnoreFields(Result{}, "Elapsed")); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10}, out.Skipped)
	assert.Equal(t, 4, logs.FilterMessage("Solved").Len())
}

func TestRunUsesConfig(t *testing.T) {
	root := t.TempDir()
	writeInput(t, filepath.Join(root, "puzzles"), 11, day11Input)
	conf := "inputs_dir = \"puzzles\"\n[galaxies]\nolder_expansion = 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(conf), 0644))

	a, err := New(Config{Root: root, Days: []int{11}, Part: 2})
	require.NoError(t, err)
	out, err := a.Run()
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, 1030, out.Results[0].Answer)
	assert.Empty(t, out.Skipped)
}

func TestRunInputOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(day09Input), 0644))

	a, err := New(Config{Root: dir, Days: []int{9}, Part: 1, InputPath: path})
	require.NoError(t, err)
	out, err := a.Run()
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, 114, out.Results[0].Answer)
}

func TestRunStdin(t *testing.T) {
	a, err := New(Config{
		Root:      t.TempDir(),
		Days:      []int{9},
		InputPath: StdinPath,
		Stdin:     strings.NewReader(day09Input),
	})
	require.NoError(t, err)
	out, err := a.Run()
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 114, out.Results[0].Answer)
	assert.Equal(t, 2, out.Results[1].Answer)
}

func TestRunErrors(t *testing.T) {
	root := t.TempDir()
	inputs := filepath.Join(root, "inputs")
	writeInput(t, inputs, 9, "0 3 x\n")

	a, err := New(Config{Root: root, Days: []int{9}})
	require.NoError(t, err)
	_, err = a.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 9 part 1")

	a, err = New(Config{Root: root, Days: []int{4}})
	require.NoError(t, err)
	_, err = a.Run()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	root := t.TempDir()
	writeInput(t, filepath.Join(root, "inputs"), 9, day09Input)

	a, err := New(Config{Root: root})
	require.NoError(t, err)
	statuses, err := a.List()
	require.NoError(t, err)
	require.Len(t, statuses, 11)
	for _, s := range statuses {
		assert.Equal(t, s.Day == 9, s.HasInput, "day %d", s.Day)
		assert.NotEmpty(t, s.Title)
	}
}
