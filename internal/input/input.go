package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

// Pattern matches the input file names inside the inputs directory
const Pattern = "day[0-9][0-9].txt"

// FileName returns the conventional input file name for a day
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Path returns the input path for day inside dir
func Path(dir string, day int) string {
	return filepath.Join(dir, FileName(day))
}

// Load reads every line of the file at path, without line terminators
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return Read(file)
}

// Read splits r into lines. Trailing blank lines are dropped.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Discover walks dir and returns the sorted days that have an input file.
// A missing directory yields no days.
func Discover(dir string) ([]int, error) {
	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		return []int{}, nil
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(dir, fileListQueue)
	walker.IncludeHidden = false
	walker.IgnoreGitIgnore = true
	walker.AllowListExtensions = []string{"txt"}

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	days := make([]int, 0)
	for f := range fileListQueue {
		// only files directly inside dir count
		if filepath.Clean(filepath.Dir(f.Location)) != filepath.Clean(dir) {
			continue
		}
		match, err := doublestar.Match(Pattern, f.Filename)
		if err != nil || !match {
			continue
		}
		day, err := strconv.Atoi(f.Filename[3:5])
		if err != nil || day == 0 {
			continue
		}
		days = append(days, day)
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("error walking inputs: %w", err)
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}
