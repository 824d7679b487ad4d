package solutions

import (
	"fmt"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   11,
		Title: "Cosmic Expansion",
		Parts: [2]registry.Part{
			{Label: "Sum of shortest paths between galaxy pairs", Solve: SolveDay11Part1},
			{Label: "Sum of shortest paths between older galaxy pairs", Solve: SolveDay11Part2},
		},
	})
}

type skyImage struct {
	galaxies []tile
	// emptyRowsBefore[i] is the number of galaxy-free rows above row i, likewise for columns
	emptyRowsBefore []int
	emptyColsBefore []int
}

func parseSkyImage(input []string) (skyImage, error) {
	if len(input) == 0 {
		return skyImage{}, fmt.Errorf("empty image")
	}
	width := len(input[0])
	rowHasGalaxy := make([]bool, len(input))
	colHasGalaxy := make([]bool, width)
	img := skyImage{}
	for i, line := range input {
		if len(line) != width {
			return skyImage{}, fmt.Errorf("line %d: expected width %d, got %d", i+1, width, len(line))
		}
		if strings.Trim(line, ".#") != "" {
			return skyImage{}, fmt.Errorf("line %d: unexpected character in %q", i+1, line)
		}
		for j := range line {
			if line[j] == '#' {
				img.galaxies = append(img.galaxies, tile{i, j})
				rowHasGalaxy[i] = true
				colHasGalaxy[j] = true
			}
		}
	}
	img.emptyRowsBefore = emptyPrefix(rowHasGalaxy)
	img.emptyColsBefore = emptyPrefix(colHasGalaxy)
	return img, nil
}

func emptyPrefix(occupied []bool) []int {
	prefix := make([]int, len(occupied)+1)
	for i, o := range occupied {
		prefix[i+1] = prefix[i]
		if !o {
			prefix[i+1]++
		}
	}
	return prefix
}

// distanceSum adds the Manhattan distances of all galaxy pairs, with every empty row and
// column counting as expansion rows or columns
func (img skyImage) distanceSum(expansion int) int {
	sum := 0
	for a := 0; a < len(img.galaxies); a++ {
		for b := a + 1; b < len(img.galaxies); b++ {
			p, q := img.galaxies[a], img.galaxies[b]
			lowRow, highRow := min(p.row, q.row), max(p.row, q.row)
			lowCol, highCol := min(p.col, q.col), max(p.col, q.col)
			emptyRows := img.emptyRowsBefore[highRow] - img.emptyRowsBefore[lowRow]
			emptyCols := img.emptyColsBefore[highCol] - img.emptyColsBefore[lowCol]
			sum += f.Abs(q.row-p.row) + f.Abs(q.col-p.col) + (expansion-1)*(emptyRows+emptyCols)
		}
	}
	return sum
}

func SolveDay11Part1(input []string, conf *config.Config) (int, error) {
	img, err := parseSkyImage(input)
	if err != nil {
		return 0, err
	}
	return img.distanceSum(conf.Galaxies.Expansion), nil
}

func SolveDay11Part2(input []string, conf *config.Config) (int, error) {
	img, err := parseSkyImage(input)
	if err != nil {
		return 0, err
	}
	return img.distanceSum(conf.Galaxies.OlderExpansion), nil
}
