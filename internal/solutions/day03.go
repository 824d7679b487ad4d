package solutions

import (
	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   3,
		Title: "Gear Ratios",
		Parts: [2]registry.Part{
			{Label: "Part number sum", Solve: SolveDay3Part1},
			{Label: "Gear ratio sum", Solve: SolveDay3Part2},
		},
	})
}

// partNumber is a run of digits on one schematic row, columns [left, right]
type partNumber struct {
	row, left, right int
	value            int
}

// adjacent reports whether the cell touches the number, diagonals included
func (p partNumber) adjacent(row, col int) bool {
	return row >= p.row-1 && row <= p.row+1 && col >= p.left-1 && col <= p.right+1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c) && c != ' '
}

func scanPartNumbers(schematic []string) []partNumber {
	numbers := make([]partNumber, 0)
	for row, line := range schematic {
		for col := 0; col < len(line); {
			if !isDigit(line[col]) {
				col++
				continue
			}
			n := partNumber{row: row, left: col}
			for col < len(line) && isDigit(line[col]) {
				n.value = n.value*10 + int(line[col]-'0')
				col++
			}
			n.right = col - 1
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func SolveDay3Part1(input []string, _ *config.Config) (int, error) {
	sum := 0
	for _, n := range scanPartNumbers(input) {
		if touchesSymbol(input, n) {
			sum += n.value
		}
	}
	return sum, nil
}

func touchesSymbol(schematic []string, n partNumber) bool {
	for row := max(n.row-1, 0); row <= min(n.row+1, len(schematic)-1); row++ {
		line := schematic[row]
		for col := max(n.left-1, 0); col <= min(n.right+1, len(line)-1); col++ {
			if isSymbol(line[col]) {
				return true
			}
		}
	}
	return false
}

func SolveDay3Part2(input []string, _ *config.Config) (int, error) {
	numbers := scanPartNumbers(input)
	sum := 0
	for row, line := range input {
		for col := 0; col < len(line); col++ {
			if line[col] != '*' {
				continue
			}
			count, ratio := 0, 1
			for _, n := range numbers {
				if n.adjacent(row, col) {
					count++
					ratio *= n.value
				}
			}
			if count == 2 {
				sum += ratio
			}
		}
	}
	return sum, nil
}
