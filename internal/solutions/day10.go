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
		Day:   10,
		Title: "Pipe Maze",
		Parts: [2]registry.Part{
			{Label: "Distance to farthest position from start in the loop", Solve: SolveDay10Part1},
			{Label: "Number of tiles enclosed by the loop", Solve: SolveDay10Part2},
		},
	})
}

type tile struct {
	row, col int
}

// pipeExits maps each pipe to the (row, col) offsets of the two tiles it connects
var pipeExits = map[byte][2]tile{
	'|': {{-1, 0}, {1, 0}},
	'-': {{0, -1}, {0, 1}},
	'L': {{-1, 0}, {0, 1}},
	'J': {{-1, 0}, {0, -1}},
	'7': {{1, 0}, {0, -1}},
	'F': {{1, 0}, {0, 1}},
}

type pipeMaze struct {
	grid  [][]byte
	start tile
}

func (m pipeMaze) at(t tile) byte {
	if t.row < 0 || t.row >= len(m.grid) || t.col < 0 || t.col >= len(m.grid[t.row]) {
		return '.'
	}
	return m.grid[t.row][t.col]
}

// parsePipeMaze locates S and replaces it with the pipe implied by its neighbours
func parsePipeMaze(input []string) (pipeMaze, error) {
	m := pipeMaze{grid: make([][]byte, len(input))}
	found := false
	for i, line := range input {
		m.grid[i] = []byte(line)
		if j := strings.IndexByte(line, 'S'); j >= 0 && !found {
			m.start = tile{i, j}
			found = true
		}
	}
	if !found {
		return pipeMaze{}, fmt.Errorf("grid must contain start tile")
	}

	s := m.start
	west := strings.IndexByte("-LF", m.at(tile{s.row, s.col - 1})) >= 0
	east := strings.IndexByte("-J7", m.at(tile{s.row, s.col + 1})) >= 0
	north := strings.IndexByte("|7F", m.at(tile{s.row - 1, s.col})) >= 0
	south := strings.IndexByte("|LJ", m.at(tile{s.row + 1, s.col})) >= 0

	var pipe byte
	switch {
	case north && south && !west && !east:
		pipe = '|'
	case west && east && !north && !south:
		pipe = '-'
	case north && east && !west && !south:
		pipe = 'L'
	case north && west && !east && !south:
		pipe = 'J'
	case south && west && !north && !east:
		pipe = '7'
	case south && east && !north && !west:
		pipe = 'F'
	default:
		return pipeMaze{}, fmt.Errorf("start tile at %d,%d does not connect to exactly two pipes", s.row+1, s.col+1)
	}
	m.grid[s.row][s.col] = pipe
	return m, nil
}

// loop returns every tile of the pipe loop through the start tile, by breadth first search
func (m pipeMaze) loop() (f.Set[tile], error) {
	queue := []tile{m.start}
	loop := f.NewSet(m.start)
	for len(queue) > 0 {
		pipe := queue[0]
		queue = queue[1:]
		exits, ok := pipeExits[m.at(pipe)]
		if !ok {
			return nil, fmt.Errorf("loop broken at %d,%d", pipe.row+1, pipe.col+1)
		}
		for _, exit := range exits {
			next := tile{pipe.row + exit.row, pipe.col + exit.col}
			if !loop.Contains(next) {
				loop.Add(next)
				queue = append(queue, next)
			}
		}
	}
	return loop, nil
}

func SolveDay10Part1(input []string, _ *config.Config) (int, error) {
	m, err := parsePipeMaze(input)
	if err != nil {
		return 0, err
	}
	loop, err := m.loop()
	if err != nil {
		return 0, err
	}
	return loop.Len() / 2, nil
}

// SolveDay10Part2 scans each row, flipping inside/outside whenever it crosses a vertical
// section of the loop. "F..J" and "L..7" cross it; "F..7" and "L..J" only touch it.
func SolveDay10Part2(input []string, _ *config.Config) (int, error) {
	m, err := parsePipeMaze(input)
	if err != nil {
		return 0, err
	}
	loop, err := m.loop()
	if err != nil {
		return 0, err
	}

	enclosed := 0
	for i, row := range m.grid {
		inside := false
		var opening byte
		for j, pipe := range row {
			if !loop.Contains(tile{i, j}) {
				if inside {
					enclosed++
				}
				continue
			}
			switch pipe {
			case '|':
				inside = !inside
			case 'L', 'F':
				opening = pipe
			case 'J':
				if opening == 'F' {
					inside = !inside
				}
			case '7':
				if opening == 'L' {
					inside = !inside
				}
			}
		}
	}
	return enclosed, nil
}
