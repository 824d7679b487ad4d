package solutions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   2,
		Title: "Cube Conundrum",
		Parts: [2]registry.Part{
			{Label: "Game ID sum", Solve: SolveDay2Part1},
			{Label: "Power sum", Solve: SolveDay2Part2},
		},
	})
}

type cubeGame struct {
	id int
	// largest count of each colour across all reveals
	max map[string]int
}

func SolveDay2Part1(input []string, conf *config.Config) (int, error) {
	games, err := parseCubeGames(input)
	if err != nil {
		return 0, err
	}
	limits := map[string]int{"red": conf.Cubes.Red, "green": conf.Cubes.Green, "blue": conf.Cubes.Blue}

	idSum := 0
	for _, game := range games {
		possible := true
		for colour, n := range game.max {
			if n > limits[colour] {
				possible = false
				break
			}
		}
		if possible {
			idSum += game.id
		}
	}
	return idSum, nil
}

func SolveDay2Part2(input []string, _ *config.Config) (int, error) {
	games, err := parseCubeGames(input)
	if err != nil {
		return 0, err
	}

	powerSum := 0
	for _, game := range games {
		power := 1
		for _, colour := range []string{"red", "green", "blue"} {
			// a colour never revealed still needs one cube
			power *= max(game.max[colour], 1)
		}
		powerSum += power
	}
	return powerSum, nil
}

// parseCubeGames reads lines like "Game 1: 3 blue, 4 red; 1 red, 2 green"
func parseCubeGames(input []string) ([]cubeGame, error) {
	games := make([]cubeGame, 0, len(input))
	for i, line := range input {
		header, reveals, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: missing ':' in %q", i+1, line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(header, "Game")))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid game id: %w", i+1, err)
		}
		game := cubeGame{id: id, max: map[string]int{}}
		for _, reveal := range strings.FieldsFunc(reveals, func(r rune) bool { return r == ';' || r == ',' }) {
			fields := strings.Fields(reveal)
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: invalid reveal %q", i+1, reveal)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid cube count: %w", i+1, err)
			}
			colour := fields[1]
			if colour != "red" && colour != "green" && colour != "blue" {
				return nil, fmt.Errorf("line %d: unknown colour %q", i+1, colour)
			}
			game.max[colour] = max(game.max[colour], n)
		}
		games = append(games, game)
	}
	return games, nil
}
