package day21

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const example = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

func TestReachable(t *testing.T) {
	grid := parse.Lines(example)
	start, err := findStart(grid)
	require.NoError(t, err)

	tests := []struct {
		steps int
		want  int
	}{
		{steps: 1, want: 2},
		{steps: 2, want: 4},
		{steps: 3, want: 6},
		{steps: 6, want: 16},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d steps", tt.steps), func(t *testing.T) {
			assert.Equal(t, tt.want, reachable(grid, start, tt.steps, false))
		})
	}
}

func TestReachable_InfiniteGarden(t *testing.T) {
	grid := parse.Lines(example)
	start, err := findStart(grid)
	require.NoError(t, err)

	tests := []struct {
		steps int
		want  int
	}{
		{steps: 6, want: 16},
		{steps: 10, want: 50},
		{steps: 50, want: 1594},
		{steps: 100, want: 6536},
		{steps: 500, want: 167004},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d steps", tt.steps), func(t *testing.T) {
			assert.Equal(t, tt.want, reachable(grid, start, tt.steps, true))
		})
	}
}

func TestPart1_RunsOnExampleMap(t *testing.T) {
	got, err := Part1(example)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestFindStart(t *testing.T) {
	start, err := findStart(parse.Lines(example))

	require.NoError(t, err)
	assert.Equal(t, position{row: 5, col: 5}, start)
}

func TestFindStart_Missing(t *testing.T) {
	_, err := findStart([]string{"...", "..."})

	require.Error(t, err)
}
