package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func TestPart1(t *testing.T) {
	got, err := Part1(example)

	require.NoError(t, err)
	assert.Equal(t, "102", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)

	require.NoError(t, err)
	assert.Equal(t, "94", got)
}

func TestPart2_LongStraightsForced(t *testing.T) {
	const flat = `111111111111
999999999991
999999999991
999999999991
999999999991
`

	got, err := Part2(flat)

	require.NoError(t, err)
	assert.Equal(t, "71", got)
}

func TestMinLoss_TinyGrid(t *testing.T) {
	loss, err := minLoss([]string{"14", "23"}, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, 5, loss)
}

func TestMinLoss_RunCapBlocksPath(t *testing.T) {
	_, err := minLoss([]string{"11111"}, 1, 3)

	require.Error(t, err, "a single row longer than the run cap cannot be crossed")
}

func TestParseGrid_BadCell(t *testing.T) {
	_, err := parseGrid("123\n1x3\n")

	require.Error(t, err)
}

func TestParseGrid_RaggedRows(t *testing.T) {
	_, err := parseGrid("123\n12\n")

	require.Error(t, err)
}
