package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDirect = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const exampleRepeating = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const exampleGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestPart1(t *testing.T) {
	answer, err := Part1(exampleDirect)

	require.NoError(t, err)
	assert.Equal(t, "2", answer)
}

func TestPart1_InstructionsRepeat(t *testing.T) {
	answer, err := Part1(exampleRepeating)

	require.NoError(t, err)
	assert.Equal(t, "6", answer)
}

func TestPart2(t *testing.T) {
	answer, err := Part2(exampleGhosts)

	require.NoError(t, err)
	assert.Equal(t, "6", answer)
}

func TestWalk_UnknownNode(t *testing.T) {
	n := network{
		instructions: "L",
		nodes:        map[string][2]string{"AAA": {"BBB", "BBB"}},
	}

	_, err := n.walk("AAA", func(node string) bool { return node == "ZZZ" })

	assert.Error(t, err)
}

func TestParseNetwork(t *testing.T) {
	n, err := parseNetwork(exampleDirect)

	require.NoError(t, err)
	assert.Equal(t, "RL", n.instructions)
	assert.Equal(t, [2]string{"BBB", "CCC"}, n.nodes["AAA"])
	assert.Len(t, n.nodes, 7)
}
