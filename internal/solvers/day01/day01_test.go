package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePart1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const examplePart2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPart1(t *testing.T) {
	answer, err := Part1(examplePart1)

	require.NoError(t, err)
	assert.Equal(t, "142", answer)
}

func TestPart2(t *testing.T) {
	answer, err := Part2(examplePart2)

	require.NoError(t, err)
	assert.Equal(t, "281", answer)
}

func TestPart2_OverlappingWords(t *testing.T) {
	// "twone" reads as 2 first and 1 last.
	answer, err := Part2("twone\n")

	require.NoError(t, err)
	assert.Equal(t, "21", answer)
}

func TestPart1_SingleDigitLine(t *testing.T) {
	// One digit serves as both first and last.
	answer, err := Part1("treb7uchet\n")

	require.NoError(t, err)
	assert.Equal(t, "77", answer)
}
