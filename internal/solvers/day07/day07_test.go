package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestPart1(t *testing.T) {
	answer, err := Part1(example)

	require.NoError(t, err)
	assert.Equal(t, "6440", answer)
}

func TestPart2(t *testing.T) {
	answer, err := Part2(example)

	require.NoError(t, err)
	assert.Equal(t, "5905", answer)
}

func TestHandType(t *testing.T) {
	tests := []struct {
		cards    string
		expected int
	}{
		{"AAAAA", fiveOfAKind},
		{"AA8AA", fourOfAKind},
		{"23332", fullHouse},
		{"TTT98", threeOfAKind},
		{"23432", twoPair},
		{"A23A4", onePair},
		{"23456", highCard},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.expected, handType(tt.cards, false))
		})
	}
}

func TestHandType_Jokers(t *testing.T) {
	tests := []struct {
		cards    string
		expected int
	}{
		{"QJJQ2", fourOfAKind},
		{"KTJJT", fourOfAKind},
		{"32T3K", onePair},
		{"JJJJJ", fiveOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.expected, handType(tt.cards, true))
		})
	}
}

func TestWeaker_JokerIsWeakestCard(t *testing.T) {
	// Both four of a kind, so the first card decides: J < Q under joker
	// ordering.
	a := hand{cards: "JKKK2", typ: fourOfAKind}
	b := hand{cards: "QQQQ2", typ: fourOfAKind}

	assert.True(t, weaker(a, b, jokerOrder))
}

func TestParseHands_Malformed(t *testing.T) {
	_, err := parseHands("AAAA 12\n", false)

	assert.Error(t, err)
}
