// Package day07 ranks Camel Cards hands and totals their winnings.
package day07

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Card orderings, weakest first. Jacks become jokers in part two and
// drop below everything else.
const (
	plainOrder = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand types, weaker types first.
const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	cards string
	bid   int
	typ   int
}

// Part1 ranks hands by type then card order and sums rank times bid.
func Part1(input string) (string, error) {
	return totalWinnings(input, false)
}

// Part2 plays jacks as jokers: they count toward the best possible hand
// type but compare below every other card.
func Part2(input string) (string, error) {
	return totalWinnings(input, true)
}

func totalWinnings(input string, jokers bool) (string, error) {
	hands, err := parseHands(input, jokers)
	if err != nil {
		return "", err
	}

	order := plainOrder
	if jokers {
		order = jokerOrder
	}
	sort.Slice(hands, func(i, j int) bool {
		return weaker(hands[i], hands[j], order)
	})

	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return strconv.Itoa(total), nil
}

// weaker orders hands ascending: by type first, then card by card.
func weaker(a, b hand, order string) bool {
	if a.typ != b.typ {
		return a.typ < b.typ
	}
	for i := 0; i < len(a.cards); i++ {
		sa := strings.IndexByte(order, a.cards[i])
		sb := strings.IndexByte(order, b.cards[i])
		if sa != sb {
			return sa < sb
		}
	}
	return false
}

// handType classifies a hand. With jokers enabled, every J joins the
// largest group, which always yields the strongest type.
func handType(cards string, jokers bool) int {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}

	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) == 0 {
		// All five cards are jokers.
		sizes = []int{0}
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return fiveOfAKind
	case sizes[0] == 4:
		return fourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return fullHouse
	case sizes[0] == 3:
		return threeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return twoPair
	case sizes[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func parseHands(input string, jokers bool) ([]hand, error) {
	var hands []hand
	for _, line := range parse.Lines(input) {
		cards, bidStr, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("malformed hand line: %q", line)
		}
		bid, err := strconv.Atoi(bidStr)
		if err != nil {
			return nil, fmt.Errorf("malformed bid in %q: %w", line, err)
		}
		hands = append(hands, hand{
			cards: cards,
			bid:   bid,
			typ:   handType(cards, jokers),
		})
	}
	return hands, nil
}
