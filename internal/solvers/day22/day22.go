// Package day22 settles falling sand bricks and probes their supports.
package day22

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 counts the bricks that could be disintegrated without anything
// else falling.
func Part1(input string) (string, error) {
	bricks, err := parseBricks(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(settle(bricks).disintegratable()), nil
}

// Part2 sums, over every brick, how many other bricks would fall if
// that brick were disintegrated.
func Part2(input string) (string, error) {
	bricks, err := parseBricks(input)
	if err != nil {
		return "", err
	}
	s := settle(bricks)
	total := 0
	for i := range s.bricks {
		total += s.chainReaction(i)
	}
	return strconv.Itoa(total), nil
}

// brick spans the two corners inclusively, with corner 1 the smaller.
type brick struct {
	x1, y1, z1 int
	x2, y2, z2 int
}

func parseBricks(input string) ([]brick, error) {
	var bricks []brick
	for _, line := range parse.Lines(input) {
		nums, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 6 {
			return nil, fmt.Errorf("brick %q does not have two corners", line)
		}
		b := brick{
			x1: min(nums[0], nums[3]), y1: min(nums[1], nums[4]), z1: min(nums[2], nums[5]),
			x2: max(nums[0], nums[3]), y2: max(nums[1], nums[4]), z2: max(nums[2], nums[5]),
		}
		if b.z1 < 1 {
			return nil, fmt.Errorf("brick %q is below the ground", line)
		}
		bricks = append(bricks, b)
	}
	return bricks, nil
}

// stack holds the settled bricks and their direct support relations.
type stack struct {
	bricks      []brick
	supports    [][]int // supports[i] lists the bricks resting on i
	supportedBy [][]int // supportedBy[i] lists the bricks i rests on
}

// settle drops the bricks in height order onto whatever is below them,
// recording which brick comes to rest on which.
func settle(bricks []brick) stack {
	sorted := slices.Clone(bricks)
	slices.SortFunc(sorted, func(a, b brick) int { return a.z1 - b.z1 })

	type top struct {
		z     int
		brick int
	}
	heights := map[[2]int]top{}
	s := stack{
		bricks:      sorted,
		supports:    make([][]int, len(sorted)),
		supportedBy: make([][]int, len(sorted)),
	}
	for i := range sorted {
		b := &sorted[i]

		rest := 0
		for x := b.x1; x <= b.x2; x++ {
			for y := b.y1; y <= b.y2; y++ {
				if t, ok := heights[[2]int{x, y}]; ok && t.z > rest {
					rest = t.z
				}
			}
		}

		counted := map[int]bool{}
		for x := b.x1; x <= b.x2; x++ {
			for y := b.y1; y <= b.y2; y++ {
				t, ok := heights[[2]int{x, y}]
				if !ok || t.z != rest || counted[t.brick] {
					continue
				}
				counted[t.brick] = true
				s.supportedBy[i] = append(s.supportedBy[i], t.brick)
				s.supports[t.brick] = append(s.supports[t.brick], i)
			}
		}

		drop := b.z1 - rest - 1
		b.z1 -= drop
		b.z2 -= drop
		for x := b.x1; x <= b.x2; x++ {
			for y := b.y1; y <= b.y2; y++ {
				heights[[2]int{x, y}] = top{z: b.z2, brick: i}
			}
		}
	}
	return s
}

// disintegratable counts the bricks whose removal leaves every brick
// above them with at least one other support.
func (s stack) disintegratable() int {
	count := 0
	for i := range s.bricks {
		safe := true
		for _, j := range s.supports[i] {
			if len(s.supportedBy[j]) == 1 {
				safe = false
				break
			}
		}
		if safe {
			count++
		}
	}
	return count
}

// chainReaction counts how many other bricks fall when the given brick
// is removed. A brick falls once all of its supports are falling.
func (s stack) chainReaction(removed int) int {
	falling := map[int]bool{removed: true}
	queue := []int{removed}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range s.supports[i] {
			if falling[j] || !allIn(s.supportedBy[j], falling) {
				continue
			}
			falling[j] = true
			queue = append(queue, j)
		}
	}
	return len(falling) - 1
}

func allIn(ids []int, set map[int]bool) bool {
	for _, id := range ids {
		if !set[id] {
			return false
		}
	}
	return true
}
