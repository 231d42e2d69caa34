// Package day05 follows seeds through the almanac's chain of category
// maps to find the nearest location.
package day05

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// mapping translates one contiguous run of source values.
type mapping struct {
	dst, src, length int
}

type almanac struct {
	seeds  []int
	layers [][]mapping
}

// Part1 maps each seed number through every layer and reports the
// lowest location reached.
func Part1(input string) (string, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return "", err
	}

	lowest := -1
	for _, seed := range a.seeds {
		v := seed
		for _, layer := range a.layers {
			v = convert(v, layer)
		}
		if lowest < 0 || v < lowest {
			lowest = v
		}
	}
	return strconv.Itoa(lowest), nil
}

// Part2 treats the seed line as (start, length) pairs. The ranges hold
// billions of seeds between them, so each range gets its own worker
// walking every value through the layers; the lowest location wins.
func Part2(input string) (string, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return "", err
	}
	if len(a.seeds)%2 != 0 {
		return "", fmt.Errorf("seed ranges need an even number of values, got %d", len(a.seeds))
	}

	results := make(chan int, len(a.seeds)/2)
	var wg sync.WaitGroup
	for i := 0; i < len(a.seeds); i += 2 {
		start, length := a.seeds[i], a.seeds[i+1]
		if length <= 0 {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- lowestInRange(a.layers, start, length)
		}()
	}
	wg.Wait()
	close(results)

	lowest := -1
	for v := range results {
		if lowest < 0 || v < lowest {
			lowest = v
		}
	}
	return strconv.Itoa(lowest), nil
}

func (m mapping) contains(v int) bool {
	return v >= m.src && v < m.src+m.length
}

func convert(v int, layer []mapping) int {
	for _, m := range layer {
		if m.contains(v) {
			return m.dst + (v - m.src)
		}
	}
	return v
}

// lowestInRange maps every seed in [start, start+length) through the
// layers and returns the lowest location reached.
func lowestInRange(layers [][]mapping, start, length int) int {
	lowest := -1
	for seed := start; seed < start+length; seed++ {
		v := seed
		for _, layer := range layers {
			v = convert(v, layer)
		}
		if lowest < 0 || v < lowest {
			lowest = v
		}
	}
	return lowest
}

func parseAlmanac(input string) (almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) < 2 {
		return almanac{}, fmt.Errorf("almanac needs seeds and at least one map, got %d blocks", len(blocks))
	}

	seedStr, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return almanac{}, fmt.Errorf("malformed seeds block: %q", blocks[0])
	}
	seeds, err := parse.Ints(seedStr)
	if err != nil {
		return almanac{}, err
	}

	a := almanac{seeds: seeds}
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		var layer []mapping
		// First line is the "x-to-y map:" header.
		for _, line := range lines[1:] {
			nums, err := parse.Ints(line)
			if err != nil {
				return almanac{}, err
			}
			if len(nums) != 3 {
				return almanac{}, fmt.Errorf("mapping line needs 3 numbers: %q", line)
			}
			layer = append(layer, mapping{dst: nums[0], src: nums[1], length: nums[2]})
		}
		a.layers = append(a.layers, layer)
	}
	return a, nil
}
