// Package day15 runs the lava facility's HASH and HASHMAP procedures.
package day15

import (
	"fmt"
	"strconv"
	"strings"
)

// Part1 sums the hash of every step in the initialization sequence.
func Part1(input string) (string, error) {
	total := 0
	for _, step := range steps(input) {
		total += hash(step)
	}
	return strconv.Itoa(total), nil
}

// Part2 plays the steps against the 256 lens boxes and reports the
// focusing power of the result.
func Part2(input string) (string, error) {
	var boxes [256][]lens
	for _, step := range steps(input) {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := hash(label)
			boxes[b] = remove(boxes[b], label)
			continue
		}
		label, value, ok := strings.Cut(step, "=")
		if !ok {
			return "", fmt.Errorf("step %q is neither an insertion nor a removal", step)
		}
		focal, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("step %q: %w", step, err)
		}
		b := hash(label)
		boxes[b] = upsert(boxes[b], lens{label: label, focal: focal})
	}

	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return strconv.Itoa(power), nil
}

// steps splits the sequence on commas. Newlines are not part of the
// sequence and are dropped wherever they appear.
func steps(input string) []string {
	input = strings.ReplaceAll(input, "\n", "")
	if input == "" {
		return nil
	}
	return strings.Split(input, ",")
}

// hash folds each byte into the code: add, multiply by 17, keep the
// remainder modulo 256.
func hash(s string) int {
	code := 0
	for i := 0; i < len(s); i++ {
		code = (code + int(s[i])) * 17 % 256
	}
	return code
}

type lens struct {
	label string
	focal int
}

// upsert replaces the lens carrying the same label in place, otherwise
// appends to the back of the box.
func upsert(box []lens, l lens) []lens {
	for i, existing := range box {
		if existing.label == l.label {
			box[i] = l
			return box
		}
	}
	return append(box, l)
}

func remove(box []lens, label string) []lens {
	for i, existing := range box {
		if existing.label == label {
			return append(box[:i], box[i+1:]...)
		}
	}
	return box
}
