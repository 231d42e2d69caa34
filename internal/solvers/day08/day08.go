// Package day08 walks the desert node network by left/right instructions.
package day08

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/intmath"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

type network struct {
	instructions string
	// nodes maps a node name to its left and right successors.
	nodes map[string][2]string
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}

	steps, err := n.walk("AAA", func(node string) bool { return node == "ZZZ" })
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps), nil
}

// Part2 starts a ghost on every ..A node simultaneously. Each ghost's
// path to a ..Z node is cyclic, so the first step where all arrive is
// the least common multiple of the individual cycle lengths.
func Part2(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}

	atEnd := func(node string) bool { return strings.HasSuffix(node, "Z") }

	total := 1
	started := false
	for node := range n.nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		steps, err := n.walk(node, atEnd)
		if err != nil {
			return "", err
		}
		total = intmath.LCM(total, steps)
		started = true
	}
	if !started {
		return "", fmt.Errorf("no starting nodes ending in A")
	}
	return strconv.Itoa(total), nil
}

// walk follows the instructions cyclically from start until done
// reports true, returning the number of steps taken.
func (n network) walk(start string, done func(string) bool) (int, error) {
	node := start
	steps := 0
	for !done(node) {
		next, ok := n.nodes[node]
		if !ok {
			return 0, fmt.Errorf("node %q not in network", node)
		}
		switch n.instructions[steps%len(n.instructions)] {
		case 'L':
			node = next[0]
		case 'R':
			node = next[1]
		default:
			return 0, fmt.Errorf("bad instruction %q", n.instructions[steps%len(n.instructions)])
		}
		steps++
	}
	return steps, nil
}

// parseNetwork reads the instruction line and node lines like
// "AAA = (BBB, CCC)".
func parseNetwork(input string) (network, error) {
	lines := parse.Lines(input)
	if len(lines) < 3 {
		return network{}, fmt.Errorf("network needs instructions and nodes, got %d lines", len(lines))
	}

	n := network{
		instructions: strings.TrimSpace(lines[0]),
		nodes:        make(map[string][2]string),
	}
	if n.instructions == "" {
		return network{}, fmt.Errorf("empty instruction line")
	}

	for _, line := range lines[2:] {
		name, pair, ok := strings.Cut(line, " = ")
		if !ok {
			return network{}, fmt.Errorf("malformed node line: %q", line)
		}
		pair = strings.Trim(pair, "()")
		left, right, ok := strings.Cut(pair, ", ")
		if !ok {
			return network{}, fmt.Errorf("malformed node pair: %q", line)
		}
		n.nodes[name] = [2]string{left, right}
	}
	return n, nil
}
