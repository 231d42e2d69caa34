// Package day20 simulates pulse propagation through communication modules.
package day20

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/intmath"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const (
	broadcasterName = "broadcaster"
	buttonPresses   = 1000
	pressLimit      = 100_000
)

// Part1 presses the button a thousand times and multiplies the number
// of low pulses sent by the number of high pulses.
func Part1(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}

	lows, highs := 0, 0
	for i := 0; i < buttonPresses; i++ {
		n.press(func(p pulse) {
			if p.high {
				highs++
			} else {
				lows++
			}
		})
	}
	return strconv.Itoa(lows * highs), nil
}

// Part2 counts button presses until rx sees a low pulse. rx hangs off
// a single conjunction, which fires low only on the press where all of
// its inputs fire high; each input fires high on a fixed cycle, so the
// answer is the least common multiple of those cycles.
func Part2(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}
	feeder, err := n.feederOf("rx")
	if err != nil {
		return "", err
	}
	if m := n[feeder]; m == nil || m.kind != conjunction {
		return "", fmt.Errorf("module %q feeding rx is not a conjunction", feeder)
	}

	remaining := map[string]bool{}
	for _, name := range n.inputsOf(feeder) {
		remaining[name] = true
	}

	answer := 1
	for press := 1; press <= pressLimit; press++ {
		n.press(func(p pulse) {
			if p.high && p.to == feeder && remaining[p.from] {
				delete(remaining, p.from)
				answer = intmath.LCM(answer, press)
			}
		})
		if len(remaining) == 0 {
			return strconv.Itoa(answer), nil
		}
	}
	return "", fmt.Errorf("no low pulse reached rx after %d presses", pressLimit)
}

type kind int

const (
	plain kind = iota // broadcaster
	flipFlop
	conjunction
)

type module struct {
	kind  kind
	dests []string

	on     bool            // flip-flop state
	memory map[string]bool // conjunction: last pulse seen per input
}

// anyInputLow reports whether the conjunction remembers a low pulse
// from any input, in which case its next pulse is high.
func (m *module) anyInputLow() bool {
	for _, high := range m.memory {
		if !high {
			return true
		}
	}
	return false
}

type network map[string]*module

type pulse struct {
	from, to string
	high     bool
}

// press pushes the button once and delivers every resulting pulse in
// order. Each delivery is reported through observe before the receiving
// module processes it.
func (n network) press(observe func(pulse)) {
	queue := []pulse{{from: "button", to: broadcasterName}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		m, ok := n[p.to]
		if !ok {
			// untyped sink such as "output" or "rx"
			continue
		}

		var high bool
		switch m.kind {
		case flipFlop:
			if p.high {
				continue
			}
			m.on = !m.on
			high = m.on
		case conjunction:
			m.memory[p.from] = p.high
			high = m.anyInputLow()
		default:
			high = p.high
		}
		for _, dest := range m.dests {
			queue = append(queue, pulse{from: p.to, to: dest, high: high})
		}
	}
}

func (n network) inputsOf(target string) []string {
	var inputs []string
	for name, m := range n {
		for _, dest := range m.dests {
			if dest == target {
				inputs = append(inputs, name)
			}
		}
	}
	return inputs
}

func (n network) feederOf(target string) (string, error) {
	feeders := n.inputsOf(target)
	if len(feeders) != 1 {
		return "", fmt.Errorf("%q has %d feeding modules, want exactly 1", target, len(feeders))
	}
	return feeders[0], nil
}

func parseNetwork(input string) (network, error) {
	n := network{}
	for _, line := range parse.Lines(input) {
		name, destList, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, fmt.Errorf("malformed module %q", line)
		}
		m := &module{dests: strings.Split(destList, ", ")}
		switch {
		case strings.HasPrefix(name, "%"):
			m.kind = flipFlop
			name = name[1:]
		case strings.HasPrefix(name, "&"):
			m.kind = conjunction
			m.memory = map[string]bool{}
			name = name[1:]
		}
		n[name] = m
	}

	// a conjunction starts remembering a low pulse from every input,
	// so each needs its full input set before the first press
	for name, m := range n {
		for _, dest := range m.dests {
			if d, ok := n[dest]; ok && d.kind == conjunction {
				d.memory[name] = false
			}
		}
	}
	return n, nil
}
