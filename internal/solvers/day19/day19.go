// Package day19 sorts machine parts through chained rating workflows.
package day19

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const (
	entryWorkflow = "in"
	minRating     = 1
	maxRating     = 4000
)

// Part1 sums the ratings of every part the workflows accept.
func Part1(input string) (string, error) {
	workflows, parts, err := parseSystem(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, p := range parts {
		accepted, err := run(workflows, p)
		if err != nil {
			return "", err
		}
		if accepted {
			total += p[0] + p[1] + p[2] + p[3]
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 counts every rating combination the workflows would accept,
// walking the workflow graph with spans instead of single parts.
func Part2(input string) (string, error) {
	workflows, _, err := parseSystem(input)
	if err != nil {
		return "", err
	}
	full := span{lo: minRating, hi: maxRating}
	count, err := countAccepted(workflows, entryWorkflow, spanSet{full, full, full, full}, len(workflows)+2)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(count), nil
}

// A part rates the four categories x, m, a and s, in that order.
type part [4]int

type rule struct {
	category byte // 'x', 'm', 'a' or 's'; 0 for the unconditional final rule
	op       byte // '<' or '>'
	value    int
	dest     string
}

type workflow []rule

func categoryIndex(c byte) int {
	switch c {
	case 'x':
		return 0
	case 'm':
		return 1
	case 'a':
		return 2
	case 's':
		return 3
	}
	return -1
}

// run sends the part through the workflows from the entry point until
// it is accepted or rejected. A part can visit each workflow at most
// once, so anything longer is a cycle.
func run(workflows map[string]workflow, p part) (bool, error) {
	name := entryWorkflow
	for steps := 0; steps < len(workflows)+2; steps++ {
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}
		wf, ok := workflows[name]
		if !ok {
			return false, fmt.Errorf("workflow %q does not exist", name)
		}
		name = wf.apply(p)
	}
	return false, fmt.Errorf("workflows form a cycle")
}

func (wf workflow) apply(p part) string {
	for _, r := range wf {
		if r.category == 0 {
			return r.dest
		}
		v := p[categoryIndex(r.category)]
		if (r.op == '<' && v < r.value) || (r.op == '>' && v > r.value) {
			return r.dest
		}
	}
	// unreachable: parseWorkflow rejects workflows without a final
	// unconditional rule
	return "R"
}

// countAccepted counts the rating combinations in set that end up
// accepted, splitting the set at each conditional rule.
func countAccepted(workflows map[string]workflow, name string, set spanSet, depth int) (int, error) {
	if set.empty() {
		return 0, nil
	}
	switch name {
	case "A":
		return set.combinations(), nil
	case "R":
		return 0, nil
	}
	if depth == 0 {
		return 0, fmt.Errorf("workflows form a cycle")
	}
	wf, ok := workflows[name]
	if !ok {
		return 0, fmt.Errorf("workflow %q does not exist", name)
	}

	total := 0
	for _, r := range wf {
		if r.category == 0 {
			n, err := countAccepted(workflows, r.dest, set, depth-1)
			if err != nil {
				return 0, err
			}
			return total + n, nil
		}
		matched, rest := set.split(categoryIndex(r.category), r.op, r.value)
		n, err := countAccepted(workflows, r.dest, matched, depth-1)
		if err != nil {
			return 0, err
		}
		total += n
		set = rest
		if set.empty() {
			break
		}
	}
	return total, nil
}

// span is an inclusive range of ratings.
type span struct {
	lo, hi int
}

// spanSet holds one span per category, x m a s.
type spanSet [4]span

func (s spanSet) empty() bool {
	for _, sp := range s {
		if sp.lo > sp.hi {
			return true
		}
	}
	return false
}

func (s spanSet) combinations() int {
	product := 1
	for _, sp := range s {
		product *= sp.hi - sp.lo + 1
	}
	return product
}

// split cuts the set on one category: the first result matches the
// comparison, the second is the remainder.
func (s spanSet) split(category int, op byte, value int) (matched, rest spanSet) {
	matched, rest = s, s
	sp := s[category]
	if op == '<' {
		matched[category] = span{lo: sp.lo, hi: min(sp.hi, value-1)}
		rest[category] = span{lo: max(sp.lo, value), hi: sp.hi}
	} else {
		matched[category] = span{lo: max(sp.lo, value+1), hi: sp.hi}
		rest[category] = span{lo: sp.lo, hi: min(sp.hi, value)}
	}
	return matched, rest
}

func parseSystem(input string) (map[string]workflow, []part, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("want workflows and ratings separated by a blank line, got %d blocks", len(blocks))
	}

	workflows := map[string]workflow{}
	for _, line := range strings.Split(blocks[0], "\n") {
		name, wf, err := parseWorkflow(line)
		if err != nil {
			return nil, nil, err
		}
		workflows[name] = wf
	}

	var parts []part
	for _, line := range strings.Split(blocks[1], "\n") {
		p, err := parsePart(line)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, p)
	}
	return workflows, parts, nil
}

func parseWorkflow(line string) (string, workflow, error) {
	name, rest, ok := strings.Cut(line, "{")
	if !ok || !strings.HasSuffix(rest, "}") {
		return "", nil, fmt.Errorf("malformed workflow %q", line)
	}

	var wf workflow
	for _, field := range strings.Split(strings.TrimSuffix(rest, "}"), ",") {
		cond, dest, ok := strings.Cut(field, ":")
		if !ok {
			wf = append(wf, rule{dest: field})
			continue
		}
		if len(cond) < 3 || categoryIndex(cond[0]) < 0 || (cond[1] != '<' && cond[1] != '>') {
			return "", nil, fmt.Errorf("malformed rule %q in workflow %q", field, name)
		}
		value, err := strconv.Atoi(cond[2:])
		if err != nil {
			return "", nil, fmt.Errorf("rule %q: %w", field, err)
		}
		wf = append(wf, rule{category: cond[0], op: cond[1], value: value, dest: dest})
	}
	if len(wf) == 0 || wf[len(wf)-1].category != 0 {
		return "", nil, fmt.Errorf("workflow %q does not end with an unconditional rule", name)
	}
	return name, wf, nil
}

// parsePart reads a rating line. Ratings always arrive in x, m, a, s
// order.
func parsePart(line string) (part, error) {
	values, err := parse.Ints(line)
	if err != nil {
		return part{}, err
	}
	if len(values) != 4 {
		return part{}, fmt.Errorf("part %q does not rate all four categories", line)
	}
	return part{values[0], values[1], values[2], values[3]}, nil
}
