package mcdc

import (
	"sort"

	"go.uber.org/zap"
)

// pair is an independence pair for one leaf: two patterns differing
// only in that leaf's value whose whole-tree evaluations differ. The
// on pattern always has the leaf true.
type pair struct {
	on, off Pattern
}

// Result holds the generated MC/DC table for one decision expression.
// Patterns and Outcomes are parallel; Leaves[i] is the leaf text that
// character position i of every pattern refers to.
type Result struct {
	Patterns []string
	Outcomes []bool
	Leaves   []string

	// Infeasible lists leaf indexes for which no independence pair
	// exists anywhere in the 2^n pattern space. Those leaves are not
	// covered by Patterns; they are reported, not treated as errors.
	Infeasible []int
}

// Generator derives MC/DC truth patterns from decision expressions.
// It is stateless apart from its logger and safe for concurrent use.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a generator. A nil logger disables diagnostics.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// GenerateMCDCPatterns parses expr and returns the generated pattern
// strings alongside the leaf texts they index into.
func GenerateMCDCPatterns(expr string) ([]string, []string) {
	res := NewGenerator(nil).Generate(expr)
	return res.Patterns, res.Leaves
}

// Generate parses expr and selects a minimal covering pattern set via
// greedy reuse maximization. The result is deterministic for a given
// input: pair enumeration order is fixed, leaves are processed
// most-constrained first with ties broken by leaf index, and the final
// set is sorted.
func (g *Generator) Generate(expr string) Result {
	root := Parse(expr)
	leaves := Leaves(root)
	n := len(leaves)

	pairs := independencePairs(root, n)
	order := leafOrder(pairs)

	selected := make(map[string]Pattern)
	var infeasible []int
	for _, li := range order {
		if len(pairs[li]) == 0 {
			g.logger.Warn("condition has no independence pair",
				zap.Int("leaf", li),
				zap.String("text", leaves[li]),
				zap.String("expr", expr))
			infeasible = append(infeasible, li)
			continue
		}
		chosen := choosePair(pairs[li], selected)
		selected[chosen.on.String()] = chosen.on
		selected[chosen.off.String()] = chosen.off
	}

	patterns := make([]Pattern, 0, len(selected))
	for _, p := range selected {
		patterns = append(patterns, p)
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Less(patterns[j]) })
	sort.Ints(infeasible)

	res := Result{
		Patterns: make([]string, len(patterns)),
		Outcomes: make([]bool, len(patterns)),
		Leaves:   leaves,
	}
	if len(infeasible) > 0 {
		res.Infeasible = infeasible
	}
	for i, p := range patterns {
		res.Patterns[i] = p.String()
		res.Outcomes[i] = Eval(root, p)
	}
	return res
}

// independencePairs brute-forces the full 2^n pattern space and
// collects, per leaf, every pair of assignments that differ only in
// that leaf and flip the decision outcome. All pairs are kept, not
// just the first: selection needs the full candidate list to maximize
// reuse. 2^n stays tractable because real C decisions rarely exceed a
// dozen conditions.
func independencePairs(root Node, n int) [][]pair {
	all := make([][]pair, n)
	total := 1 << uint(n)
	for i := 0; i < n; i++ {
		for m := 0; m < total; m++ {
			p := patternFromBits(m, n)
			if !p[i] {
				continue
			}
			q := p.flip(i)
			if Eval(root, p) != Eval(root, q) {
				all[i] = append(all[i], pair{on: p, off: q})
			}
		}
	}
	return all
}

// leafOrder returns leaf indexes sorted by ascending independence-pair
// count. Processing the most constrained leaves first leaves the widest
// choice of reusable patterns for the rest; the stable sort keeps equal
// counts in leaf order so the result is reproducible.
func leafOrder(pairs [][]pair) []int {
	order := make([]int, len(pairs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(pairs[order[a]]) < len(pairs[order[b]])
	})
	return order
}

// choosePair picks the candidate that adds the fewest new patterns to
// the selected set, breaking ties on the higher count of already
// selected patterns. The two keys are compared explicitly rather than
// folded into one score so the tie-break rule stays visible. Pure
// greedy, no backtracking.
func choosePair(candidates []pair, selected map[string]Pattern) pair {
	best := candidates[0]
	bestAdded, bestReused := pairCost(best, selected)
	for _, c := range candidates[1:] {
		added, reused := pairCost(c, selected)
		if added < bestAdded || (added == bestAdded && reused > bestReused) {
			best, bestAdded, bestReused = c, added, reused
		}
	}
	return best
}

func pairCost(c pair, selected map[string]Pattern) (added, reused int) {
	for _, p := range []Pattern{c.on, c.off} {
		if _, ok := selected[p.String()]; ok {
			reused++
		} else {
			added++
		}
	}
	return added, reused
}
