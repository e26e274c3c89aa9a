package mcdc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		expr       string
		wantLeaves []string
		wantCount  int
	}{
		{"a && b", []string{"a", "b"}, 3},
		{"a || b", []string{"a", "b"}, 3},
		{"a || (b && c)", []string{"a", "b", "c"}, 4},
		{"(A||B)&&C", []string{"A", "B", "C"}, 4},
		{"a || b || c", []string{"a", "b", "c"}, 4},
		{"a || (b && (c || d))", []string{"a", "b", "c", "d"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res := NewGenerator(nil).Generate(tt.expr)

			assert.Equal(t, tt.wantLeaves, res.Leaves)
			assert.Len(t, res.Patterns, tt.wantCount)
			assert.Empty(t, res.Infeasible)
			for _, p := range res.Patterns {
				assert.Len(t, p, len(tt.wantLeaves), "every pattern has one position per leaf")
			}
			assertCoverage(t, tt.expr, res)
		})
	}
}

func TestGenerateAndPair(t *testing.T) {
	patterns, leaves := GenerateMCDCPatterns("a && b")
	assert.Equal(t, []string{"a", "b"}, leaves)
	assert.ElementsMatch(t, []string{"TT", "TF", "FT"}, patterns)
}

func TestGenerateOrPair(t *testing.T) {
	patterns, leaves := GenerateMCDCPatterns("a || b")
	assert.Equal(t, []string{"a", "b"}, leaves)
	assert.ElementsMatch(t, []string{"FF", "TF", "FT"}, patterns)
}

func TestGenerateSingleLeaf(t *testing.T) {
	patterns, leaves := GenerateMCDCPatterns("x > 0")
	assert.Equal(t, []string{"x > 0"}, leaves)
	assert.Equal(t, []string{"F", "T"}, patterns)
}

func TestGenerateDeterminism(t *testing.T) {
	const expr = "(a || b) && (c || d) && e"
	first := NewGenerator(nil).Generate(expr)
	for i := 0; i < 5; i++ {
		again := NewGenerator(nil).Generate(expr)
		require.Equal(t, first, again, "run %d differs", i)
	}
}

func TestGenerateUpperBound(t *testing.T) {
	exprs := []string{
		"a",
		"a && b",
		"a || (b && c)",
		"(a || b) && (c || d)",
		"a && b && c && d && e",
		"(a && b) || (c && d) || (e && f)",
	}
	for _, expr := range exprs {
		res := NewGenerator(nil).Generate(expr)
		n := len(res.Leaves)
		assert.LessOrEqual(t, len(res.Patterns), 2*n, "expr %q", expr)
	}
}

func TestGenerateSortedOutput(t *testing.T) {
	res := NewGenerator(nil).Generate("(a || b) && (c || d)")
	assert.True(t, sort.SliceIsSorted(res.Patterns, func(i, j int) bool {
		return res.Patterns[i] < res.Patterns[j]
	}), "patterns must be sorted with F before T: %v", res.Patterns)
}

func TestGenerateFlatConsistency(t *testing.T) {
	// the brute-force path agrees with the legacy flat sets
	res := NewGenerator(nil).Generate("a || b || c")
	assert.ElementsMatch(t, OrPatterns(3), res.Patterns)

	res = NewGenerator(nil).Generate("a && b && c")
	assert.ElementsMatch(t, AndPatterns(3), res.Patterns)
}

func TestOutcomesMatchEvaluation(t *testing.T) {
	const expr = "a || (b && c)"
	res := NewGenerator(nil).Generate(expr)
	root := Parse(expr)
	for i, s := range res.Patterns {
		assert.Equal(t, Eval(root, patternFromString(s)), res.Outcomes[i], "pattern %s", s)
	}
}

// assertCoverage checks the MC/DC independence requirement: for every
// leaf there must be two returned patterns differing only at that
// position whose whole-tree evaluations differ.
func assertCoverage(t *testing.T, expr string, res Result) {
	t.Helper()
	root := Parse(expr)
	for i := range res.Leaves {
		found := false
		for _, a := range res.Patterns {
			for _, b := range res.Patterns {
				if differOnlyAt(a, b, i) && Eval(root, patternFromString(a)) != Eval(root, patternFromString(b)) {
					found = true
				}
			}
		}
		assert.True(t, found, "leaf %d (%s) of %q is not independently covered", i, res.Leaves[i], expr)
	}
}

func differOnlyAt(a, b string, i int) bool {
	if len(a) != len(b) || a[i] == b[i] {
		return false
	}
	for j := range a {
		if j != i && a[j] != b[j] {
			return false
		}
	}
	return true
}

func patternFromString(s string) Pattern {
	p := make(Pattern, len(s))
	for i := range s {
		p[i] = s[i] == 'T'
	}
	return p
}
