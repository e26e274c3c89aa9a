package mcdc

// Legacy pattern shapes for flat, non-nested decisions. The brute-force
// generator subsumes both; these are kept as the fast path for the
// simple n-ary cases and for compatibility with older reports.

// OrPatterns returns the flat-OR pattern set for n operands: one
// pattern per operand with that operand true and all others false,
// followed by the all-false pattern. Returns nil for n < 2.
func OrPatterns(n int) []string {
	if n < 2 {
		return nil
	}
	patterns := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		p := make(Pattern, n)
		p[i] = true
		patterns = append(patterns, p.String())
	}
	patterns = append(patterns, make(Pattern, n).String())
	return patterns
}

// AndPatterns is the symmetric flat-AND set: one pattern per operand
// with that operand false and all others true, followed by the
// all-true pattern. Returns nil for n < 2.
func AndPatterns(n int) []string {
	if n < 2 {
		return nil
	}
	patterns := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		p := make(Pattern, n)
		for j := range p {
			p[j] = j != i
		}
		patterns = append(patterns, p.String())
	}
	all := make(Pattern, n)
	for j := range all {
		all[j] = true
	}
	return append(patterns, all.String())
}
