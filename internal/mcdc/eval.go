package mcdc

// Pattern is a complete truth assignment over a decision's leaves, one
// boolean per leaf in the stable left-to-right leaf order.
type Pattern []bool

// String renders the pattern as a fixed-length string over {T,F}.
func (p Pattern) String() string {
	buf := make([]byte, len(p))
	for i, v := range p {
		if v {
			buf[i] = 'T'
		} else {
			buf[i] = 'F'
		}
	}
	return string(buf)
}

// Equal reports whether p and q assign the same value to every leaf.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Less orders patterns position by position with false < true. This is
// the order the generated pattern list is sorted in.
func (p Pattern) Less(q Pattern) bool {
	for i := range p {
		if i >= len(q) {
			return false
		}
		if p[i] != q[i] {
			return !p[i]
		}
	}
	return len(p) < len(q)
}

// flip returns a copy of p with position i negated.
func (p Pattern) flip(i int) Pattern {
	q := make(Pattern, len(p))
	copy(q, p)
	q[i] = !q[i]
	return q
}

// patternFromBits maps bit j of m to leaf j's truth value, so counting
// m from 0 to 2^n-1 enumerates the full pattern space in ascending
// order of the reversed tuple. The enumeration order only has to be
// deterministic, not sorted; the final output is sorted separately.
func patternFromBits(m, n int) Pattern {
	p := make(Pattern, n)
	for j := 0; j < n; j++ {
		p[j] = m&(1<<j) != 0
	}
	return p
}

// Eval computes the decision outcome for p with total, non-short-circuit
// semantics: AND is true iff all children are true, OR is true iff any
// child is true, and every child is evaluated regardless. Leaf values
// are consumed strictly in left-to-right order, which keeps evaluation
// in agreement with the Leaves enumeration for the same tree.
func Eval(n Node, p Pattern) bool {
	idx := 0
	return eval(n, p, &idx)
}

func eval(n Node, p Pattern, idx *int) bool {
	switch v := n.(type) {
	case Leaf:
		val := false
		if *idx < len(p) {
			val = p[*idx]
		}
		*idx++
		return val
	case Group:
		switch v.Op {
		case OpAnd:
			all := true
			for _, child := range v.Children {
				if !eval(child, p, idx) {
					all = false
				}
			}
			return all
		case OpOr:
			any := false
			for _, child := range v.Children {
				if eval(child, p, idx) {
					any = true
				}
			}
			return any
		}
	}
	return false
}
