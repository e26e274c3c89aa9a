package mcdc

import "strings"

// Parse converts a C-like boolean decision expression into a condition
// tree. At every nesting level the text is split on `||` at paren depth
// zero first, then on `&&`, which implements the C precedence rule that
// `&&` binds tighter than `||`. A text that splits on neither operator
// is recorded verbatim as a leaf.
//
// The parser is tolerant: unbalanced parentheses or stray operators are
// not rejected, they just degrade into leaf text. Callers are expected
// to hand over conditions extracted from source that already compiles.
func Parse(expr string) Node {
	s := stripOuterParens(expr)
	if parts := splitTopLevel(s, "||"); len(parts) > 1 {
		return newGroup(OpOr, s, parts)
	}
	if parts := splitTopLevel(s, "&&"); len(parts) > 1 {
		return newGroup(OpAnd, s, parts)
	}
	return Leaf{Text: strings.TrimSpace(s)}
}

func newGroup(op Op, text string, parts []string) Node {
	children := make([]Node, 0, len(parts))
	for _, part := range parts {
		children = append(children, Parse(part))
	}
	return Group{Op: op, Text: strings.TrimSpace(text), Children: children}
}

// stripOuterParens removes every fully-enclosing matched pair of
// parentheses: "((a && b))" becomes "a && b", but "(a) && (b)" is left
// alone because its first paren closes before the end of the string.
func stripOuterParens(s string) string {
	for {
		s = strings.TrimSpace(s)
		if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
			return s
		}
		depth := 0
		wrapped := true
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 && i < len(s)-1 {
				wrapped = false
				break
			}
		}
		if !wrapped {
			return s
		}
		s = s[1 : len(s)-1]
	}
}

// splitTopLevel splits s on the two-character operator op wherever the
// paren nesting depth is zero. A single `|` or `&` (bitwise operator
// inside a leaf) never matches.
func splitTopLevel(s, op string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && i+1 < len(s) && s[i] == op[0] && s[i+1] == op[1] {
			parts = append(parts, s[start:i])
			i++
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
