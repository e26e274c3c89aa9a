package csrc

import "strings"

// Normalize flattens an extracted condition into a single line: block
// and line comments are stripped, backslash line continuations are
// joined, and runs of whitespace collapse to one space. String and
// character literals are left untouched so comment markers inside them
// survive.
func Normalize(expr string) string {
	s := stripComments(expr)
	s = strings.ReplaceAll(s, "\\\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

func stripComments(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	const (
		code = iota
		blockComment
		lineComment
		stringLit
		charLit
	)
	state := code

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch state {
		case code:
			switch {
			case ch == '/' && i+1 < len(s) && s[i+1] == '*':
				state = blockComment
				i++
			case ch == '/' && i+1 < len(s) && s[i+1] == '/':
				state = lineComment
				i++
			case ch == '"':
				state = stringLit
				out.WriteByte(ch)
			case ch == '\'':
				state = charLit
				out.WriteByte(ch)
			default:
				out.WriteByte(ch)
			}
		case blockComment:
			if ch == '*' && i+1 < len(s) && s[i+1] == '/' {
				state = code
				i++
				out.WriteByte(' ')
			}
		case lineComment:
			if ch == '\n' {
				state = code
				out.WriteByte(ch)
			}
		case stringLit:
			out.WriteByte(ch)
			if ch == '\\' && i+1 < len(s) {
				out.WriteByte(s[i+1])
				i++
			} else if ch == '"' {
				state = code
			}
		case charLit:
			out.WriteByte(ch)
			if ch == '\\' && i+1 < len(s) {
				out.WriteByte(s[i+1])
				i++
			} else if ch == '\'' {
				state = code
			}
		}
	}
	return out.String()
}
