package csrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse whitespace", "a   &&\n\tb", "a && b"},
		{"block comment", "a && /* why */ b", "a && b"},
		{"line comment", "a && // trailing\nb", "a && b"},
		{"line continuation", "a && \\\n b", "a && b"},
		{"comment markers in string", `strcmp(s, "/*") == 0 && b`, `strcmp(s, "/*") == 0 && b`},
		{"comment markers in char literal", "c == '/' && d == '*'", "c == '/' && d == '*'"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
