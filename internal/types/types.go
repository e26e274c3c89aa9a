package types

// DecisionKind identifies the C construct a decision was extracted from.
type DecisionKind string

const (
	KindIf      DecisionKind = "if"
	KindWhile   DecisionKind = "while"
	KindDoWhile DecisionKind = "do-while"
	KindFor     DecisionKind = "for"
	KindTernary DecisionKind = "ternary"
)

// Decision represents one branching condition extracted from a C
// source file. Expr is the normalized condition text; leaf semantics
// inside it are opaque to the pattern generator.
type Decision struct {
	Kind     DecisionKind `json:"kind"`
	Filename string       `json:"filename"`
	Function string       `json:"function"`
	Line     int          `json:"line"` // 1-based
	Expr     string       `json:"expr"`
}
