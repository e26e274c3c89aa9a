package mcdc

import "strings"

// Op identifies the logical operator of an internal condition node.
type Op int

const (
	OpAnd Op = iota
	OpOr
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}

// Node represents one node of a parsed decision expression.
// A tree is immutable once built by Parse.
type Node interface {
	isNode()
	String() string
}

// Leaf is an atomic condition: a sub-expression with no top-level
// logical operator. Its text is opaque to the generator.
type Leaf struct {
	Text string
}

func (Leaf) isNode() {}
func (l Leaf) String() string {
	return l.Text
}

// Group is an n-ary AND/OR node. Consecutive chains of the same
// operator are flattened into one Group, so independence-pair search
// sees the operands as siblings. A Group always has at least two
// children.
type Group struct {
	Op       Op
	Text     string // original substring, kept for diagnostics
	Children []Node
}

func (Group) isNode() {}
func (g Group) String() string {
	parts := make([]string, 0, len(g.Children))
	for _, child := range g.Children {
		if sub, ok := child.(Group); ok {
			parts = append(parts, "("+sub.String()+")")
			continue
		}
		parts = append(parts, child.String())
	}
	return strings.Join(parts, " "+g.Op.String()+" ")
}

// Helper constructors, mainly for tests.

// Atom creates a leaf condition node.
func Atom(text string) Node {
	return Leaf{Text: text}
}

// And creates an n-ary AND node.
func And(children ...Node) Node {
	return Group{Op: OpAnd, Children: children}
}

// Or creates an n-ary OR node.
func Or(children ...Node) Node {
	return Group{Op: OpOr, Children: children}
}

// Leaves returns the leaf texts of the tree in stable left-to-right,
// depth-first order. The position of each text is the index space
// shared by evaluation and every generated truth pattern.
func Leaves(n Node) []string {
	return appendLeaves(n, nil)
}

func appendLeaves(n Node, out []string) []string {
	switch v := n.(type) {
	case Leaf:
		return append(out, v.Text)
	case Group:
		for _, child := range v.Children {
			out = appendLeaves(child, out)
		}
		return out
	default:
		return out
	}
}

// LeafCount returns the number of leaves in the tree.
func LeafCount(n Node) int {
	switch v := n.(type) {
	case Leaf:
		return 1
	case Group:
		total := 0
		for _, child := range v.Children {
			total += LeafCount(child)
		}
		return total
	default:
		return 0
	}
}
