package csrc

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"go.uber.org/zap"

	"github.com/coverkit/cmcdc/internal/types"
)

// DefaultMaxFileSize is the largest C source the extractor will accept.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Extractor pulls decision expressions out of C sources using the
// tree-sitter C grammar. A fresh tree-sitter parser is created per
// call, so one Extractor is safe for concurrent use.
type Extractor struct {
	maxFileSize int64
	logger      *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxFileSize overrides the file size limit.
func WithMaxFileSize(bytes int64) Option {
	return func(e *Extractor) {
		if bytes > 0 {
			e.maxFileSize = bytes
		}
	}
}

// NewExtractor creates an extractor. A nil logger disables diagnostics.
func NewExtractor(logger *zap.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Extractor{
		maxFileSize: DefaultMaxFileSize,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFile reads path and returns the decisions found in it.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]types.Decision, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if info.Size() > e.maxFileSize {
		return nil, fmt.Errorf("%s exceeds size limit (%d bytes)", path, e.maxFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.ExtractSource(ctx, content, path)
}

// ExtractSource extracts decisions from in-memory C source. Syntax
// errors are tolerated: whatever branches tree-sitter can still read
// are returned, which mirrors the error-recovery behavior of its
// grammar.
func (e *Extractor) ExtractSource(ctx context.Context, content []byte, filename string) ([]types.Decision, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned no root node for %s", filename)
	}
	if root.HasError() {
		e.logger.Warn("source contains syntax errors, extracting what is readable",
			zap.String("file", filename))
	}

	var decisions []types.Decision
	e.walk(root, content, filename, "", &decisions)
	return decisions, nil
}

func (e *Extractor) walk(node *sitter.Node, content []byte, filename, fn string, out *[]types.Decision) {
	switch node.Type() {
	case "function_definition":
		if name := declaratorName(node.ChildByFieldName("declarator"), content); name != "" {
			fn = name
		}
	case "if_statement":
		e.appendCondition(types.KindIf, node, content, filename, fn, out)
	case "while_statement":
		e.appendCondition(types.KindWhile, node, content, filename, fn, out)
	case "do_statement":
		e.appendCondition(types.KindDoWhile, node, content, filename, fn, out)
	case "for_statement":
		e.appendCondition(types.KindFor, node, content, filename, fn, out)
	case "conditional_expression":
		e.appendCondition(types.KindTernary, node, content, filename, fn, out)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		e.walk(node.NamedChild(i), content, filename, fn, out)
	}
}

func (e *Extractor) appendCondition(kind types.DecisionKind, node *sitter.Node, content []byte, filename, fn string, out *[]types.Decision) {
	cond := node.ChildByFieldName("condition")
	if cond == nil {
		// a for loop's condition clause is optional
		return
	}
	// if/while/do conditions arrive as parenthesized_expression; report
	// the bare expression like a for clause or ternary condition
	if cond.Type() == "parenthesized_expression" && cond.NamedChildCount() > 0 {
		cond = cond.NamedChild(0)
	}
	expr := Normalize(cond.Content(content))
	if expr == "" {
		return
	}
	*out = append(*out, types.Decision{
		Kind:     kind,
		Filename: filename,
		Function: fn,
		Line:     int(cond.StartPoint().Row) + 1,
		Expr:     expr,
	})
}

// declaratorName digs through pointer and paren declarators to the
// identifier naming a function definition.
func declaratorName(n *sitter.Node, content []byte) string {
	for n != nil {
		switch n.Type() {
		case "identifier":
			return n.Content(content)
		case "function_declarator", "pointer_declarator":
			n = n.ChildByFieldName("declarator")
		case "parenthesized_declarator":
			if n.NamedChildCount() == 0 {
				return ""
			}
			n = n.NamedChild(0)
		default:
			return ""
		}
	}
	return ""
}
