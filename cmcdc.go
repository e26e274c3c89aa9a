// Package cmcdc derives MC/DC (Modified Condition/Decision Coverage)
// truth tables from C decision expressions and generates unit-test
// scaffolding for them. This file is the embedding facade; the cmcdc
// binary under cmd/ wraps the same entry points.
package cmcdc

import (
	"context"

	"github.com/coverkit/cmcdc/internal/csrc"
	"github.com/coverkit/cmcdc/internal/mcdc"
	"github.com/coverkit/cmcdc/internal/types"
)

// Decision re-exports the extracted-decision record.
type Decision = types.Decision

// GenerateMCDCPatterns derives the MC/DC pattern set for one C boolean
// decision expression. It returns the sorted pattern strings over
// {T,F} and the parallel list of leaf condition texts: character
// position i of every pattern refers to leaves[i].
func GenerateMCDCPatterns(expr string) (patterns, leaves []string) {
	return mcdc.GenerateMCDCPatterns(expr)
}

// ExtractDecisions parses a C source file and returns every branching
// condition found in it, in source order.
func ExtractDecisions(ctx context.Context, path string) ([]Decision, error) {
	return csrc.NewExtractor(nil).ExtractFile(ctx, path)
}

// ExtractDecisionsFromSource is ExtractDecisions over in-memory source.
func ExtractDecisionsFromSource(ctx context.Context, source []byte, filename string) ([]Decision, error) {
	return csrc.NewExtractor(nil).ExtractSource(ctx, source, filename)
}
