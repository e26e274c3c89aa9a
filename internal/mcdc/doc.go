// Package mcdc derives MC/DC (Modified Condition/Decision Coverage)
// truth patterns for C boolean decision expressions.
//
// The package is one cohesive unit: the condition-tree parser and the
// pattern generator share the tree representation and its positional
// leaf ordering. A decision like `a || (b && c)` parses into an n-ary
// AND/OR tree over opaque leaf conditions; the generator then searches
// the full 2^n assignment space for independence pairs per leaf and
// greedily selects a minimal covering pattern set.
//
// Design constraints carried throughout:
//   - determinism: the same expression always yields bit-identical
//     output, down to the sort order of the pattern strings
//   - total evaluation: AND/OR are evaluated without short-circuiting
//     so that every leaf position is consumed on every evaluation
//   - tolerance: malformed expressions degrade into opaque leaves
//     instead of failing, since inputs come from compiling C source
//
// A leaf whose truth value can never independently flip the decision
// is reported as infeasible and skipped; it is a diagnostic, not an
// error.
package mcdc
