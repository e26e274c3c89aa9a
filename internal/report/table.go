package report

import (
	"github.com/coverkit/cmcdc/internal/mcdc"
	"github.com/coverkit/cmcdc/internal/types"
)

// Table is the MC/DC truth table generated for one decision. Patterns
// and Outcomes are parallel; character position i of every pattern
// refers to Leaves[i].
type Table struct {
	Decision   types.Decision `json:"decision"`
	Leaves     []string       `json:"leaves"`
	Patterns   []string       `json:"patterns"`
	Outcomes   []bool         `json:"outcomes"`
	Infeasible []int          `json:"infeasible,omitempty"`
}

// Build pairs an extracted decision with its generated pattern set.
func Build(d types.Decision, res mcdc.Result) Table {
	return Table{
		Decision:   d,
		Leaves:     res.Leaves,
		Patterns:   res.Patterns,
		Outcomes:   res.Outcomes,
		Infeasible: res.Infeasible,
	}
}
