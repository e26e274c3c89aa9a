package stub

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverkit/cmcdc/internal/mcdc"
	"github.com/coverkit/cmcdc/internal/report"
	"github.com/coverkit/cmcdc/internal/types"
)

func sampleTable() report.Table {
	d := types.Decision{
		Kind:     types.KindIf,
		Filename: "src/clamp.c",
		Function: "clamp",
		Line:     12,
		Expr:     "a && b",
	}
	return report.Build(d, mcdc.NewGenerator(nil).Generate(d.Expr))
}

func TestRenderDefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, []report.Table{sampleTable()}))

	out := buf.String()
	assert.Contains(t, out, "void test_clamp_if_l12(void)")
	assert.Contains(t, out, "decision: a && b")
	assert.Contains(t, out, "case 0 (FT), expect false")
	assert.Contains(t, out, "(a) is false")
	assert.Contains(t, out, "(b) is true")
}

func TestRenderCustomTemplate(t *testing.T) {
	g, err := NewWithTemplate("{{.Name}}: {{len .Cases}} cases\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf, []report.Table{sampleTable()}))
	assert.Equal(t, "test_clamp_if_l12: 3 cases\n", buf.String())
}

func TestRenderBadTemplate(t *testing.T) {
	_, err := NewWithTemplate("{{.Unclosed")
	assert.Error(t, err)
}

func TestStubNameSanitized(t *testing.T) {
	table := sampleTable()
	table.Decision.Function = ""
	table.Decision.Kind = types.KindDoWhile

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, []report.Table{table}))
	assert.Contains(t, buf.String(), "void test_global_do_while_l12(void)")
}
