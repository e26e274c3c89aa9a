package stub

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/coverkit/cmcdc/internal/report"
)

// defaultTemplate renders one C test-function skeleton per decision.
// Each generated case names the truth value every leaf condition must
// take and the decision outcome the test should observe.
const defaultTemplate = `/* {{.Decision.Filename}}:{{.Decision.Line}} [{{.Decision.Kind}}]{{if .Decision.Function}} in {{.Decision.Function}}{{end}}
 * decision: {{.Decision.Expr}}
 */
void {{.Name}}(void)
{
{{- range .Cases}}
    /* case {{.Index}} ({{.Pattern}}), expect {{.Outcome}}:
{{- range .Conditions}}
     *   {{.}}
{{- end}}
     */
{{- end}}
}
`

// Case is one truth pattern of a decision, prepared for templating.
type Case struct {
	Index      int
	Pattern    string
	Outcome    string
	Conditions []string
}

// Func is the template view of one decision's test stub.
type Func struct {
	Name     string
	Decision struct {
		Filename string
		Function string
		Line     int
		Kind     string
		Expr     string
	}
	Cases []Case
}

// Generator renders unit-test scaffolding from MC/DC tables.
type Generator struct {
	tmpl *template.Template
}

// New creates a generator using the built-in stub template.
func New() *Generator {
	return &Generator{tmpl: template.Must(template.New("stub").Parse(defaultTemplate))}
}

// NewWithTemplate creates a generator from custom template text.
func NewWithTemplate(text string) (*Generator, error) {
	tmpl, err := template.New("stub").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stub template: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

// Render writes one stub function per table to w.
func (g *Generator) Render(w io.Writer, tables []report.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := g.tmpl.Execute(w, view(t)); err != nil {
			return fmt.Errorf("rendering stub for %s:%d: %w", t.Decision.Filename, t.Decision.Line, err)
		}
	}
	return nil
}

func view(t report.Table) Func {
	var f Func
	f.Name = stubName(t)
	f.Decision.Filename = t.Decision.Filename
	f.Decision.Function = t.Decision.Function
	f.Decision.Line = t.Decision.Line
	f.Decision.Kind = string(t.Decision.Kind)
	f.Decision.Expr = t.Decision.Expr

	for i, p := range t.Patterns {
		c := Case{
			Index:   i,
			Pattern: p,
			Outcome: outcome(t.Outcomes[i]),
		}
		for j, leaf := range t.Leaves {
			c.Conditions = append(c.Conditions, fmt.Sprintf("(%s) is %s", leaf, outcome(p[j] == 'T')))
		}
		f.Cases = append(f.Cases, c)
	}
	return f
}

func stubName(t report.Table) string {
	fn := t.Decision.Function
	if fn == "" {
		fn = "global"
	}
	return fmt.Sprintf("test_%s_%s_l%d", sanitize(fn), sanitize(string(t.Decision.Kind)), t.Decision.Line)
}

func outcome(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// sanitize maps arbitrary text to a valid C identifier fragment.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
