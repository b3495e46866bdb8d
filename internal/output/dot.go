// # internal/output/dot.go
package output

import (
	"fmt"
	"strings"
	"time"

	"code2uml/internal/extract"
	"code2uml/internal/graph"
	"code2uml/internal/shared/observability"
)

// DOTGenerator serializes a resolved diagram model into Graphviz text. The
// model is fully ordered, so generation is a pure walk and the output is
// byte-identical across runs on unchanged input.
type DOTGenerator struct {
	model *graph.Model
}

func NewDOTGenerator(m *graph.Model) *DOTGenerator {
	return &DOTGenerator{model: m}
}

func (d *DOTGenerator) Generate() (string, error) {
	start := time.Now()
	defer func() {
		observability.RenderDuration.Observe(time.Since(start).Seconds())
	}()

	var buf strings.Builder

	buf.WriteString("digraph UmlDiagram {\n")
	buf.WriteString("  node [shape=record, style=filled, fillcolor=gray95];\n")
	buf.WriteString("  nodesep=\"0.5\";\n")
	buf.WriteString("  ranksep=\"5.0\";\n")
	buf.WriteString("  compound=true;\n")

	for i, mod := range d.model.Modules {
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("  subgraph cluster%d {\n", i))
		buf.WriteString(fmt.Sprintf("    label = <Module: <B>%s</B>>;\n", mod.Name))
		buf.WriteString("    labeljust=l;\n")

		for _, c := range mod.Classes {
			d.writeClass(&buf, c)
		}
		if len(mod.Functions) > 0 {
			d.writeFunctions(&buf, mod.Name, mod.Functions)
		}

		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, edges := range d.model.Edges {
		for _, dep := range edges.Dependencies {
			if dep.Declare {
				buf.WriteString(fmt.Sprintf("  %s [shape=\"folder\"];\n", dep.FromNode))
			}
			if dep.External {
				buf.WriteString(fmt.Sprintf("  %s -> %s [arrowhead=vee, style=dashed, lhead=cluster%d, tailport=s];\n",
					dep.FromNode, dep.ToNode, dep.ToCluster))
			} else {
				buf.WriteString(fmt.Sprintf("  %s -> %s [arrowhead=vee, style=dashed, ltail=cluster%d, lhead=cluster%d, tailport=s];\n",
					dep.FromNode, dep.ToNode, dep.FromCluster, dep.ToCluster))
			}
		}
		for _, inh := range edges.Inheritance {
			// dir=back flips the rendering so the empty arrowhead sits at
			// the superclass while the edge still flows super -> sub.
			buf.WriteString(fmt.Sprintf("  %s -> %s [dir=back, arrowtail=empty, headport=n, tailport=s];\n",
				inh.Super, inh.Sub))
		}
	}

	if len(d.model.Externals) > 0 {
		buf.WriteString(fmt.Sprintf("\n  {rank = same; %s}\n", strings.Join(d.model.Externals, "; ")))
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

func (d *DOTGenerator) writeClass(buf *strings.Builder, c extract.ClassInfo) {
	buf.WriteString(fmt.Sprintf("    %s [\n", graph.ClassNodeID(c.Name)))
	buf.WriteString("      shape=plain,\n")
	buf.WriteString("      label=<<table border=\"0\" cellborder=\"1\" cellspacing=\"0\" cellpadding=\"4\">\n")
	buf.WriteString(fmt.Sprintf("        <tr> <td> <b>%s</b> </td> </tr>\n", c.Name))

	if len(c.Attributes) > 0 {
		d.writeSection(buf, "+ property", c.Attributes)
	}
	if len(c.Methods) > 0 {
		d.writeSection(buf, "+ method", c.Methods)
	}

	buf.WriteString("      </table>>\n")
	buf.WriteString("    ];\n")
}

func (d *DOTGenerator) writeSection(buf *strings.Builder, header string, entries []string) {
	buf.WriteString("        <tr> <td>\n")
	buf.WriteString("          <table border=\"0\" cellborder=\"0\" cellspacing=\"0\">\n")
	buf.WriteString(fmt.Sprintf("            <tr> <td align=\"left\">%s</td> </tr>\n", header))
	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf("            <tr> <td align=\"left\">- %s</td> </tr>\n", entry))
	}
	buf.WriteString("          </table>\n")
	buf.WriteString("        </td> </tr>\n")
}

func (d *DOTGenerator) writeFunctions(buf *strings.Builder, moduleName string, functions []string) {
	buf.WriteString(fmt.Sprintf("    %s [\n", graph.FuncNodeID(moduleName)))
	buf.WriteString("      shape=\"folder\",\n")
	buf.WriteString("      label=<<table border=\"0\" cellborder=\"1\" cellspacing=\"0\" cellpadding=\"4\">\n")
	buf.WriteString("        <tr> <td align=\"left\">+ functions</td> </tr>\n")
	for _, fn := range functions {
		buf.WriteString(fmt.Sprintf("        <tr> <td align=\"left\">- %s</td> </tr>\n", fn))
	}
	buf.WriteString("      </table>>\n")
	buf.WriteString("    ];\n")
}
