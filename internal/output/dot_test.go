package output

import (
	"strings"
	"testing"

	"code2uml/internal/extract"
	"code2uml/internal/graph"
)

func buildModel(t *testing.T) *graph.Model {
	t.Helper()

	modules := []*extract.Module{
		{
			Name:    "shapes",
			Imports: []string{"numpy"},
			Classes: []extract.ClassInfo{
				{Name: "Shape", Methods: []string{"__init__", "area"}, Attributes: []string{"width", "height"}},
				{Name: "Circle", Superclass: "Shape", Methods: []string{"area"}},
			},
			Relations: []extract.Relation{{From: "Shape", To: "Circle", Kind: extract.RelationExtends}},
		},
		{
			Name:      "cli",
			Imports:   []string{"shapes", "numpy"},
			Functions: []string{"main", "parse_args"},
		},
	}

	var b graph.Builder
	return b.Build(modules)
}

func TestDOTGenerator(t *testing.T) {
	gen := NewDOTGenerator(buildModel(t))
	dot, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"digraph UmlDiagram {",
		"subgraph cluster0 {",
		"label = <Module: <B>shapes</B>>",
		"<b>Shape</b>",
		"+ property",
		"- width",
		"+ method",
		"- area",
		"cliFunctions [",
		"+ functions",
		"- parse_args",
		"ShapeClass -> cliFunctions [arrowhead=vee, style=dashed, ltail=cluster0, lhead=cluster1, tailport=s];",
		"numpy -> cliFunctions [arrowhead=vee, style=dashed, lhead=cluster1, tailport=s];",
		"ShapeClass -> CircleClass [dir=back, arrowtail=empty, headport=n, tailport=s];",
		"{rank = same; numpy}",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Count(dot, "numpy [shape=\"folder\"];") != 1 {
		t.Error("expected exactly one numpy node declaration")
	}
	if strings.Count(dot, "{rank = same;") != 1 {
		t.Error("expected exactly one rank-equality line")
	}
}

func TestDOTGenerator_EdgeOrdering(t *testing.T) {
	gen := NewDOTGenerator(buildModel(t))
	dot, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}

	// Module shapes comes first: its external numpy edge, then its
	// inheritance edge, then module cli's dependency edges.
	numpyToShape := strings.Index(dot, "numpy -> ShapeClass")
	inheritance := strings.Index(dot, "ShapeClass -> CircleClass")
	shapesToCli := strings.Index(dot, "ShapeClass -> cliFunctions")

	if numpyToShape == -1 || inheritance == -1 || shapesToCli == -1 {
		t.Fatal("expected all three edges in output")
	}
	if !(numpyToShape < inheritance && inheritance < shapesToCli) {
		t.Errorf("unexpected edge order: %d %d %d", numpyToShape, inheritance, shapesToCli)
	}
}

func TestDOTGenerator_Deterministic(t *testing.T) {
	first, err := NewDOTGenerator(buildModel(t)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewDOTGenerator(buildModel(t)).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated generation produced different output")
	}
}

func TestDOTGenerator_NoExternalsOmitsRankLine(t *testing.T) {
	var b graph.Builder
	model := b.Build([]*extract.Module{
		{Name: "a", Classes: []extract.ClassInfo{{Name: "A"}}},
	})

	dot, err := NewDOTGenerator(model).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(dot, "rank = same") {
		t.Error("expected no rank line without external nodes")
	}
}
