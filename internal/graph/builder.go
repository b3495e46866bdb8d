// # internal/graph/builder.go
package graph

import (
	"fmt"
	"log/slog"

	"code2uml/internal/extract"
	"code2uml/internal/shared/observability"
)

// Model is the fully resolved diagram: clusters in discovery order, one edge
// group per module, and the distinct external node names in first-seen
// order. Everything is an ordered slice so rendering is byte-deterministic.
type Model struct {
	Modules   []*extract.Module
	Clusters  []*Cluster    // parallel to Modules
	Edges     []ModuleEdges // parallel to Modules
	Externals []string
	Warnings  []string
}

// EdgeCount returns the total number of drawn edges.
func (m *Model) EdgeCount() int {
	n := 0
	for _, e := range m.Edges {
		n += len(e.Dependencies) + len(e.Inheritance)
	}
	return n
}

// Builder aggregates extracted modules into a Model.
type Builder struct {
	Policy RepresentativePolicy
	Logger *slog.Logger
}

func (b *Builder) policy() RepresentativePolicy {
	if b.Policy == "" {
		return PolicyFunctionsFirst
	}
	return b.Policy
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// Build resolves every module's imports against the known clusters,
// synthesizes singleton external nodes for the rest and deduplicates
// inheritance relations. A module with neither classes nor functions has no
// representative node: edges touching it are skipped with a warning rather
// than failing the run, since empty modules are legitimate input.
func (b *Builder) Build(modules []*extract.Module) *Model {
	model := &Model{Modules: modules}

	byName := make(map[string]*Cluster, len(modules))
	for i, mod := range modules {
		c := &Cluster{Index: i, Name: mod.Name}
		if len(mod.Classes) > 0 {
			c.ClassNode = ClassNodeID(mod.Classes[0].Name)
		}
		if len(mod.Functions) > 0 {
			c.FuncNode = FuncNodeID(mod.Name)
		}
		model.Clusters = append(model.Clusters, c)
		byName[mod.Name] = c
	}

	externalSeen := make(map[string]bool)
	policy := b.policy()

	for i, mod := range modules {
		cluster := model.Clusters[i]
		edges := ModuleEdges{}

		rep := cluster.Representative(policy)
		if rep == "" && len(mod.Imports) > 0 {
			b.warn(model, fmt.Sprintf("module %q has no representative node; skipping %d dependency edges", mod.Name, len(mod.Imports)))
		}

		if rep != "" {
			for _, dep := range mod.Imports {
				if target, ok := byName[dep]; ok {
					src := target.Representative(policy)
					if src == "" {
						// Empty module as dependency target: no edge.
						b.warn(model, fmt.Sprintf("dependency %q of module %q has no representative node; edge skipped", dep, mod.Name))
						continue
					}
					edges.Dependencies = append(edges.Dependencies, DependencyEdge{
						FromNode:    src,
						ToNode:      rep,
						FromCluster: target.Index,
						ToCluster:   cluster.Index,
					})
					continue
				}

				declare := false
				if !externalSeen[dep] {
					externalSeen[dep] = true
					model.Externals = append(model.Externals, dep)
					declare = true
				}
				edges.Dependencies = append(edges.Dependencies, DependencyEdge{
					FromNode:    dep,
					ToNode:      rep,
					FromCluster: -1,
					ToCluster:   cluster.Index,
					External:    true,
					Declare:     declare,
				})
			}
		}

		// Insertion-ordered dedup keeps repeated runs byte-identical.
		relSeen := make(map[extract.Relation]bool)
		for _, rel := range mod.Relations {
			if relSeen[rel] {
				continue
			}
			relSeen[rel] = true
			edges.Inheritance = append(edges.Inheritance, InheritanceEdge{
				Super: ClassNodeID(rel.From),
				Sub:   ClassNodeID(rel.To),
			})
		}

		model.Edges = append(model.Edges, edges)
	}

	observability.GraphModules.Set(float64(len(model.Clusters)))
	observability.GraphEdges.Set(float64(model.EdgeCount()))

	return model
}

func (b *Builder) warn(model *Model, msg string) {
	model.Warnings = append(model.Warnings, msg)
	b.logger().Warn(msg)
}
