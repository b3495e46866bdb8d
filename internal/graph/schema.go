// # internal/graph/schema.go
package graph

// RepresentativePolicy selects which node stands in for a whole module as
// the endpoint of inter-module dependency edges. Both node ids are always
// kept on the Cluster; the policy only decides which one edges target.
type RepresentativePolicy string

const (
	// PolicyFunctionsFirst targets the function-list node whenever the
	// module has top-level functions, falling back to the first class.
	PolicyFunctionsFirst RepresentativePolicy = "functions-first"
	// PolicyClassesFirst targets the first class when the module has any,
	// falling back to the function-list node.
	PolicyClassesFirst RepresentativePolicy = "classes-first"
)

// Cluster is the diagram grouping for one module.
type Cluster struct {
	Index     int
	Name      string
	ClassNode string // node id of the first class record, empty if no classes
	FuncNode  string // node id of the function-list record, empty if no functions
}

// Representative returns the module's edge endpoint under the given policy,
// or the empty string when the module has neither classes nor functions.
func (c *Cluster) Representative(policy RepresentativePolicy) string {
	a, b := c.FuncNode, c.ClassNode
	if policy == PolicyClassesFirst {
		a, b = c.ClassNode, c.FuncNode
	}
	if a != "" {
		return a
	}
	return b
}

// DependencyEdge is one resolved import, drawn from the dependency's
// representative to the importing module's representative.
type DependencyEdge struct {
	FromNode    string
	ToNode      string
	FromCluster int // index of the source cluster, -1 for external nodes
	ToCluster   int
	External    bool
	// Declare marks the first edge referencing an external node, which is
	// where the renderer emits the node definition.
	Declare bool
}

// InheritanceEdge is one deduplicated extends relation. Super and Sub are
// class node ids.
type InheritanceEdge struct {
	Super string
	Sub   string
}

// ModuleEdges groups one module's outgoing diagram edges so the renderer can
// emit dependencies and inheritance together, module by module.
type ModuleEdges struct {
	Dependencies []DependencyEdge
	Inheritance  []InheritanceEdge
}

// ClassNodeID and FuncNodeID mirror the node naming scheme used in the
// rendered output.
func ClassNodeID(className string) string { return className + "Class" }
func FuncNodeID(moduleName string) string { return moduleName + "Functions" }
