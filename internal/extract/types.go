// # internal/extract/types.go
package extract

// Module is the structured record for one source file. It is built once by
// the ModuleExtractor and never mutated afterwards.
type Module struct {
	Name      string   // file stem, used as the module key
	Imports   []string // normalized dependency names, duplicates preserved
	Classes   []ClassInfo
	Functions []string // top-level function names, in source order
	Relations []Relation
}

type ClassInfo struct {
	Name       string
	Superclass string // empty when the class declares no single base
	Methods    []string
	Attributes []string // constructor-assigned names, duplicates preserved
}

type RelationKind string

const RelationExtends RelationKind = "extends"

// Relation records one inheritance fact: From is the superclass, To the
// subclass.
type Relation struct {
	From string
	To   string
	Kind RelationKind
}
