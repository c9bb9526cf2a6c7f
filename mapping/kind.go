// Package mapping implements the name-keyed external representation of the
// inventory entities: relation fields are addressed by the related row's
// unique name rather than its surrogate id, in both directions.
package mapping

import "errors"

// Kind identifies one of the inventory entity kinds.
type Kind string

const (
	KindLabel           Kind = "Label"
	KindOwner           Kind = "Owner"
	KindCluster         Kind = "Cluster"
	KindEnvironment     Kind = "Environment"
	KindDomain          Kind = "Domain"
	KindOperatingSystem Kind = "OperatingSystem"
	KindServer          Kind = "Server"
	KindProduct         Kind = "Product"
)

// Ref identifies a resolved related row by surrogate id and unique name.
type Ref struct {
	ID   uint
	Name string
}

// Resolver looks rows up by their unique name. Implementations return
// ErrNameNotFound when no row matches.
type Resolver interface {
	ResolveName(kind Kind, name string) (Ref, error)
}

// ErrNameNotFound is returned by a Resolver when no row matches the name.
var ErrNameNotFound = errors.New("no row matches the given name")

// Named is any entity addressable by a unique name.
type Named interface {
	RefName() string
}

// Nameds adapts a concrete entity slice to the Named interface.
func Nameds[T Named](items []T) []Named {
	out := make([]Named, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
