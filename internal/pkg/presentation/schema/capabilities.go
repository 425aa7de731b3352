package schema

import (
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
)

// Identity is an identification tuple that is stored apart from the entity it
// identifies.
type Identity struct {
	Identificatie   string
	Bronorganisatie string
}

type Identifiable interface {
	Identity() (Identity, bool)
}

// Hierarchical entities have at most one parent and any number of children of
// their own type. Only their keys are ever projected.
type Hierarchical interface {
	Parent() hyperlink.Record
	Children() []hyperlink.Record
}

// Composite entities own named collections of related records.
type Composite interface {
	Related(collection string) []hyperlink.Record
}

// IdentityFields emits both parts of the identity, as empty strings when the
// entity has no identity record.
func IdentityFields[T Identifiable]() []Field[T] {
	return []Field[T]{
		Pass("identificatie", func(v T) any {
			id, _ := v.Identity()
			return id.Identificatie
		}),
		Pass("bronorganisatie", func(v T) any {
			id, _ := v.Identity()
			return id.Bronorganisatie
		}),
	}
}

// HierarchyFields emits the parent and children of an entity as references to
// the detail route of its own type.
func HierarchyFields[T Hierarchical](parent, children string, ref hyperlink.Reference) []Field[T] {
	return []Field[T]{
		One(parent, ref, func(v T) hyperlink.Record { return v.Parent() }),
		Many(children, ref, func(v T) []hyperlink.Record { return v.Children() }),
	}
}

// CollectionField emits the URLs of the named collection.
func CollectionField[T Composite](name string, ref hyperlink.Reference) Field[T] {
	return Many(name, ref, func(v T) []hyperlink.Record { return v.Related(name) })
}
