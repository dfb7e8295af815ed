package catalog

import (
	"iter"

	"librarycatalog/internal/item"
)

// The Repository mock in mocks/ is maintained by hand; see its header.

// Repository defines the contract for catalog item storage.
type Repository interface {
	Add(it item.Item)
	FindByID(id int) (item.Item, error)
	Remove(id int) (item.Item, error)
	ListByKind(kind item.Kind) iter.Seq[item.Item]
	All() iter.Seq[item.Item]
	Len() int
}
