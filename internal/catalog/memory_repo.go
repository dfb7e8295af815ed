package catalog

import (
	"iter"
	"slices"

	"librarycatalog/internal/item"
)

// MemoryRepo keeps items in insertion order. It is not safe for concurrent use.
type MemoryRepo struct {
	items []item.Item
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Add(it item.Item) {
	r.items = append(r.items, it)
}

// FindByID returns the earliest-inserted item with the given id.
func (r *MemoryRepo) FindByID(id int) (item.Item, error) {
	i := r.indexOf(id)
	if i < 0 {
		return item.Item{}, ErrNotFound
	}
	return r.items[i], nil
}

// Remove deletes the earliest-inserted item with the given id and returns it.
func (r *MemoryRepo) Remove(id int) (item.Item, error) {
	i := r.indexOf(id)
	if i < 0 {
		return item.Item{}, ErrNotFound
	}
	removed := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	return removed, nil
}

// ListByKind yields items of one kind in catalog order. The catalog is read
// each time the sequence is ranged over.
func (r *MemoryRepo) ListByKind(kind item.Kind) iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		for _, it := range r.items {
			if it.Kind != kind {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

func (r *MemoryRepo) All() iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		for _, it := range r.items {
			if !yield(it) {
				return
			}
		}
	}
}

func (r *MemoryRepo) Len() int {
	return len(r.items)
}

func (r *MemoryRepo) indexOf(id int) int {
	return slices.IndexFunc(r.items, func(it item.Item) bool { return it.ID == id })
}
