// Package catalog holds ordered, in-memory collections of records of one entity kind,
// along with the filtering, aggregation and pagination every list screen is built on.
package catalog

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("a record with this id already exists")
)

// Record is an identified item of a Catalog.
type Record interface {
	RecordID() int
}

// Source is anything list screens can read records from and commit drafts to.
// *Catalog implements it; so do the storage tables that guard a Catalog.
type Source[T Record] interface {
	All() []T
	Get(id int) (T, error)
	Insert(build func(id int) T) (T, error)
	Update(id int, fn func(*T) error) (T, error)
}

// Catalog is an ordered sequence of records; insertion order is the display order
// and ids are unique. It is not safe for concurrent use.
type Catalog[T Record] struct {
	items []T
	index map[int]int // id -> position
}

var _ Source[Record] = (*Catalog[Record])(nil) // interface compliance check

func New[T Record](items ...T) (*Catalog[T], error) {
	c := &Catalog[T]{
		items: make([]T, 0, len(items)),
		index: make(map[int]int, len(items)),
	}
	for _, item := range items {
		if err := c.Append(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is New for static seed data; it panics on duplicate ids.
func MustNew[T Record](items ...T) *Catalog[T] {
	c, err := New(items...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog[T]) Len() int { return len(c.items) }

// All returns a copy of the records in insertion order.
func (c *Catalog[T]) All() []T {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog[T]) Get(id int) (T, error) {
	if pos, ok := c.index[id]; ok {
		return c.items[pos], nil
	}
	var zero T
	return zero, ErrNotFound
}

func (c *Catalog[T]) Append(r T) error {
	id := r.RecordID()
	if _, ok := c.index[id]; ok {
		return errors.Wrap(ErrDuplicateID, fmt.Sprintf("id %d", id))
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, r)
	return nil
}

// NextID returns the id the next inserted record gets: one more than the highest id in use.
func (c *Catalog[T]) NextID() int {
	var max int
	for id := range c.index {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Insert builds a record with the next free id and appends it.
func (c *Catalog[T]) Insert(build func(id int) T) (T, error) {
	r := build(c.NextID())
	if err := c.Append(r); err != nil {
		var zero T
		return zero, err
	}
	return r, nil
}

// Update applies fn to the record with the given id in place. The id itself cannot change.
func (c *Catalog[T]) Update(id int, fn func(*T) error) (T, error) {
	var zero T
	pos, ok := c.index[id]
	if !ok {
		return zero, ErrNotFound
	}
	r := c.items[pos]
	if err := fn(&r); err != nil {
		return zero, err
	}
	if r.RecordID() != id {
		return zero, errors.Errorf("catalog: update changed id %d to %d", id, r.RecordID())
	}
	c.items[pos] = r
	return r, nil
}
