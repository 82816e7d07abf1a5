package inmemdb

import (
	"sync"

	"github.com/colegiosanjose/portal/core/catalog"
)

// Table guards a catalog with a read/write lock so that handlers may share it.
type Table[T catalog.Record] struct {
	sync.RWMutex
	rows *catalog.Catalog[T]
}

var _ catalog.Source[catalog.Record] = (*Table[catalog.Record])(nil) // interface compliance check

func newTable[T catalog.Record](rows []T) (*Table[T], error) {
	c, err := catalog.New(rows...)
	if err != nil {
		return nil, err
	}
	return &Table[T]{rows: c}, nil
}

func (t *Table[T]) Len() int {
	t.RLock()
	defer t.RUnlock()
	return t.rows.Len()
}

func (t *Table[T]) All() []T {
	t.RLock()
	defer t.RUnlock()
	return t.rows.All()
}

func (t *Table[T]) Get(id int) (T, error) {
	t.RLock()
	defer t.RUnlock()
	return t.rows.Get(id)
}

func (t *Table[T]) Insert(build func(id int) T) (T, error) {
	t.Lock()
	defer t.Unlock()
	return t.rows.Insert(build)
}

func (t *Table[T]) Update(id int, fn func(*T) error) (T, error) {
	t.Lock()
	defer t.Unlock()
	return t.rows.Update(id, fn)
}
