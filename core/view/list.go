package view

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core/catalog"
)

// List is one record-list screen: the records, how they are filtered, the current
// criteria and the screen's dialog.
type List[T catalog.Record, D Draft[T]] struct {
	source   catalog.Source[T]
	schema   catalog.Schema[T]
	criteria catalog.Criteria
	modal    Modal[T, D]
}

func NewList[T catalog.Record, D Draft[T]](source catalog.Source[T], schema catalog.Schema[T]) *List[T, D] {
	return &List[T, D]{source: source, schema: schema}
}

func (l *List[T, D]) Criteria() catalog.Criteria { return l.criteria }

func (l *List[T, D]) SetCriteria(c catalog.Criteria) {
	c.Clean()
	l.criteria = c
}

func (l *List[T, D]) SetQuery(q string) {
	l.criteria.Query = q
	l.criteria.Clean()
}

// SetFilter sets (or replaces) the constraint on field.
func (l *List[T, D]) SetFilter(field, value string) {
	for i, cons := range l.criteria.Constraints {
		if cons.Field == field {
			l.criteria.Constraints[i].Value = value
			l.criteria.Clean()
			return
		}
	}
	l.criteria = l.criteria.Where(field, value)
	l.criteria.Clean()
}

// All returns every record, unfiltered; summary cards are computed over it.
func (l *List[T, D]) All() []T { return l.source.All() }

// Visible returns the records matching the current criteria.
func (l *List[T, D]) Visible() []T {
	return l.schema.Filter(l.source.All(), l.criteria)
}

func (l *List[T, D]) Page(page, size int) catalog.Page[T] {
	return catalog.Paginate(l.Visible(), page, size)
}

func (l *List[T, D]) Modal() *Modal[T, D] { return &l.modal }

// OpenView opens the detail dialog of the record with the given id.
func (l *List[T, D]) OpenView(id int) (T, error) {
	r, err := l.source.Get(id)
	if err != nil {
		return r, err
	}
	l.modal.View(r)
	return r, nil
}

func (l *List[T, D]) OpenCreate(d D) {
	l.modal.Create(d)
}

// Confirm commits the open draft to the records under the next free id.
func (l *List[T, D]) Confirm(validate *validator.Validate) (T, error) {
	return l.modal.Confirm(validate, func(d D) (T, error) {
		return l.source.Insert(d.Commit)
	})
}

// Reset clears the criteria and closes the dialog, as navigating away from the screen does.
func (l *List[T, D]) Reset() {
	l.criteria = catalog.Criteria{}
	l.modal.Close()
}
