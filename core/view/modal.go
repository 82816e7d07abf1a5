// Package view holds the transient state of a screen: what is filtered, what is selected
// and whether a creation form is open.
package view

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrNotCreating = errors.New("no creation form is open")

type State int

const (
	Closed State = iota
	Viewing
	Creating
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Creating:
		return "creating"
	default:
		return "closed"
	}
}

// Draft is a not yet committed record of type T, filled in field by field by a creation form.
type Draft[T any] interface {
	// Validate reports the required fields that are missing or invalid.
	Validate(validate *validator.Validate) error
	// Commit builds the record the draft becomes once it is given an id.
	Commit(id int) T
}

// Modal is the detail/creation dialog of a screen.
// At most one of Viewing and Creating is active; opening one replaces the other.
type Modal[T any, D Draft[T]] struct {
	state    State
	selected T
	draft    D
}

func (m *Modal[T, D]) State() State { return m.state }

// View opens the detail dialog for r.
func (m *Modal[T, D]) View(r T) {
	m.reset()
	m.state = Viewing
	m.selected = r
}

// Create opens the creation form, starting from d.
func (m *Modal[T, D]) Create(d D) {
	m.reset()
	m.state = Creating
	m.draft = d
}

// Close closes whichever dialog is open and discards the draft.
func (m *Modal[T, D]) Close() {
	m.reset()
}

func (m *Modal[T, D]) reset() {
	var (
		zeroT T
		zeroD D
	)
	m.state = Closed
	m.selected = zeroT
	m.draft = zeroD
}

// Selected returns the record being viewed.
func (m *Modal[T, D]) Selected() (T, bool) {
	return m.selected, m.state == Viewing
}

// Draft returns the draft being edited, or nil when the creation form is not open.
// Edits through the pointer change the draft in place.
func (m *Modal[T, D]) Draft() *D {
	if m.state != Creating {
		return nil
	}
	return &m.draft
}

// CanConfirm reports whether the draft has every required field; the confirm action is disabled otherwise.
func (m *Modal[T, D]) CanConfirm(validate *validator.Validate) bool {
	return m.state == Creating && m.draft.Validate(validate) == nil
}

// Confirm validates the draft and hands it to commit. On success the dialog closes and the
// committed record is returned. A draft missing required fields leaves the form open and
// untouched; so does a failing commit.
func (m *Modal[T, D]) Confirm(validate *validator.Validate, commit func(D) (T, error)) (T, error) {
	var zero T
	if m.state != Creating {
		return zero, ErrNotCreating
	}
	if err := m.draft.Validate(validate); err != nil {
		return zero, err
	}
	r, err := commit(m.draft)
	if err != nil {
		return zero, errors.Wrap(err, "committing draft")
	}
	m.reset()
	return r, nil
}
