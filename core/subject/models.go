package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Defaults of the creation form
const (
	DefaultHoursPerWeek = 4
	DefaultCredits      = 3
	DefaultColor        = "bg-blue-500"
)

// PreviewSize is how many courses a subject card lists before "+N".
const PreviewSize = 3

var Statuses = []string{StatusActive, StatusInactive}

type Teacher struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

type Subject struct {
	ID           int       `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Code         string    `json:"code" yaml:"code"`
	Description  string    `json:"description" yaml:"description"`
	HoursPerWeek int       `json:"hours_per_week" yaml:"hours_per_week"`
	Credits      int       `json:"credits" yaml:"credits"`
	Teachers     []Teacher `json:"teachers" yaml:"teachers"`
	Courses      []string  `json:"courses" yaml:"courses"`
	Color        string    `json:"color" yaml:"color"`
	Status       string    `json:"status" yaml:"status"`
}

func (s Subject) RecordID() int { return s.ID }

// CoursePreview returns the first n courses and how many are left out.
func (s Subject) CoursePreview(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(s.Courses) <= n {
		return s.Courses, 0
	}
	return s.Courses[:n], len(s.Courses) - n
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Description  string `json:"description"`
	HoursPerWeek int    `json:"hours_per_week" validate:"gte=0"`
	Credits      int    `json:"credits" validate:"gte=0"`
}

func (ns NewSubject) clean() NewSubject {
	ns.Name = core.CleanString(ns.Name)
	ns.Code = core.CleanString(ns.Code)
	ns.Description = core.CleanString(ns.Description)
	return ns
}

func (ns NewSubject) Validate(validate *validator.Validate) error {
	return validate.Struct(ns.clean())
}

// Commit builds the active Subject the draft becomes; it has no teachers or courses yet.
func (ns NewSubject) Commit(id int) Subject {
	ns = ns.clean()
	hours, credits := ns.HoursPerWeek, ns.Credits
	if hours == 0 {
		hours = DefaultHoursPerWeek
	}
	if credits == 0 {
		credits = DefaultCredits
	}
	return Subject{
		ID:           id,
		Name:         ns.Name,
		Code:         ns.Code,
		Description:  ns.Description,
		HoursPerWeek: hours,
		Credits:      credits,
		Teachers:     []Teacher{},
		Courses:      []string{},
		Color:        DefaultColor,
		Status:       StatusActive,
	}
}

// Schema: the query matches name or code.
var Schema = catalog.Schema[Subject]{
	Search: []catalog.Accessor[Subject]{
		func(s Subject) string { return s.Name },
		func(s Subject) string { return s.Code },
	},
	Fields: map[string]catalog.Accessor[Subject]{
		"status": func(s Subject) string { return s.Status },
	},
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.Where("status", qf.Status)
	c.Clean()
	return c
}

type Stats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	WeeklyHours int `json:"weekly_hours"`
	Teachers    int `json:"teachers"` // distinct, by id
}

func ComputeStats(subjects []Subject) Stats {
	teachers := make(map[int]struct{})
	for _, s := range subjects {
		for _, t := range s.Teachers {
			teachers[t.ID] = struct{}{}
		}
	}
	return Stats{
		Total:       len(subjects),
		Active:      catalog.CountIf(subjects, func(s Subject) bool { return s.Status == StatusActive }),
		WeeklyHours: catalog.SumInt(subjects, func(s Subject) int { return s.HoursPerWeek }),
		Teachers:    len(teachers),
	}
}

type Options struct {
	Statuses []string `json:"statuses"`
}
