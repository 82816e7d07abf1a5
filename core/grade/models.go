package grade

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Levels
const (
	LevelPrimary   = "Primaria"
	LevelSecondary = "Secundaria"

	DefaultColor = "bg-blue-500"
)

var ErrDuplicateSection = errors.New("section names must be unique")

type Section struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	StudentsCount int    `json:"students_count" yaml:"students_count"`
	CoursesCount  int    `json:"courses_count" yaml:"courses_count"`
}

type Grade struct {
	ID       int       `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Level    string    `json:"level" yaml:"level"`
	Color    string    `json:"color" yaml:"color"`
	Sections []Section `json:"sections" yaml:"sections"`
}

func (g Grade) RecordID() int { return g.ID }

func (g Grade) Students() int {
	return catalog.SumInt(g.Sections, func(s Section) int { return s.StudentsCount })
}

// NewSection is one section of a NewGrade; only its name is asked for.
type NewSection struct {
	Name string `json:"name" validate:"required,alphanum_"`
}

// NewGrade contains information needed to create a new Grade and its sections.
type NewGrade struct {
	Name     string       `json:"name" validate:"required"`
	Level    string       `json:"level" validate:"required"`
	Sections []NewSection `json:"sections" validate:"min=1,dive"`
}

// NewGradeDraft is what the creation form starts from: a primary grade with a single section A.
func NewGradeDraft() NewGrade {
	return NewGrade{Level: LevelPrimary, Sections: []NewSection{{Name: "A"}}}
}

// AddSection appends a section named after the first letter not taken yet: A, B, C... then AA, AB...
func (ng *NewGrade) AddSection() {
	taken := make(map[string]bool, len(ng.Sections))
	for _, s := range ng.Sections {
		taken[strings.ToUpper(core.CleanString(s.Name))] = true
	}
	for n := 0; ; n++ {
		if name := sectionLetters(n); !taken[name] {
			ng.Sections = append(ng.Sections, NewSection{Name: name})
			return
		}
	}
}

// sectionLetters names the n-th section the way spreadsheet columns are named (0: A, 25: Z, 26: AA).
func sectionLetters(n int) string {
	name := ""
	for n >= 0 {
		name = string(rune('A'+n%26)) + name
		n = n/26 - 1
	}
	return name
}

// RemoveSection removes the section at i; the last remaining section cannot be removed.
func (ng *NewGrade) RemoveSection(i int) bool {
	if len(ng.Sections) <= 1 || i < 0 || i >= len(ng.Sections) {
		return false
	}
	sections := make([]NewSection, 0, len(ng.Sections)-1)
	sections = append(sections, ng.Sections[:i]...)
	ng.Sections = append(sections, ng.Sections[i+1:]...)
	return true
}

func (ng *NewGrade) RenameSection(i int, name string) bool {
	if i < 0 || i >= len(ng.Sections) {
		return false
	}
	ng.Sections[i] = NewSection{Name: name}
	return true
}

func (ng NewGrade) clean() NewGrade {
	ng.Name = core.CleanString(ng.Name)
	ng.Level = core.CleanString(ng.Level)
	sections := make([]NewSection, len(ng.Sections))
	for i, s := range ng.Sections {
		sections[i] = NewSection{Name: core.CleanString(s.Name)}
	}
	ng.Sections = sections
	return ng
}

func (ng NewGrade) Validate(validate *validator.Validate) error {
	ng = ng.clean()
	if err := validate.Struct(ng); err != nil {
		return err
	}
	seen := make(map[string]bool, len(ng.Sections))
	for _, s := range ng.Sections {
		key := strings.ToLower(s.Name)
		if seen[key] {
			return core.NewValidationError(nil, core.FieldError{Field: "sections", Error: ErrDuplicateSection.Error()})
		}
		seen[key] = true
	}
	return nil
}

// Commit builds the Grade the draft becomes; section ids are the grade id followed by the
// lower-cased section name ("7a").
func (ng NewGrade) Commit(id int) Grade {
	ng = ng.clean()
	sections := make([]Section, 0, len(ng.Sections))
	for _, s := range ng.Sections {
		sections = append(sections, Section{
			ID:   fmt.Sprintf("%d%s", id, strings.ToLower(s.Name)),
			Name: s.Name,
		})
	}
	return Grade{
		ID:       id,
		Name:     ng.Name,
		Level:    ng.Level,
		Color:    DefaultColor,
		Sections: sections,
	}
}

// Schema: the query matches the name.
var Schema = catalog.Schema[Grade]{
	Search: []catalog.Accessor[Grade]{
		func(g Grade) string { return g.Name },
	},
	Fields: map[string]catalog.Accessor[Grade]{
		"level": func(g Grade) string { return g.Level },
	},
}

type QueryFilter struct {
	Search string `query:"search"`
	Level  string `query:"level"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.Where("level", qf.Level)
	c.Clean()
	return c
}

type Stats struct {
	Grades   int `json:"grades"`
	Sections int `json:"sections"`
	Students int `json:"students"`
}

func ComputeStats(grades []Grade) Stats {
	return Stats{
		Grades:   len(grades),
		Sections: catalog.SumInt(grades, func(g Grade) int { return len(g.Sections) }),
		Students: catalog.SumInt(grades, Grade.Students),
	}
}

type Options struct {
	Levels []string `json:"levels"`
}

func ComputeOptions(grades []Grade) Options {
	return Options{Levels: catalog.Distinct(grades, Schema.Fields["level"])}
}
