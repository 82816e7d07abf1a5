// Package attendance records, per course, whether each student was present, absent or late.
package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

var (
	Statuses = []string{StatusPresent, StatusAbsent, StatusLate}

	markStatusTag  = "markstatus"
	markStatusText = "{0} must be one of present, absent or late"
)

// InitValidators registers the attendance validation tags and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(markStatusTag, markStatusValidation)
	core.RegisterCustomTranslation(validate, translator, markStatusTag, markStatusText)
}

func markStatusValidation(fl validator.FieldLevel) bool {
	return ValidStatus(fl.Field().String())
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Mark is the attendance of one student in one course.
type Mark struct {
	ID      int    `json:"id" yaml:"id"`
	Course  string `json:"course" yaml:"course"`
	Student string `json:"student" yaml:"student"`
	Avatar  string `json:"avatar" yaml:"avatar"`
	Status  string `json:"status" yaml:"status"`
}

func (m Mark) RecordID() int { return m.ID }

// Schema: the query matches the student's name.
var Schema = catalog.Schema[Mark]{
	Search: []catalog.Accessor[Mark]{
		func(m Mark) string { return m.Student },
	},
	Fields: map[string]catalog.Accessor[Mark]{
		"course": func(m Mark) string { return m.Course },
		"status": func(m Mark) string { return m.Status },
	},
}

type QueryFilter struct {
	Course string `query:"course"`
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("course", qf.Course).
		Where("status", qf.Status)
	c.Clean()
	return c
}

type Stats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Rate    int `json:"rate"` // present or late, over total
}

func ComputeStats(marks []Mark) Stats {
	byStatus := catalog.CountBy(marks, Schema.Fields["status"], Statuses...)
	return Stats{
		Total:   len(marks),
		Present: byStatus[StatusPresent],
		Absent:  byStatus[StatusAbsent],
		Late:    byStatus[StatusLate],
		Rate:    catalog.Percent(byStatus[StatusPresent]+byStatus[StatusLate], len(marks)),
	}
}

type (
	Repository interface {
		catalog.Source[Mark]
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		courses  []string
	}
)

// NewService returns a service over repo for the given courses, the first of which is selected by default.
func NewService(repo Repository, validate *validator.Validate, courses []string) *Service {
	return &Service{repo: repo, validate: validate, courses: courses}
}

func (svc *Service) Courses() []string {
	courses := make([]string, len(svc.courses))
	copy(courses, svc.courses)
	return courses
}

// Course resolves the requested course: "" selects the first one.
func (svc *Service) Course(course string) (string, error) {
	course = core.CleanString(course)
	if course == "" {
		if len(svc.courses) == 0 {
			return "", catalog.ErrNotFound
		}
		return svc.courses[0], nil
	}
	for _, c := range svc.courses {
		if c == course {
			return c, nil
		}
	}
	return "", catalog.ErrNotFound
}

// Roll is the attendance sheet of a course.
type Roll struct {
	Course  string   `json:"course"`
	Courses []string `json:"courses"`
	Marks   []Mark   `json:"items"`
	Stats   Stats    `json:"stats"` // over the whole course, whatever is searched
}

// Roll returns the sheet of the course filter.Course (the first course when empty).
func (svc *Service) Roll(filter QueryFilter) (Roll, error) {
	course, err := svc.Course(filter.Course)
	if err != nil {
		return Roll{}, errors.Wrapf(err, "course %q", filter.Course)
	}
	filter.Course = course
	all := Schema.Filter(svc.repo.All(), catalog.Criteria{}.Where("course", course))
	return Roll{
		Course:  course,
		Courses: svc.Courses(),
		Marks:   Schema.Filter(all, filter.Criteria()),
		Stats:   ComputeStats(all),
	}, nil
}

// MarkUpdate is a change of the status of one mark.
type MarkUpdate struct {
	Status string `json:"status" validate:"required,markstatus"`
}

// Mark sets the attendance status of the mark with the given id.
func (svc *Service) Mark(id int, mu MarkUpdate) (Mark, error) {
	mu.Status = core.CleanString(mu.Status, true /* lower */)
	if err := svc.validate.Struct(mu); err != nil {
		return Mark{}, err
	}
	return svc.repo.Update(id, func(m *Mark) error {
		m.Status = mu.Status
		return nil
	})
}
