// Package curriculum models the study plan ("malla curricular") of a subject for a grade:
// units, each made of topics that are taught over a number of hours.
package curriculum

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

type Topic struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Hours         int    `json:"hours" yaml:"hours"`
	Completed     bool   `json:"completed" yaml:"completed"`
	ScheduledDate string `json:"scheduled_date,omitempty" yaml:"scheduled_date"` // YYYY-MM-DD
}

type Unit struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Order       int     `json:"order" yaml:"order"`
	Topics      []Topic `json:"topics" yaml:"topics"`
}

func (u Unit) CompletedTopics() int {
	return catalog.CountIf(u.Topics, func(t Topic) bool { return t.Completed })
}

// Progress is the percentage of the unit's topics completed.
func (u Unit) Progress() int {
	return catalog.Percent(u.CompletedTopics(), len(u.Topics))
}

type Curriculum struct {
	ID             int    `json:"id" yaml:"id"`
	Subject        string `json:"subject" yaml:"subject"`
	Grade          string `json:"grade" yaml:"grade"`
	Year           string `json:"year" yaml:"year"`
	TotalHours     int    `json:"total_hours" yaml:"total_hours"`
	CompletedHours int    `json:"completed_hours" yaml:"completed_hours"`
	Units          []Unit `json:"units" yaml:"units"`
}

func (c Curriculum) RecordID() int { return c.ID }

func (c Curriculum) Topics() int {
	return catalog.SumInt(c.Units, func(u Unit) int { return len(u.Topics) })
}

func (c Curriculum) CompletedTopics() int {
	return catalog.SumInt(c.Units, Unit.CompletedTopics)
}

// HourProgress is the percentage of the planned hours already taught.
func (c Curriculum) HourProgress() int {
	return catalog.Percent(c.CompletedHours, c.TotalHours)
}

// TopicProgress is the percentage of topics completed.
func (c Curriculum) TopicProgress() int {
	return catalog.Percent(c.CompletedTopics(), c.Topics())
}

type (
	UnitDetail struct {
		Unit
		Progress int `json:"progress"`
	}

	// Detail is a Curriculum along with the figures derived from it.
	Detail struct {
		Curriculum
		Units         []UnitDetail `json:"units"`
		Topics        int          `json:"topics"`
		Completed     int          `json:"completed_topics"`
		HourProgress  int          `json:"hour_progress"`
		TopicProgress int          `json:"topic_progress"`
	}
)

func (c Curriculum) Detail() Detail {
	units := make([]UnitDetail, 0, len(c.Units))
	for _, u := range c.Units {
		units = append(units, UnitDetail{Unit: u, Progress: u.Progress()})
	}
	return Detail{
		Curriculum:    c,
		Units:         units,
		Topics:        c.Topics(),
		Completed:     c.CompletedTopics(),
		HourProgress:  c.HourProgress(),
		TopicProgress: c.TopicProgress(),
	}
}

func Details(curriculums []Curriculum) []Detail {
	details := make([]Detail, 0, len(curriculums))
	for _, c := range curriculums {
		details = append(details, c.Detail())
	}
	return details
}

// NewTopic is one topic of a NewUnit.
type NewTopic struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Hours         int    `json:"hours" validate:"required,gt=0"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,isodate"`
}

// NewUnit is one unit of a NewCurriculum; units are ordered as given.
type NewUnit struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Topics      []NewTopic `json:"topics" validate:"dive"`
}

// NewCurriculum contains information needed to open the plan of a subject, with its units if known.
type NewCurriculum struct {
	Subject    string    `json:"subject" validate:"required"`
	Grade      string    `json:"grade" validate:"required"`
	Year       string    `json:"year" validate:"required,len=4,numeric"`
	TotalHours int       `json:"total_hours" validate:"required,gt=0"`
	Units      []NewUnit `json:"units" validate:"dive"`
}

func (nc NewCurriculum) clean() NewCurriculum {
	nc.Subject = core.CleanString(nc.Subject)
	nc.Grade = core.CleanString(nc.Grade)
	nc.Year = core.CleanString(nc.Year)
	units := make([]NewUnit, len(nc.Units))
	for i, u := range nc.Units {
		topics := make([]NewTopic, len(u.Topics))
		for j, t := range u.Topics {
			topics[j] = NewTopic{
				Name:          core.CleanString(t.Name),
				Description:   core.CleanString(t.Description),
				Hours:         t.Hours,
				ScheduledDate: core.CleanString(t.ScheduledDate),
			}
		}
		units[i] = NewUnit{
			Name:        core.CleanString(u.Name),
			Description: core.CleanString(u.Description),
			Topics:      topics,
		}
	}
	nc.Units = units
	return nc
}

func (nc NewCurriculum) Validate(validate *validator.Validate) error {
	return validate.Struct(nc.clean())
}

// Commit numbers units from 1 in the given order; topic ids run on across units.
func (nc NewCurriculum) Commit(id int) Curriculum {
	nc = nc.clean()
	units := make([]Unit, 0, len(nc.Units))
	topicID := 0
	for i, nu := range nc.Units {
		topics := make([]Topic, 0, len(nu.Topics))
		for _, nt := range nu.Topics {
			topicID++
			topics = append(topics, Topic{
				ID:            topicID,
				Name:          nt.Name,
				Description:   nt.Description,
				Hours:         nt.Hours,
				ScheduledDate: nt.ScheduledDate,
			})
		}
		units = append(units, Unit{
			ID:          i + 1,
			Name:        nu.Name,
			Description: nu.Description,
			Order:       i + 1,
			Topics:      topics,
		})
	}
	return Curriculum{
		ID:         id,
		Subject:    nc.Subject,
		Grade:      nc.Grade,
		Year:       nc.Year,
		TotalHours: nc.TotalHours,
		Units:      units,
	}
}

// Schema: the query matches subject or grade.
var Schema = catalog.Schema[Curriculum]{
	Search: []catalog.Accessor[Curriculum]{
		func(c Curriculum) string { return c.Subject },
		func(c Curriculum) string { return c.Grade },
	},
	Fields: map[string]catalog.Accessor[Curriculum]{
		"subject": func(c Curriculum) string { return c.Subject },
		"year":    func(c Curriculum) string { return c.Year },
	},
}

type QueryFilter struct {
	Search  string `query:"search"`
	Subject string `query:"subject"`
	Year    string `query:"year"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("subject", qf.Subject).
		Where("year", qf.Year)
	c.Clean()
	return c
}

type Stats struct {
	Curriculums     int `json:"curriculums"`
	Units           int `json:"units"`
	Topics          int `json:"topics"`
	PlannedHours    int `json:"planned_hours"`
	CompletedTopics int `json:"completed_topics"`
	Progress        int `json:"progress"` // completed topics over all topics
}

func ComputeStats(curriculums []Curriculum) Stats {
	s := Stats{
		Curriculums:     len(curriculums),
		Units:           catalog.SumInt(curriculums, func(c Curriculum) int { return len(c.Units) }),
		Topics:          catalog.SumInt(curriculums, Curriculum.Topics),
		PlannedHours:    catalog.SumInt(curriculums, func(c Curriculum) int { return c.TotalHours }),
		CompletedTopics: catalog.SumInt(curriculums, Curriculum.CompletedTopics),
	}
	s.Progress = catalog.Percent(s.CompletedTopics, s.Topics)
	return s
}

type Options struct {
	Subjects []string `json:"subjects"`
	Years    []string `json:"years"`
}

func ComputeOptions(curriculums []Curriculum) Options {
	return Options{
		Subjects: catalog.Distinct(curriculums, Schema.Fields["subject"]),
		Years:    catalog.Distinct(curriculums, Schema.Fields["year"]),
	}
}
