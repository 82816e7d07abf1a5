package exam

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Statuses
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusGrading    = "grading"
	StatusCompleted  = "completed"
)

const DefaultTotalPoints = 20

var (
	Statuses = []string{StatusScheduled, StatusInProgress, StatusGrading, StatusCompleted}

	statusLabels = map[string]string{
		StatusScheduled:  "Programado",
		StatusInProgress: "En Curso",
		StatusGrading:    "Calificando",
		StatusCompleted:  "Completado",
	}
)

func StatusLabel(status string) string { return statusLabels[status] }

// Band classifies an average grade on the 20-point scale.
type Band string

// Bands
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

func BandOf(grade float64) Band {
	switch {
	case grade >= 16:
		return BandExcellent
	case grade >= 14:
		return BandGood
	case grade >= 11:
		return BandFair
	default:
		return BandPoor
	}
}

type Exam struct {
	ID             int      `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Subject        string   `json:"subject" yaml:"subject"`
	Course         string   `json:"course" yaml:"course"`
	Teacher        string   `json:"teacher" yaml:"teacher"`
	Date           string   `json:"date" yaml:"date"` // YYYY-MM-DD
	Duration       string   `json:"duration" yaml:"duration"`
	TotalPoints    int      `json:"total_points" yaml:"total_points"`
	Status         string   `json:"status" yaml:"status"`
	StudentsTotal  int      `json:"students_total" yaml:"students_total"`
	StudentsGraded int      `json:"students_graded" yaml:"students_graded"`
	AverageGrade   *float64 `json:"average_grade" yaml:"average_grade"` // nil until graded
}

func (e Exam) RecordID() int { return e.ID }

// Progress is the percentage of students graded.
func (e Exam) Progress() int {
	return catalog.Percent(e.StudentsGraded, e.StudentsTotal)
}

// Band returns the band of the average grade, if there is one.
func (e Exam) Band() (Band, bool) {
	if e.AverageGrade == nil {
		return "", false
	}
	return BandOf(*e.AverageGrade), true
}

// Detail is an Exam along with the figures derived from it.
type Detail struct {
	Exam
	StatusLabel string `json:"status_label"`
	Progress    int    `json:"progress"`
	Band        Band   `json:"band,omitempty"`
}

func (e Exam) Detail() Detail {
	band, _ := e.Band()
	return Detail{Exam: e, StatusLabel: StatusLabel(e.Status), Progress: e.Progress(), Band: band}
}

// NewExam contains information needed to schedule a new Exam.
type NewExam struct {
	Title         string `json:"title" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Course        string `json:"course" validate:"required"`
	Teacher       string `json:"teacher"`
	Date          string `json:"date" validate:"required,isodate"`
	Duration      string `json:"duration"`
	TotalPoints   int    `json:"total_points" validate:"gte=0"`
	StudentsTotal int    `json:"students_total" validate:"gte=0"`
}

func (ne NewExam) clean() NewExam {
	ne.Title = core.CleanString(ne.Title)
	ne.Subject = core.CleanString(ne.Subject)
	ne.Course = core.CleanString(ne.Course)
	ne.Teacher = core.CleanString(ne.Teacher)
	ne.Date = core.CleanString(ne.Date)
	ne.Duration = core.CleanString(ne.Duration)
	return ne
}

func (ne NewExam) Validate(validate *validator.Validate) error {
	return validate.Struct(ne.clean())
}

// Commit builds the scheduled Exam the draft becomes. Nobody is graded yet.
func (ne NewExam) Commit(id int) Exam {
	ne = ne.clean()
	points := ne.TotalPoints
	if points == 0 {
		points = DefaultTotalPoints
	}
	return Exam{
		ID:            id,
		Title:         ne.Title,
		Subject:       ne.Subject,
		Course:        ne.Course,
		Teacher:       ne.Teacher,
		Date:          ne.Date,
		Duration:      ne.Duration,
		TotalPoints:   points,
		Status:        StatusScheduled,
		StudentsTotal: ne.StudentsTotal,
	}
}

// Schema: the query matches title, subject, course or teacher.
var Schema = catalog.Schema[Exam]{
	Search: []catalog.Accessor[Exam]{
		func(e Exam) string { return e.Title },
		func(e Exam) string { return e.Subject },
		func(e Exam) string { return e.Course },
		func(e Exam) string { return e.Teacher },
	},
	Fields: map[string]catalog.Accessor[Exam]{
		"subject": func(e Exam) string { return e.Subject },
		"course":  func(e Exam) string { return e.Course },
		"status":  func(e Exam) string { return e.Status },
	},
}

type QueryFilter struct {
	Search  string `query:"search"`
	Subject string `query:"subject"`
	Course  string `query:"course"`
	Status  string `query:"status"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("subject", qf.Subject).
		Where("course", qf.Course).
		Where("status", qf.Status)
	c.Clean()
	return c
}

type Stats struct {
	Total        int     `json:"total"`
	Scheduled    int     `json:"scheduled"`
	InProgress   int     `json:"in_progress"`
	Grading      int     `json:"grading"`
	Completed    int     `json:"completed"`
	AverageGrade float64 `json:"average_grade"` // over the exams that have one
}

func ComputeStats(exams []Exam) Stats {
	byStatus := catalog.CountBy(exams, Schema.Fields["status"], Statuses...)
	avg := catalog.Average(exams, func(e Exam) (float64, bool) {
		if e.AverageGrade == nil {
			return 0, false
		}
		return *e.AverageGrade, true
	})
	return Stats{
		Total:        len(exams),
		Scheduled:    byStatus[StatusScheduled],
		InProgress:   byStatus[StatusInProgress],
		Grading:      byStatus[StatusGrading],
		Completed:    byStatus[StatusCompleted],
		AverageGrade: catalog.Round1(avg),
	}
}

// Options are the values the subject, course and status filters offer.
type Options struct {
	Subjects []string `json:"subjects"`
	Courses  []string `json:"courses"`
	Statuses []string `json:"statuses"`
}

func ComputeOptions(exams []Exam) Options {
	return Options{
		Subjects: catalog.Distinct(exams, Schema.Fields["subject"]),
		Courses:  catalog.Distinct(exams, Schema.Fields["course"]),
		Statuses: Statuses,
	}
}
