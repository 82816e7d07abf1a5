// Package task holds the homework a teacher assigns to a course (Task) and the
// assignments as one student sees them (StudentTask).
package task

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Statuses of a Task
const (
	StatusActive    = "active"
	StatusGrading   = "grading"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusActive, StatusGrading, StatusCompleted}

type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Course      string `json:"course" yaml:"course"`
	DueDate     string `json:"due_date" yaml:"due_date"` // YYYY-MM-DD
	Created     string `json:"created" yaml:"created"`   // YYYY-MM-DD
	Submissions int    `json:"submissions" yaml:"submissions"`
	Total       int    `json:"total" yaml:"total"`
	Status      string `json:"status" yaml:"status"`
}

func (t Task) RecordID() int { return t.ID }

// SubmissionRate is the percentage of the course that handed the task in.
func (t Task) SubmissionRate() int {
	return catalog.Percent(t.Submissions, t.Total)
}

type Detail struct {
	Task
	SubmissionRate int `json:"submission_rate"`
}

func (t Task) Detail() Detail {
	return Detail{Task: t, SubmissionRate: t.SubmissionRate()}
}

func Details(tasks []Task) []Detail {
	details := make([]Detail, 0, len(tasks))
	for _, t := range tasks {
		details = append(details, t.Detail())
	}
	return details
}

// NewTask contains information needed to assign a new Task to a course.
type NewTask struct {
	Title   string `json:"title" validate:"required"`
	Course  string `json:"course" validate:"required"`
	DueDate string `json:"due_date" validate:"required,isodate"`
	Total   int    `json:"total" validate:"gte=0"` // students in the course
	Created string `json:"-"`
}

func (nt NewTask) clean() NewTask {
	nt.Title = core.CleanString(nt.Title)
	nt.Course = core.CleanString(nt.Course)
	nt.DueDate = core.CleanString(nt.DueDate)
	return nt
}

func (nt NewTask) Validate(validate *validator.Validate) error {
	return validate.Struct(nt.clean())
}

// Commit builds the active Task the draft becomes, with no submissions yet.
func (nt NewTask) Commit(id int) Task {
	nt = nt.clean()
	return Task{
		ID:      id,
		Title:   nt.Title,
		Course:  nt.Course,
		DueDate: nt.DueDate,
		Created: nt.Created,
		Total:   nt.Total,
		Status:  StatusActive,
	}
}

// Schema: the query matches the title.
var Schema = catalog.Schema[Task]{
	Search: []catalog.Accessor[Task]{
		func(t Task) string { return t.Title },
	},
	Fields: map[string]catalog.Accessor[Task]{
		"status": func(t Task) string { return t.Status },
		"course": func(t Task) string { return t.Course },
	},
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Course string `query:"course"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("status", qf.Status).
		Where("course", qf.Course)
	c.Clean()
	return c
}

type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Grading   int `json:"grading"`
	Completed int `json:"completed"`
}

func ComputeStats(tasks []Task) Stats {
	byStatus := catalog.CountBy(tasks, Schema.Fields["status"], Statuses...)
	return Stats{
		Total:     len(tasks),
		Active:    byStatus[StatusActive],
		Grading:   byStatus[StatusGrading],
		Completed: byStatus[StatusCompleted],
	}
}

type Options struct {
	Statuses []string `json:"statuses"`
	Courses  []string `json:"courses"`
}

func ComputeOptions(tasks []Task) Options {
	return Options{Statuses: Statuses, Courses: catalog.Distinct(tasks, Schema.Fields["course"])}
}

// Statuses of a StudentTask
const (
	StudentStatusPending    = "pending"
	StudentStatusInProgress = "in_progress"
	StudentStatusSubmitted  = "submitted"
	StudentStatusGraded     = "graded"
)

var (
	StudentStatuses = []string{StudentStatusPending, StudentStatusInProgress, StudentStatusSubmitted, StudentStatusGraded}

	studentStatusLabels = map[string]string{
		StudentStatusPending:    "Pendiente",
		StudentStatusInProgress: "En Progreso",
		StudentStatusSubmitted:  "Entregada",
		StudentStatusGraded:     "Calificada",
	}
)

type StudentTask struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Subject     string `json:"subject" yaml:"subject"`
	Teacher     string `json:"teacher" yaml:"teacher"`
	DueDate     string `json:"due_date" yaml:"due_date"` // YYYY-MM-DD
	Status      string `json:"status" yaml:"status"`
	Progress    int    `json:"progress" yaml:"progress"`
	Grade       *int   `json:"grade,omitempty" yaml:"grade"` // percentage, once graded
	Description string `json:"description" yaml:"description"`
}

func (st StudentTask) RecordID() int { return st.ID }

// HandedIn reports whether the task was submitted, graded or not.
func (st StudentTask) HandedIn() bool {
	return st.Status == StudentStatusSubmitted || st.Status == StudentStatusGraded
}

// IsOverdue reports whether the task is due before the day of `now` and was not handed in.
// A due date that cannot be parsed is never overdue.
func (st StudentTask) IsOverdue(now time.Time) bool {
	if st.HandedIn() {
		return false
	}
	due, err := time.ParseInLocation(core.DateLayout, st.DueDate, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	return due.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
}

type StudentDetail struct {
	StudentTask
	StatusLabel string `json:"status_label"`
	Overdue     bool   `json:"overdue"`
}

func StudentDetails(tasks []StudentTask, now time.Time) []StudentDetail {
	details := make([]StudentDetail, 0, len(tasks))
	for _, st := range tasks {
		details = append(details, StudentDetail{
			StudentTask: st,
			StatusLabel: studentStatusLabels[st.Status],
			Overdue:     st.IsOverdue(now),
		})
	}
	return details
}

var StudentSchema = catalog.Schema[StudentTask]{
	Search: []catalog.Accessor[StudentTask]{
		func(st StudentTask) string { return st.Title },
		func(st StudentTask) string { return st.Subject },
	},
	Fields: map[string]catalog.Accessor[StudentTask]{
		"status":  func(st StudentTask) string { return st.Status },
		"subject": func(st StudentTask) string { return st.Subject },
	},
}

type StudentQueryFilter struct {
	Search  string `query:"search"`
	Status  string `query:"status"`
	Subject string `query:"subject"`
}

func (qf StudentQueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("status", qf.Status).
		Where("subject", qf.Subject)
	c.Clean()
	return c
}

type StudentStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Submitted  int `json:"submitted"`
	Graded     int `json:"graded"`
	Overdue    int `json:"overdue"`
}

func ComputeStudentStats(tasks []StudentTask, now time.Time) StudentStats {
	byStatus := catalog.CountBy(tasks, StudentSchema.Fields["status"], StudentStatuses...)
	return StudentStats{
		Pending:    byStatus[StudentStatusPending],
		InProgress: byStatus[StudentStatusInProgress],
		Submitted:  byStatus[StudentStatusSubmitted],
		Graded:     byStatus[StudentStatusGraded],
		Overdue:    catalog.CountIf(tasks, func(st StudentTask) bool { return st.IsOverdue(now) }),
	}
}
