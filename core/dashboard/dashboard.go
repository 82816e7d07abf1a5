// Package dashboard builds the landing pages of the admin and student portals.
package dashboard

import (
	"time"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/task"
)

// Trends
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Class statuses
const (
	ClassCompleted = "completed"
	ClassCurrent   = "current"
	ClassUpcoming  = "upcoming"
)

type (
	Card struct {
		Title  string `json:"title" yaml:"title"`
		Value  string `json:"value" yaml:"value"`
		Change string `json:"change,omitempty" yaml:"change"`
		Trend  string `json:"trend,omitempty" yaml:"trend"`
	}

	Activity struct {
		ID     int    `json:"id" yaml:"id"`
		User   string `json:"user" yaml:"user"`
		Action string `json:"action" yaml:"action"`
		Time   string `json:"time" yaml:"time"`
		Avatar string `json:"avatar" yaml:"avatar"`
	}

	Event struct {
		ID    int    `json:"id" yaml:"id"`
		Title string `json:"title" yaml:"title"`
		Date  string `json:"date" yaml:"date"`
		Time  string `json:"time" yaml:"time"`
		Type  string `json:"type" yaml:"type"`
	}

	Gender struct {
		Male   int `json:"male" yaml:"male"`
		Female int `json:"female" yaml:"female"`
		Total  int `json:"total" yaml:"total"`
	}

	// AdminData is what the admin dashboard is built from.
	AdminData struct {
		Cards      []Card     `yaml:"cards"`
		Gender     Gender     `yaml:"gender"`
		Activities []Activity `yaml:"activities"`
		Events     []Event    `yaml:"events"`
	}

	GenderSplit struct {
		Gender
		MalePercent   int `json:"male_percent"`
		FemalePercent int `json:"female_percent"`
	}

	Admin struct {
		Cards      []Card      `json:"cards"`
		Gender     GenderSplit `json:"gender"`
		Activities []Activity  `json:"activities"`
		Events     []Event     `json:"events"`
	}
)

// Split computes each gender's share of the total, rounded to whole percents.
func (g Gender) Split() GenderSplit {
	return GenderSplit{
		Gender:        g,
		MalePercent:   catalog.Percent(g.Male, g.Total),
		FemalePercent: catalog.Percent(g.Female, g.Total),
	}
}

type (
	SubjectGrade struct {
		Subject string `json:"subject" yaml:"subject"`
		Grade   int    `json:"grade" yaml:"grade"` // percentage
		Trend   string `json:"trend" yaml:"trend"`
	}

	Class struct {
		Time    string `json:"time" yaml:"time"` // HH:MM
		Minutes int    `json:"minutes" yaml:"minutes"`
		Subject string `json:"subject" yaml:"subject"`
		Teacher string `json:"teacher" yaml:"teacher"`
		Room    string `json:"room" yaml:"room"`
		Status  string `json:"status" yaml:"-"`
	}

	// StudentData is what the student dashboard is built from; tasks come from the task catalog.
	StudentData struct {
		Grades       []SubjectGrade `yaml:"grades"`
		Classes      []Class        `yaml:"classes"`
		Attendance   int            `yaml:"attendance"` // percentage, this month
		Achievements int            `yaml:"achievements"`
	}

	Assignment struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Subject  string `json:"subject"`
		DueDate  string `json:"due_date"`
		Progress int    `json:"progress"`
		DueToday bool   `json:"due_today"`
		Overdue  bool   `json:"overdue"`
	}

	Student struct {
		Average      float64        `json:"average"` // general average of the subject grades
		Pending      int            `json:"pending"`
		Attendance   int            `json:"attendance"`
		Achievements int            `json:"achievements"`
		Grades       []SubjectGrade `json:"grades"`
		Classes      []Class        `json:"classes"`
		Assignments  []Assignment   `json:"assignments"`
	}
)

// GeneralAverage is the mean of the subject grades, to one decimal.
func GeneralAverage(grades []SubjectGrade) float64 {
	return catalog.Round1(catalog.Average(grades, func(g SubjectGrade) (float64, bool) {
		return float64(g.Grade), true
	}))
}

// StatusAt tells whether the class is over, running or still to come at `now`.
// A class whose time cannot be parsed is upcoming.
func (c Class) StatusAt(now time.Time) string {
	start, err := time.ParseInLocation("15:04", c.Time, now.Location())
	if err != nil {
		return ClassUpcoming
	}
	y, m, d := now.Date()
	start = time.Date(y, m, d, start.Hour(), start.Minute(), 0, 0, now.Location())
	end := start.Add(time.Duration(c.Minutes) * time.Minute)
	switch {
	case now.Before(start):
		return ClassUpcoming
	case now.Before(end):
		return ClassCurrent
	default:
		return ClassCompleted
	}
}

type Service struct {
	admin   AdminData
	student StudentData
	tasks   *task.StudentService
	now     func() time.Time
}

func NewService(admin AdminData, student StudentData, tasks *task.StudentService) *Service {
	return &Service{admin: admin, student: student, tasks: tasks, now: time.Now}
}

func (svc *Service) Admin() Admin {
	return Admin{
		Cards:      svc.admin.Cards,
		Gender:     svc.admin.Gender.Split(),
		Activities: svc.admin.Activities,
		Events:     svc.admin.Events,
	}
}

func (svc *Service) Student() Student {
	now := svc.now()
	today := now.Format(core.DateLayout)

	classes := make([]Class, 0, len(svc.student.Classes))
	for _, c := range svc.student.Classes {
		c.Status = c.StatusAt(now)
		classes = append(classes, c)
	}

	pending := svc.tasks.Pending()
	assignments := make([]Assignment, 0, len(pending))
	for _, st := range pending {
		assignments = append(assignments, Assignment{
			ID:       st.ID,
			Title:    st.Title,
			Subject:  st.Subject,
			DueDate:  st.DueDate,
			Progress: st.Progress,
			DueToday: st.DueDate == today,
			Overdue:  st.IsOverdue(now),
		})
	}

	return Student{
		Average:      GeneralAverage(svc.student.Grades),
		Pending:      len(pending),
		Attendance:   svc.student.Attendance,
		Achievements: svc.student.Achievements,
		Grades:       svc.student.Grades,
		Classes:      classes,
		Assignments:  assignments,
	}
}
