package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegiosanjose/portal/core/catalog"
	"github.com/colegiosanjose/portal/core/task"
)

func TestGender_Split(t *testing.T) {
	split := Gender{Male: 687, Female: 597, Total: 1284}.Split()
	assert.Equal(t, 54, split.MalePercent)
	assert.Equal(t, 46, split.FemalePercent)
	assert.Equal(t, 1284, split.Total)

	assert.Equal(t, GenderSplit{}, Gender{}.Split())
}

func TestGeneralAverage(t *testing.T) {
	grades := []SubjectGrade{
		{Subject: "Matemáticas", Grade: 95},
		{Subject: "Español", Grade: 88},
		{Subject: "Ciencias", Grade: 92},
		{Subject: "Historia", Grade: 90},
		{Subject: "Inglés", Grade: 94},
	}
	assert.Equal(t, 91.8, GeneralAverage(grades))
	assert.Equal(t, 0.0, GeneralAverage(nil))
}

func TestClass_StatusAt(t *testing.T) {
	at := func(hour, min int) time.Time { return time.Date(2024, time.December, 13, hour, min, 0, 0, time.UTC) }
	science := Class{Time: "11:00", Minutes: 90}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "before", now: at(9, 30), want: ClassUpcoming},
		{name: "at start", now: at(11, 0), want: ClassCurrent},
		{name: "during", now: at(12, 29), want: ClassCurrent},
		{name: "at end", now: at(12, 30), want: ClassCompleted},
		{name: "after", now: at(18, 0), want: ClassCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, science.StatusAt(tt.now))
		})
	}
	assert.Equal(t, ClassUpcoming, Class{Time: "noon"}.StatusAt(at(13, 0)))
}

func TestService(t *testing.T) {
	tasks := task.NewStudentService(catalog.MustNew(
		task.StudentTask{ID: 1, Title: "Ejercicios de Álgebra Cap. 5", Subject: "Matemáticas", DueDate: "2024-12-13", Status: task.StudentStatusInProgress, Progress: 60},
		task.StudentTask{ID: 2, Title: "Ensayo sobre la Revolución", Subject: "Historia", DueDate: "2024-12-14", Status: task.StudentStatusPending, Progress: 30},
		task.StudentTask{ID: 3, Title: "Reporte de Laboratorio", Subject: "Ciencias", DueDate: "2024-12-12", Status: task.StudentStatusPending},
		task.StudentTask{ID: 4, Title: "Lectura Comprensiva", Subject: "Español", DueDate: "2024-12-10", Status: task.StudentStatusSubmitted, Progress: 100},
	))
	svc := NewService(
		AdminData{Gender: Gender{Male: 687, Female: 597, Total: 1284}, Events: []Event{{ID: 1, Title: "Reunión de Padres"}}},
		StudentData{
			Grades:     []SubjectGrade{{Grade: 95}, {Grade: 88}, {Grade: 92}, {Grade: 90}, {Grade: 94}},
			Classes:    []Class{{Time: "08:00", Minutes: 90}, {Time: "09:30", Minutes: 90}, {Time: "11:00", Minutes: 90}, {Time: "14:00", Minutes: 90}},
			Attendance: 98,
		},
		tasks,
	)
	svc.now = func() time.Time { return time.Date(2024, time.December, 13, 11, 15, 0, 0, time.UTC) }

	admin := svc.Admin()
	assert.Equal(t, 54, admin.Gender.MalePercent)
	assert.Len(t, admin.Events, 1)

	student := svc.Student()
	assert.Equal(t, 91.8, student.Average)
	assert.Equal(t, 98, student.Attendance)
	assert.Equal(t, 3, student.Pending)

	statuses := make([]string, 0, len(student.Classes))
	for _, c := range student.Classes {
		statuses = append(statuses, c.Status)
	}
	assert.Equal(t, []string{ClassCompleted, ClassCompleted, ClassCurrent, ClassUpcoming}, statuses)

	require.Len(t, student.Assignments, 3)
	assert.True(t, student.Assignments[0].DueToday)
	assert.False(t, student.Assignments[1].DueToday)
	assert.True(t, student.Assignments[2].Overdue)
}
