// Package inmemdb stores the portal's records in memory, seeded at startup.
package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
	"github.com/colegiosanjose/portal/storage/seed"
)

type DB struct {
	Users              *Table[user.User]
	Exams              *Table[exam.Exam]
	Subjects           *Table[subject.Subject]
	Grades             *Table[grade.Grade]
	Curriculums        *Table[curriculum.Curriculum]
	TeacherCurriculums *Table[curriculum.Curriculum]
	Tasks              *Table[task.Task]
	StudentTasks       *Table[task.StudentTask]
	Attendance         *Table[attendance.Mark]
}

// interface compliance checks
var (
	_ user.Repository        = (*Table[user.User])(nil)
	_ exam.Repository        = (*Table[exam.Exam])(nil)
	_ subject.Repository     = (*Table[subject.Subject])(nil)
	_ grade.Repository       = (*Table[grade.Grade])(nil)
	_ curriculum.Repository  = (*Table[curriculum.Curriculum])(nil)
	_ task.Repository        = (*Table[task.Task])(nil)
	_ task.StudentRepository = (*Table[task.StudentTask])(nil)
	_ attendance.Repository  = (*Table[attendance.Mark])(nil)
)

// Open loads s into a fresh database. A nil seed opens an empty one.
func Open(s *seed.Seed) (*DB, error) {
	if s == nil {
		s = &seed.Seed{}
	}
	db := new(DB)
	var err error
	open := func(name string, fn func() error) {
		if err != nil {
			return
		}
		if e := fn(); e != nil {
			err = errors.Wrapf(e, "opening %s table", name)
		}
	}

	open("users", func() (e error) { db.Users, e = newTable(s.Users); return })
	open("exams", func() (e error) { db.Exams, e = newTable(s.Exams); return })
	open("subjects", func() (e error) { db.Subjects, e = newTable(s.Subjects); return })
	open("grades", func() (e error) { db.Grades, e = newTable(s.Grades); return })
	open("curriculums", func() (e error) { db.Curriculums, e = newTable(s.Curriculums); return })
	open("teacher curriculums", func() (e error) { db.TeacherCurriculums, e = newTable(s.TeacherCurriculums); return })
	open("tasks", func() (e error) { db.Tasks, e = newTable(s.Tasks); return })
	open("student tasks", func() (e error) { db.StudentTasks, e = newTable(s.StudentTasks); return })
	open("attendance", func() (e error) { db.Attendance, e = newTable(s.Attendance.Marks); return })

	if err != nil {
		return nil, err
	}
	return db, nil
}
