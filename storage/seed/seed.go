// Package seed holds the data the portal starts with.
package seed

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
)

//go:embed seed.yaml
var defaultSeed []byte

type (
	Attendance struct {
		Courses []string          `yaml:"courses"`
		Marks   []attendance.Mark `yaml:"marks"`
	}

	Seed struct {
		Users              []user.User             `yaml:"users"`
		Exams              []exam.Exam             `yaml:"exams"`
		Subjects           []subject.Subject       `yaml:"subjects"`
		Grades             []grade.Grade           `yaml:"grades"`
		Curriculums        []curriculum.Curriculum `yaml:"curriculums"`
		TeacherCurriculums []curriculum.Curriculum `yaml:"teacher_curriculums"`
		Tasks              []task.Task             `yaml:"tasks"`
		StudentTasks       []task.StudentTask      `yaml:"student_tasks"`
		Attendance         Attendance              `yaml:"attendance"`
		Admin              dashboard.AdminData     `yaml:"admin_dashboard"`
		Student            dashboard.StudentData   `yaml:"student_dashboard"`
	}
)

// Default returns the embedded seed.
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// Load reads the seed at path, or the embedded one when path is empty.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading seed file")
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Seed
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding seed")
	}
	return &s, nil
}
