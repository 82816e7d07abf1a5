package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/catalog"
)

// Roles
const (
	RoleStudent = "Estudiante"
	RoleTeacher = "Profesor"
	RoleParent  = "Padre"
	RoleStaff   = "Administrativo"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var (
	Roles    = []string{RoleStudent, RoleTeacher, RoleParent, RoleStaff}
	Statuses = []string{StatusActive, StatusInactive}
)

type User struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Role       string   `json:"role" yaml:"role"`
	Grade      string   `json:"grade,omitempty" yaml:"grade"`           // students
	Department string   `json:"department,omitempty" yaml:"department"` // teachers & staff
	Children   string   `json:"children,omitempty" yaml:"children"`     // parents
	Status     string   `json:"status" yaml:"status"`
	Avatar     string   `json:"avatar" yaml:"avatar"`
	Sections   []string `json:"sections,omitempty" yaml:"sections"`
}

func (u User) RecordID() int { return u.ID }

func (u User) IsActive() bool { return u.Status == StatusActive }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Role       string   `json:"role" validate:"required,userrole"`
	Grade      string   `json:"grade"`
	Department string   `json:"department"`
	Children   string   `json:"children"`
	Sections   []string `json:"sections" validate:"omitempty,dive,required"`
}

func (nu NewUser) clean() NewUser {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Role = core.CleanString(nu.Role)
	nu.Grade = core.CleanString(nu.Grade)
	nu.Department = core.CleanString(nu.Department)
	nu.Children = core.CleanString(nu.Children)
	return nu
}

func (nu NewUser) Validate(validate *validator.Validate) error {
	return validate.Struct(nu.clean())
}

// Commit builds the active User the draft becomes; its avatar shows the name's initials.
func (nu NewUser) Commit(id int) User {
	nu = nu.clean()
	return User{
		ID:         id,
		Name:       nu.Name,
		Email:      nu.Email,
		Role:       nu.Role,
		Grade:      nu.Grade,
		Department: nu.Department,
		Children:   nu.Children,
		Status:     StatusActive,
		Avatar:     core.Initials(nu.Name),
		Sections:   nu.Sections,
	}
}

// Schema: the query matches name or email.
var Schema = catalog.Schema[User]{
	Search: []catalog.Accessor[User]{
		func(u User) string { return u.Name },
		func(u User) string { return u.Email },
	},
	Fields: map[string]catalog.Accessor[User]{
		"role":   func(u User) string { return u.Role },
		"status": func(u User) string { return u.Status },
	},
}

type QueryFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
	Status string `query:"status"`
}

func (qf QueryFilter) Criteria() catalog.Criteria {
	c := catalog.Criteria{Query: qf.Search}.
		Where("role", qf.Role).
		Where("status", qf.Status)
	c.Clean()
	return c
}

type Stats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByRole   map[string]int `json:"by_role"`
}

func ComputeStats(users []User) Stats {
	byStatus := catalog.CountBy(users, Schema.Fields["status"], Statuses...)
	return Stats{
		Total:    len(users),
		Active:   byStatus[StatusActive],
		Inactive: byStatus[StatusInactive],
		ByRole:   catalog.CountBy(users, Schema.Fields["role"], Roles...),
	}
}

type Options struct {
	Roles    []string `json:"roles"`
	Statuses []string `json:"statuses"`
}
