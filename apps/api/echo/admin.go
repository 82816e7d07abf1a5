package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/user"
)

type adminApi struct {
	users       *user.Service
	exams       *exam.Service
	subjects    *subject.Service
	grades      *grade.Service
	curriculums *curriculum.Service
	dashboard   *dashboard.Service
	pagination  core.PaginationConfig
}

func registerAdminAPI(g *echo.Group, opts *Options) {
	api := adminApi{
		users:       opts.UserSvc,
		exams:       opts.ExamSvc,
		subjects:    opts.SubjectSvc,
		grades:      opts.GradeSvc,
		curriculums: opts.CurriculumSvc,
		dashboard:   opts.DashboardSvc,
		pagination:  opts.Pagination,
	}

	g.GET("/dashboard", api.adminDashboard)

	g.GET("/users", api.queryUsers)
	g.POST("/users", api.createUser)
	g.GET("/users/:id", api.retrieveUser)

	g.GET("/exams", api.queryExams)
	g.POST("/exams", api.createExam)
	g.GET("/exams/:id", api.retrieveExam)

	g.GET("/subjects", api.querySubjects)
	g.POST("/subjects", api.createSubject)
	g.GET("/subjects/:id", api.retrieveSubject)

	g.GET("/grades", api.queryGrades)
	g.POST("/grades", api.createGrade)
	g.GET("/grades/:id", api.retrieveGrade)

	cg := curriculumApi{svc: opts.CurriculumSvc, pagination: opts.Pagination}
	g.GET("/curriculums", cg.query)
	g.POST("/curriculums", cg.create)
	g.GET("/curriculums/:id", cg.retrieve)
}

func (api *adminApi) adminDashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.dashboard.Admin())
}

// Users

func (api *adminApi) queryUsers(ctx echo.Context) error {
	var filter user.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to user.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(api.users.Filter(filter), p, api.users.Stats(), api.users.Options()))
}

func (api *adminApi) createUser(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to user.NewUser")
	}
	usr, err := api.users.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *adminApi) retrieveUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	usr, err := api.users.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting user %d", id)
	}
	return ctx.JSON(http.StatusOK, usr)
}

// Exams

func (api *adminApi) queryExams(ctx echo.Context) error {
	var filter exam.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to exam.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(exam.Details(api.exams.Filter(filter)), p, api.exams.Stats(), api.exams.Options()))
}

func (api *adminApi) createExam(ctx echo.Context) error {
	var data exam.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to exam.NewExam")
	}
	e, err := api.exams.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, e.Detail())
}

func (api *adminApi) retrieveExam(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	e, err := api.exams.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting exam %d", id)
	}
	return ctx.JSON(http.StatusOK, e.Detail())
}

// Subjects

func (api *adminApi) querySubjects(ctx echo.Context) error {
	var filter subject.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to subject.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(api.subjects.Filter(filter), p, api.subjects.Stats(), api.subjects.Options()))
}

func (api *adminApi) createSubject(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to subject.NewSubject")
	}
	s, err := api.subjects.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *adminApi) retrieveSubject(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	s, err := api.subjects.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting subject %d", id)
	}
	return ctx.JSON(http.StatusOK, s)
}

// Grades

func (api *adminApi) queryGrades(ctx echo.Context) error {
	var filter grade.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to grade.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(api.grades.Filter(filter), p, api.grades.Stats(), api.grades.Options()))
}

func (api *adminApi) createGrade(ctx echo.Context) error {
	data := grade.NewGradeDraft()
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to grade.NewGrade")
	}
	g, err := api.grades.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, g)
}

func (api *adminApi) retrieveGrade(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	g, err := api.grades.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting grade %d", id)
	}
	return ctx.JSON(http.StatusOK, g)
}
