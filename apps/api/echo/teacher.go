package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/task"
)

type teacherApi struct {
	tasks      *task.Service
	attendance *attendance.Service
	pagination core.PaginationConfig
}

func registerTeacherAPI(g *echo.Group, opts *Options) {
	api := teacherApi{
		tasks:      opts.TaskSvc,
		attendance: opts.AttendanceSvc,
		pagination: opts.Pagination,
	}

	g.GET("/tasks", api.queryTasks)
	g.POST("/tasks", api.createTask)
	g.GET("/tasks/:id", api.retrieveTask)

	g.GET("/attendance", api.roll)
	g.PUT("/attendance/:id", api.mark)

	cg := curriculumApi{svc: opts.TeacherCurriculumSvc, pagination: opts.Pagination}
	g.GET("/curriculums", cg.query)
	g.GET("/curriculums/:id", cg.retrieve)
}

func (api *teacherApi) queryTasks(ctx echo.Context) error {
	var filter task.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to task.QueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(task.Details(api.tasks.Filter(filter)), p, api.tasks.Stats(), api.tasks.Options()))
}

func (api *teacherApi) createTask(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to task.NewTask")
	}
	t, err := api.tasks.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t.Detail())
}

func (api *teacherApi) retrieveTask(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	t, err := api.tasks.GetByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting task %d", id)
	}
	return ctx.JSON(http.StatusOK, t.Detail())
}

func (api *teacherApi) roll(ctx echo.Context) error {
	var filter attendance.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to attendance.QueryFilter")
	}
	roll, err := api.attendance.Roll(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, roll)
}

func (api *teacherApi) mark(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var data attendance.MarkUpdate
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to attendance.MarkUpdate")
	}
	m, err := api.attendance.Mark(id, data)
	if err != nil {
		return errors.Wrapf(err, "marking %d", id)
	}
	return ctx.JSON(http.StatusOK, m)
}
