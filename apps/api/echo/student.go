package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/task"
)

type studentApi struct {
	tasks      *task.StudentService
	dashboard  *dashboard.Service
	pagination core.PaginationConfig
}

func registerStudentAPI(g *echo.Group, opts *Options) {
	api := studentApi{
		tasks:      opts.StudentTaskSvc,
		dashboard:  opts.DashboardSvc,
		pagination: opts.Pagination,
	}

	g.GET("/tasks", api.queryTasks)
	g.GET("/dashboard", api.studentDashboard)
}

func (api *studentApi) queryTasks(ctx echo.Context) error {
	var filter task.StudentQueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to task.StudentQueryFilter")
	}
	var p Pagination
	if err := p.Bind(ctx, api.pagination); err != nil {
		return err
	}
	tasks := api.tasks.Details(api.tasks.Filter(filter))
	return ctx.JSON(http.StatusOK, newListResponse(tasks, p, api.tasks.Stats(), nil))
}

func (api *studentApi) studentDashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.dashboard.Student())
}
