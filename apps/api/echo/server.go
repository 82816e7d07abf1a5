package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
)

type (
	Options struct {
		AppName        string
		Address        string
		Debug          bool
		TestMode       bool
		DisableReqLogs bool
		Pagination     core.PaginationConfig
		Logger         core.Logger
		Translator     ut.Translator

		UserSvc              *user.Service
		ExamSvc              *exam.Service
		SubjectSvc           *subject.Service
		GradeSvc             *grade.Service
		CurriculumSvc        *curriculum.Service
		TeacherCurriculumSvc *curriculum.Service
		TaskSvc              *task.Service
		StudentTaskSvc       *task.StudentService
		AttendanceSvc        *attendance.Service
		DashboardSvc         *dashboard.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator)
	s.app.Debug = s.opts.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	registerNavAPI(v1)
	registerAdminAPI(v1.Group("/admin"), s.opts)
	registerTeacherAPI(v1.Group("/teacher"), s.opts)
	registerStudentAPI(v1.Group("/student"), s.opts)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.opts.AppName+" API!")
}
