package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/colegiosanjose/portal/apps/api/echo"
	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/dashboard"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
	"github.com/colegiosanjose/portal/services/email"
	"github.com/colegiosanjose/portal/services/logger"
	"github.com/colegiosanjose/portal/storage/database/inmem"
	"github.com/colegiosanjose/portal/storage/seed"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// set up loggers
	zl, err := logsvc.NewZap(conf)
	if err != nil {
		log.Fatalf("setting up zap: %v", err)
	}
	logger := logsvc.NewRollbarLogger(zl.Named("api"), conf)
	defer func() { _ = logger.Sync() }()

	// set up DB
	s, err := seed.Load(conf.SeedFile)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading seed: %v", err), err)
	}
	db, err := inmemdb.Open(s)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate, translator := core.NewValidator()
	user.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)

	// set up services
	mailSvc := emailsvc.New(conf, logger, emailsvc.NewConsoleService(conf, os.Stdout))
	studentTaskSvc := task.NewStudentService(db.StudentTasks)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(&echoapi.Options{
		AppName:        conf.AppName,
		Address:        conf.Server.Address,
		Debug:          conf.Debug,
		TestMode:       conf.TestMode,
		DisableReqLogs: conf.Server.DisableReqLogs,
		Pagination:     conf.Pagination,
		Logger:         logger,
		Translator:     translator,

		UserSvc:              user.NewService(db.Users, validate, mailSvc, logger),
		ExamSvc:              exam.NewService(db.Exams, validate),
		SubjectSvc:           subject.NewService(db.Subjects, validate),
		GradeSvc:             grade.NewService(db.Grades, validate),
		CurriculumSvc:        curriculum.NewService(db.Curriculums, validate),
		TeacherCurriculumSvc: curriculum.NewService(db.TeacherCurriculums, validate),
		TaskSvc:              task.NewService(db.Tasks, validate),
		StudentTaskSvc:       studentTaskSvc,
		AttendanceSvc:        attendance.NewService(db.Attendance, validate, s.Attendance.Courses),
		DashboardSvc:         dashboard.NewService(s.Admin, s.Student, studentTaskSvc),
	})

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", conf.Server.Address))
		serverErrors <- server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-serverErrors:
		if err != http.ErrServerClosed {
			logger.Fatal(fmt.Sprintf("server error: %v", err), err)
		}

	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}
