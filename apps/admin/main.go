package main

import (
	"fmt"
	"log"
	"os"

	"github.com/colegiosanjose/portal/core"
	"github.com/colegiosanjose/portal/services/logger"
	"github.com/colegiosanjose/portal/storage/database/inmem"
	"github.com/colegiosanjose/portal/storage/seed"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	zl, err := logsvc.NewZap(conf)
	if err != nil {
		log.Fatalf("setting up zap: %v", err)
	}
	logger := logsvc.NewRollbarLogger(zl.Named("admin"), conf)

	// set up DB
	s, err := seed.Load(conf.SeedFile)
	errAndDie(logger, err)
	db, err := inmemdb.Open(s)
	errAndDie(logger, err)

	// start CLI
	cli := newCommandLine(db, s.Attendance.Courses, os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("admin: %v", err), err)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func errAndDie(logger *logsvc.RollbarLogger, err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
