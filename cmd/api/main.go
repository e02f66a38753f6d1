package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/api"
	"github.com/sureshkirannz/EmployeeKPI/internal/config"
	"github.com/sureshkirannz/EmployeeKPI/internal/scheduler"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/authenticating"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/crm"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/reporting"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	kpiTargetRepo := repository.NewKpiTargetRepository(pgConn)
	salesTargetRepo := repository.NewSalesTargetRepository(pgConn)
	weeklyActivityRepo := repository.NewWeeklyActivityRepository(pgConn)
	dailyActivityRepo := repository.NewDailyActivityRepository(pgConn)
	loanRepo := repository.NewLoanRepository(pgConn)
	realtorPartnerRepo := repository.NewRealtorPartnerRepository(pgConn)
	pastClientRepo := repository.NewPastClientRepository(pgConn)
	topRealtorRepo := repository.NewTopRealtorRepository(pgConn)
	coachingNoteRepo := repository.NewCoachingNoteRepository(pgConn)
	snapshotRepo := repository.NewProgressSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	targetService := tracking.NewTargetService(kpiTargetRepo, salesTargetRepo)
	activityService := tracking.NewActivityService(weeklyActivityRepo, dailyActivityRepo)
	loanService := tracking.NewLoanService(loanRepo)
	relationshipService := crm.NewRelationshipService(realtorPartnerRepo, pastClientRepo, topRealtorRepo)
	coachingService := crm.NewCoachingService(coachingNoteRepo)
	progressor := progressing.NewService(weeklyActivityRepo, loanRepo, kpiTargetRepo)
	reporter := reporting.NewService(userRepo, weeklyActivityRepo, loanRepo, kpiTargetRepo, snapshotRepo)

	snapshotSyncService := scheduler.NewProgressSnapshotSyncService(
		userRepo,
		snapshotRepo,
		progressor,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start progress snapshot scheduler")
	} else {
		logrus.Info("Progress snapshot scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		targetService,
		activityService,
		loanService,
		progressor,
		reporter,
		relationshipService,
		coachingService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
