package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/api/handler"
	"github.com/sureshkirannz/EmployeeKPI/internal/api/handler/router"
	"github.com/sureshkirannz/EmployeeKPI/internal/config"
	"github.com/sureshkirannz/EmployeeKPI/internal/scheduler"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/authenticating"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/crm"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/reporting"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	targetService tracking.TargetService,
	activityService tracking.ActivityService,
	loanService tracking.LoanService,
	progressor progressing.Progressor,
	reporter reporting.Reporter,
	relationshipService crm.RelationshipService,
	coachingService crm.CoachingService,
	snapshotSyncService *scheduler.ProgressSnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotSyncService: snapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Employees(authenticator)...),
		router.WithRoutes(handler.Targets(targetService)...),
		router.WithRoutes(handler.Activities(activityService)...),
		router.WithRoutes(handler.Loans(loanService)...),
		router.WithRoutes(handler.Progress(progressor)...),
		router.WithRoutes(handler.Reports(reporter)...),
		router.WithRoutes(handler.Realtors(relationshipService)...),
		router.WithRoutes(handler.Coaching(coachingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped with error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down successfully")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
