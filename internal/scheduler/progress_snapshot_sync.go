package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/config"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
)

// ProgressSnapshotSyncConfig holds the scheduling knobs for the nightly
// progress snapshot job.
type ProgressSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ProgressSnapshotSyncService captures each employee's progress percentages
// once a day so the admin overview can chart movement over time.
type ProgressSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ProgressSnapshotSyncConfig
	userRepo            repository.UserRepository
	snapshotRepo        repository.ProgressSnapshotRepository
	progressor          progressing.Progressor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewProgressSnapshotSyncService(
	userRepo repository.UserRepository,
	snapshotRepo repository.ProgressSnapshotRepository,
	progressor progressing.Progressor,
	appConfig *config.Config,
) *ProgressSnapshotSyncService {
	syncConfig := ProgressSnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Progress snapshot scheduler configuration loaded")

	return &ProgressSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		progressor:   progressor,
		syncRunning:  false,
	}
}

// Start schedules the job and stops the scheduler when the context ends.
func (s *ProgressSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Progress snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting progress snapshot scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncProgressSnapshots()
	})
	if err != nil {
		return fmt.Errorf("scheduling progress snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping progress snapshot scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync kicks off one snapshot pass outside the schedule, used
// by the admin cron endpoint.
func (s *ProgressSnapshotSyncService) TriggerManualSync() {
	go s.syncProgressSnapshots()
}

// GetStatus reports whether a sync is running and when the last one started
// and finished.
func (s *ProgressSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *ProgressSnapshotSyncService) syncProgressSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Progress snapshot sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting progress snapshot sync for all employees")

	employees, err := s.userRepo.ListEmployees()
	if err != nil {
		logrus.WithError(err).Error("Failed to list employees for progress snapshot sync")
		return
	}

	if len(employees) == 0 {
		logrus.Info("No employees found for progress snapshot sync")
		return
	}

	snapshotDate := time.Date(startTime.Year(), startTime.Month(), startTime.Day(), 0, 0, 0, 0, time.UTC)
	saved := s.processSnapshots(employees, snapshotDate)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"employees": len(employees),
		"saved":     saved,
	}).Info("Progress snapshot sync finished")

	s.lastSyncCompletedAt = time.Now()
}

func (s *ProgressSnapshotSyncService) processSnapshots(employees []*domain.User, snapshotDate time.Time) int {
	var saved int

	for _, employee := range employees {
		report, err := s.progressor.GetKpiProgress(employee.ID, snapshotDate)
		if err != nil {
			logrus.WithError(err).WithField("employee_id", employee.ID).
				Error("Failed to compute progress for snapshot")
			continue
		}

		// No target configured: nothing to snapshot
		if report == nil {
			continue
		}

		snapshot := &domain.ProgressSnapshot{
			EmployeeID:     employee.ID,
			SnapshotDate:   snapshotDate,
			VolumeProgress: report.VolumeProgress,
			UnitsProgress:  report.UnitsProgress,
			LockedProgress: report.LockedProgress,
			Status:         progressing.StatusOfWithExceeded(report.VolumeProgress),
		}

		if _, err := s.snapshotRepo.Upsert(snapshot); err != nil {
			logrus.WithError(err).WithField("employee_id", employee.ID).
				Error("Failed to save progress snapshot")
			continue
		}

		saved++
	}

	return saved
}
