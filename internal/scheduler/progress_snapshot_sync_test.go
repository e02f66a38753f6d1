package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	progressingmocks "github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing/mocks"
	"go.uber.org/mock/gomock"
)

func TestProgressSnapshotSyncService_processSnapshots(t *testing.T) {
	snapshotDate := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	employees := []*domain.User{
		{ID: "emp1", EmployeeName: "Alice Walker"},
		{ID: "emp2", EmployeeName: "Bob Stone"},
		{ID: "emp3", EmployeeName: "Carol Reyes"},
	}

	tests := []struct {
		name          string
		setup         func(progressor *progressingmocks.MockProgressor, snapshotRepo *mocks.MockProgressSnapshotRepository)
		expectedSaved int
	}{
		{
			name: "saves a snapshot per employee with a target",
			setup: func(progressor *progressingmocks.MockProgressor, snapshotRepo *mocks.MockProgressSnapshotRepository) {
				progressor.EXPECT().
					GetKpiProgress("emp1", snapshotDate).
					Return(&domain.ProgressReport{VolumeProgress: 110, UnitsProgress: 50, LockedProgress: 40}, nil)
				progressor.EXPECT().
					GetKpiProgress("emp2", snapshotDate).
					Return(&domain.ProgressReport{VolumeProgress: 65, UnitsProgress: 70, LockedProgress: 80}, nil)
				// emp3 has no target configured
				progressor.EXPECT().
					GetKpiProgress("emp3", snapshotDate).
					Return(nil, nil)

				snapshotRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(snapshot *domain.ProgressSnapshot) (*domain.ProgressSnapshot, error) {
						assert.Equal(t, "emp1", snapshot.EmployeeID)
						assert.Equal(t, snapshotDate, snapshot.SnapshotDate)
						assert.Equal(t, 110, snapshot.VolumeProgress)
						assert.Equal(t, domain.StatusExceeded, snapshot.Status)
						return snapshot, nil
					})
				snapshotRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(snapshot *domain.ProgressSnapshot) (*domain.ProgressSnapshot, error) {
						assert.Equal(t, "emp2", snapshot.EmployeeID)
						assert.Equal(t, domain.StatusAtRisk, snapshot.Status)
						return snapshot, nil
					})
			},
			expectedSaved: 2,
		},
		{
			name: "keeps going past per-employee failures",
			setup: func(progressor *progressingmocks.MockProgressor, snapshotRepo *mocks.MockProgressSnapshotRepository) {
				progressor.EXPECT().
					GetKpiProgress("emp1", snapshotDate).
					Return(nil, assert.AnError)
				progressor.EXPECT().
					GetKpiProgress("emp2", snapshotDate).
					Return(&domain.ProgressReport{VolumeProgress: 90}, nil)
				progressor.EXPECT().
					GetKpiProgress("emp3", snapshotDate).
					Return(&domain.ProgressReport{VolumeProgress: 30}, nil)

				snapshotRepo.EXPECT().
					Upsert(gomock.Any()).
					Return(nil, assert.AnError)
				snapshotRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(snapshot *domain.ProgressSnapshot) (*domain.ProgressSnapshot, error) {
						assert.Equal(t, "emp3", snapshot.EmployeeID)
						assert.Equal(t, domain.StatusBehind, snapshot.Status)
						return snapshot, nil
					})
			},
			expectedSaved: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProgressor := progressingmocks.NewMockProgressor(ctrl)
			mockSnapshotRepo := mocks.NewMockProgressSnapshotRepository(ctrl)

			service := &ProgressSnapshotSyncService{
				userRepo:     mocks.NewMockUserRepository(ctrl),
				snapshotRepo: mockSnapshotRepo,
				progressor:   mockProgressor,
			}

			tt.setup(mockProgressor, mockSnapshotRepo)

			saved := service.processSnapshots(employees, snapshotDate)
			assert.Equal(t, tt.expectedSaved, saved)
		})
	}
}
