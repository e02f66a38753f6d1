package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetTeamOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockActivityRepo := mocks.NewMockWeeklyActivityRepository(ctrl)
	mockLoanRepo := mocks.NewMockLoanRepository(ctrl)
	mockTargetRepo := mocks.NewMockKpiTargetRepository(ctrl)

	service := &Service{
		userRepo:     mockUserRepo,
		activityRepo: mockActivityRepo,
		loanRepo:     mockLoanRepo,
		targetRepo:   mockTargetRepo,
	}

	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	closedDate := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	employees := []*domain.User{
		{ID: "emp1", Username: "alice", EmployeeName: "Alice Walker", Active: true},
		{ID: "emp2", Username: "bob", EmployeeName: "Bob Stone", Active: true},
	}

	mockUserRepo.EXPECT().ListEmployees().Return(employees, nil)

	// emp1 has a target and a closed loan covering the whole goal
	mockTargetRepo.EXPECT().
		GetByEmployeeAndYear("emp1", 2025).
		Return(&domain.KpiTarget{
			EmployeeID:           "emp1",
			Year:                 2025,
			AnnualVolumeGoal:     decimal.NewFromInt(1000000),
			RequiredUnitsMonthly: 2,
			LockedLoansMonthly:   2,
		}, nil)
	mockActivityRepo.EXPECT().ListByEmployee("emp1").Return(nil, nil)
	mockLoanRepo.EXPECT().
		ListByEmployeeAndYear("emp1", 2025).
		Return([]*domain.Loan{
			{LoanAmount: decimal.NewFromInt(1200000), ClosedDate: &closedDate},
		}, nil)

	// emp2 has no target configured
	mockTargetRepo.EXPECT().
		GetByEmployeeAndYear("emp2", 2025).
		Return(nil, nil)

	overview, err := service.GetTeamOverview(asOf)
	require.NoError(t, err)
	require.NotNil(t, overview)
	require.Len(t, overview.Employees, 2)

	first := overview.Employees[0]
	assert.Equal(t, "emp1", first.EmployeeID)
	assert.True(t, first.HasTarget)
	assert.Equal(t, 120, first.VolumeProgress)
	assert.Equal(t, domain.StatusExceeded, first.Status)
	assert.Equal(t, 1, first.UnitsThisMonth)

	second := overview.Employees[1]
	assert.Equal(t, "emp2", second.EmployeeID)
	assert.False(t, second.HasTarget)
	assert.Equal(t, domain.StatusBehind, second.Status)
	assert.Equal(t, 0, second.VolumeProgress)

	assert.True(t, overview.TeamVolumeCompleted.Equal(decimal.NewFromInt(1200000)))
	assert.Equal(t, 1, overview.TeamUnitsThisMonth)
	assert.Equal(t, 1, overview.ExceededCount)
	assert.Equal(t, 0, overview.OnTrackCount)
	assert.Equal(t, 0, overview.BehindCount)
}

func TestService_GetTeamOverview_RepoErrorSkipsEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockActivityRepo := mocks.NewMockWeeklyActivityRepository(ctrl)
	mockLoanRepo := mocks.NewMockLoanRepository(ctrl)
	mockTargetRepo := mocks.NewMockKpiTargetRepository(ctrl)

	service := &Service{
		userRepo:     mockUserRepo,
		activityRepo: mockActivityRepo,
		loanRepo:     mockLoanRepo,
		targetRepo:   mockTargetRepo,
	}

	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	mockUserRepo.EXPECT().ListEmployees().Return([]*domain.User{
		{ID: "emp1", Username: "alice", EmployeeName: "Alice Walker", Active: true},
		{ID: "emp2", Username: "bob", EmployeeName: "Bob Stone", Active: true},
	}, nil)

	mockTargetRepo.EXPECT().
		GetByEmployeeAndYear("emp1", 2025).
		Return(nil, assert.AnError)
	mockTargetRepo.EXPECT().
		GetByEmployeeAndYear("emp2", 2025).
		Return(nil, nil)

	overview, err := service.GetTeamOverview(asOf)
	require.NoError(t, err)
	require.Len(t, overview.Employees, 1)
	assert.Equal(t, "emp2", overview.Employees[0].EmployeeID)
}

func TestService_GetProgressHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockProgressSnapshotRepository(ctrl)

	service := &Service{
		snapshotRepo: mockSnapshotRepo,
	}

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	mockSnapshotRepo.EXPECT().
		ListByEmployeeRange("emp1", from, to).
		Return([]*domain.ProgressSnapshot{
			{EmployeeID: "emp1", SnapshotDate: from.AddDate(0, 0, 10), VolumeProgress: 12, Status: domain.StatusBehind},
			{EmployeeID: "emp1", SnapshotDate: from.AddDate(0, 2, 0), VolumeProgress: 85, Status: domain.StatusOnTrack},
		}, nil)

	history, err := service.GetProgressHistory("emp1", from, to)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 12, history[0].VolumeProgress)
	assert.Equal(t, domain.StatusOnTrack, history[1].Status)
}

func TestService_GetProgressHistory_EmptyRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockProgressSnapshotRepository(ctrl)

	service := &Service{
		snapshotRepo: mockSnapshotRepo,
	}

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	mockSnapshotRepo.EXPECT().
		ListByEmployeeRange("emp1", from, to).
		Return(nil, nil)

	history, err := service.GetProgressHistory("emp1", from, to)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
