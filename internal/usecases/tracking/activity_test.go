package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
)

func newActivityService(t *testing.T) (ActivityService, *mocks.MockWeeklyActivityRepository, *mocks.MockDailyActivityRepository) {
	ctrl := gomock.NewController(t)
	weeklyRepo := mocks.NewMockWeeklyActivityRepository(ctrl)
	dailyRepo := mocks.NewMockDailyActivityRepository(ctrl)
	return NewActivityService(weeklyRepo, dailyRepo), weeklyRepo, dailyRepo
}

func TestUpsertWeeklyDefaultsWeekEnd(t *testing.T) {
	service, weeklyRepo, _ := newActivityService(t)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	activity := &domain.WeeklyActivity{
		EmployeeID:    "emp-1",
		WeekStartDate: monday,
	}

	weeklyRepo.EXPECT().Upsert(activity).Return(activity, nil)

	saved, err := service.UpsertWeekly(activity)
	require.NoError(t, err)

	assert.Equal(t, monday.AddDate(0, 0, 6), saved.WeekEndDate)
	assert.Equal(t, "0", saved.HoursProspected)
}

func TestUpsertWeeklyRejectsEndBeforeStart(t *testing.T) {
	service, _, _ := newActivityService(t)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	_, err := service.UpsertWeekly(&domain.WeeklyActivity{
		EmployeeID:    "emp-1",
		WeekStartDate: monday,
		WeekEndDate:   monday.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidActivity)
}

func TestUpsertWeeklyRejectsNegativeCounters(t *testing.T) {
	service, _, _ := newActivityService(t)

	_, err := service.UpsertWeekly(&domain.WeeklyActivity{
		EmployeeID:    "emp-1",
		WeekStartDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Videos:        -3,
	})
	assert.ErrorIs(t, err, ErrInvalidActivity)
}

func TestUpsertWeeklyRejectsMissingWeekStart(t *testing.T) {
	service, _, _ := newActivityService(t)

	_, err := service.UpsertWeekly(&domain.WeeklyActivity{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, ErrInvalidActivity)
}

func TestUpdateWeeklyUnknownActivity(t *testing.T) {
	service, weeklyRepo, _ := newActivityService(t)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	activity := &domain.WeeklyActivity{
		ID:            "act-9",
		WeekStartDate: monday,
	}

	weeklyRepo.EXPECT().GetByEmployeeAndWeekStart("emp-1", monday).Return(nil, nil)
	weeklyRepo.EXPECT().ListByEmployee("emp-1").Return(nil, nil)

	err := service.UpdateWeekly("emp-1", activity)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUpdateWeeklyStampsEmployeeFromCaller(t *testing.T) {
	service, weeklyRepo, _ := newActivityService(t)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	activity := &domain.WeeklyActivity{
		ID:            "act-1",
		EmployeeID:    "spoofed",
		WeekStartDate: monday,
	}

	weeklyRepo.EXPECT().GetByEmployeeAndWeekStart("emp-1", monday).Return(&domain.WeeklyActivity{
		ID:            "act-1",
		EmployeeID:    "emp-1",
		WeekStartDate: monday,
	}, nil)
	weeklyRepo.EXPECT().Update(activity).Return(nil)

	err := service.UpdateWeekly("emp-1", activity)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", activity.EmployeeID)
}

func TestUpsertDaily(t *testing.T) {
	service, _, dailyRepo := newActivityService(t)

	activity := &domain.DailyActivity{
		EmployeeID:   "emp-1",
		ActivityDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		CallsMade:    15,
	}

	dailyRepo.EXPECT().Upsert(activity).Return(activity, nil)

	saved, err := service.UpsertDaily(activity)
	require.NoError(t, err)
	assert.Equal(t, activity, saved)
}

func TestUpsertDailyRejectsNegativeCounters(t *testing.T) {
	service, _, _ := newActivityService(t)

	_, err := service.UpsertDaily(&domain.DailyActivity{
		EmployeeID:   "emp-1",
		ActivityDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		CreditPulls:  -1,
	})
	assert.ErrorIs(t, err, ErrInvalidActivity)
}
