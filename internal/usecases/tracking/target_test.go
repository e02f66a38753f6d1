package tracking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
)

func validKpiTarget() *domain.KpiTarget {
	return &domain.KpiTarget{
		EmployeeID:                "emp-1",
		Year:                      2026,
		AnnualVolumeGoal:          decimal.NewFromInt(100000000),
		AvgLoanAmount:             decimal.NewFromInt(350000),
		RequiredUnitsMonthly:      24,
		LockPercentage:            decimal.NewFromInt(90),
		LockedLoansMonthly:        26,
		NewFileToLockedPercentage: decimal.NewFromInt(55),
		NewFilesMonthly:           decimal.NewFromFloat(48.1),
	}
}

func TestCreateKpiTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	target := validKpiTarget()

	kpiRepo.EXPECT().GetByEmployeeAndYear("emp-1", 2026).Return(nil, nil)
	kpiRepo.EXPECT().Create(target).Return(target, nil)

	created, err := service.CreateKpiTarget(target)
	require.NoError(t, err)
	assert.Equal(t, target, created)
}

func TestCreateKpiTargetRejectsDuplicateYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	target := validKpiTarget()

	kpiRepo.EXPECT().GetByEmployeeAndYear("emp-1", 2026).Return(&domain.KpiTarget{ID: "existing"}, nil)

	_, err := service.CreateKpiTarget(target)
	assert.ErrorIs(t, err, ErrTargetExists)
}

func TestCreateKpiTargetValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	tests := []struct {
		name   string
		mutate func(*domain.KpiTarget)
	}{
		{
			name:   "missing employee",
			mutate: func(target *domain.KpiTarget) { target.EmployeeID = "" },
		},
		{
			name:   "zero volume goal",
			mutate: func(target *domain.KpiTarget) { target.AnnualVolumeGoal = decimal.Zero },
		},
		{
			name:   "negative volume goal",
			mutate: func(target *domain.KpiTarget) { target.AnnualVolumeGoal = decimal.NewFromInt(-1) },
		},
		{
			name:   "zero monthly units",
			mutate: func(target *domain.KpiTarget) { target.RequiredUnitsMonthly = 0 },
		},
		{
			name:   "zero monthly locks",
			mutate: func(target *domain.KpiTarget) { target.LockedLoansMonthly = 0 },
		},
		{
			name:   "negative lock percentage",
			mutate: func(target *domain.KpiTarget) { target.LockPercentage = decimal.NewFromInt(-5) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := validKpiTarget()
			tt.mutate(target)

			_, err := service.CreateKpiTarget(target)
			assert.ErrorIs(t, err, ErrInvalidTarget)
		})
	}
}

func TestUpdateKpiTargetPreservesEmployeeAndYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	target := validKpiTarget()
	target.ID = "target-1"
	target.EmployeeID = "spoofed"
	target.Year = 1999

	kpiRepo.EXPECT().GetByID("target-1").Return(&domain.KpiTarget{
		ID:         "target-1",
		EmployeeID: "emp-1",
		Year:       2026,
	}, nil)
	kpiRepo.EXPECT().Update(target).Return(nil)

	err := service.UpdateKpiTarget(target)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", target.EmployeeID)
	assert.Equal(t, 2026, target.Year)
}

func TestUpdateKpiTargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	target := validKpiTarget()
	target.ID = "missing"

	kpiRepo.EXPECT().GetByID("missing").Return(nil, nil)

	err := service.UpdateKpiTarget(target)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestCreateSalesTargetRejectsNegativeGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	_, err := service.CreateSalesTarget(&domain.SalesTarget{
		EmployeeID:   "emp-1",
		Year:         2026,
		EventsTarget: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCreateSalesTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	kpiRepo := mocks.NewMockKpiTargetRepository(ctrl)
	salesRepo := mocks.NewMockSalesTargetRepository(ctrl)
	service := NewTargetService(kpiRepo, salesRepo)

	target := &domain.SalesTarget{
		EmployeeID:        "emp-1",
		Year:              2026,
		EventsTarget:      52,
		MeetingsTarget:    240,
		ThankyouTarget:    365,
		ProspectingTarget: 365,
		VideosTarget:      365,
	}

	salesRepo.EXPECT().GetByEmployeeAndYear("emp-1", 2026).Return(nil, nil)
	salesRepo.EXPECT().Create(target).Return(target, nil)

	created, err := service.CreateSalesTarget(target)
	require.NoError(t, err)
	assert.Equal(t, target, created)
}
