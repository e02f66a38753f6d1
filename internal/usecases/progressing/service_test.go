package progressing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func weekActivity(weekStart time.Time, meetings, events int, hours string) *domain.WeeklyActivity {
	return &domain.WeeklyActivity{
		EmployeeID:         "emp1",
		WeekStartDate:      weekStart,
		WeekEndDate:        weekStart.AddDate(0, 0, 6),
		FaceToFaceMeetings: meetings,
		Events:             events,
		HoursProspected:    hours,
	}
}

func defaultTarget() *domain.KpiTarget {
	return &domain.KpiTarget{
		EmployeeID:           "emp1",
		Year:                 2025,
		AnnualVolumeGoal:     decimal.NewFromInt(100000000),
		RequiredUnitsMonthly: 24,
		LockedLoansMonthly:   26,
	}
}

func TestComputeProgress_NoTarget(t *testing.T) {
	asOf := date(2025, time.March, 20)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 3), 2, 1, "4.5"),
	}
	loans := []*domain.Loan{
		{LoanAmount: decimal.NewFromInt(45000000), ClosedDate: datePtr(2025, time.March, 15)},
	}

	report := ComputeProgress(asOf, activities, loans, nil)
	assert.Nil(t, report)
}

func TestComputeProgress_EmptyInputs(t *testing.T) {
	report := ComputeProgress(date(2025, time.March, 20), nil, nil, defaultTarget())
	require.NotNil(t, report)

	assert.True(t, report.VolumeCompleted.IsZero())
	assert.Equal(t, 0, report.UnitsThisMonth)
	assert.Equal(t, 0, report.LockedLoansThisMonth)
	assert.Equal(t, 0, report.VolumeProgress)
	assert.Equal(t, 0, report.UnitsProgress)
	assert.Equal(t, 0, report.LockedProgress)
	assert.Equal(t, domain.ActivityTotals{}, report.YearTotals)
	assert.Equal(t, domain.ActivityTotals{}, report.MonthTotals)
	assert.Equal(t, 0, report.ActivitiesThisYear)
	assert.Equal(t, 0, report.ActivitiesThisMonth)
	assert.Len(t, report.WeeklyBreakdown, 4)
	assert.Len(t, report.MonthlyBreakdown, 12)

	assert.Equal(t, domain.StatusBehind, StatusOf(report.VolumeProgress))
}

func TestComputeProgress_VolumeIgnoresUnclosedLoans(t *testing.T) {
	asOf := date(2025, time.March, 20)
	loans := []*domain.Loan{
		{LoanAmount: decimal.NewFromInt(45000000), ClosedDate: datePtr(2025, time.March, 15), Status: domain.LoanStatusClosed},
		{LoanAmount: decimal.NewFromInt(10000000), Status: domain.LoanStatusClosed},
	}

	report := ComputeProgress(asOf, nil, loans, defaultTarget())
	require.NotNil(t, report)

	assert.True(t, report.VolumeCompleted.Equal(decimal.NewFromInt(45000000)),
		"got %s", report.VolumeCompleted)
	assert.Equal(t, 45, report.VolumeProgress)
	assert.Equal(t, 1, report.UnitsThisMonth)
}

func TestComputeProgress_LoanMonthFilters(t *testing.T) {
	asOf := date(2025, time.March, 20)
	loans := []*domain.Loan{
		// Closed this month, locked last month
		{LoanAmount: decimal.NewFromInt(300000), ClosedDate: datePtr(2025, time.March, 5), LockedDate: datePtr(2025, time.February, 10)},
		// Closed in January: counts toward volume, not toward units
		{LoanAmount: decimal.NewFromInt(250000), ClosedDate: datePtr(2025, time.January, 20)},
		// Locked this month, not yet closed
		{LoanAmount: decimal.NewFromInt(400000), LockedDate: datePtr(2025, time.March, 12), Status: domain.LoanStatusLocked},
	}

	report := ComputeProgress(asOf, nil, loans, defaultTarget())
	require.NotNil(t, report)

	assert.True(t, report.VolumeCompleted.Equal(decimal.NewFromInt(550000)))
	assert.Equal(t, 1, report.UnitsThisMonth)
	assert.Equal(t, 1, report.LockedLoansThisMonth)
}

func TestComputeProgress_WeeklyBuckets(t *testing.T) {
	asOf := date(2025, time.March, 20)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 3), 2, 1, "0"),
		weekActivity(date(2025, time.March, 10), 1, 0, "0"),
	}

	report := ComputeProgress(asOf, activities, nil, defaultTarget())
	require.NotNil(t, report)
	require.Len(t, report.WeeklyBreakdown, 4)

	assert.Equal(t, 1, report.WeeklyBreakdown[0].WeekNumber)
	assert.Equal(t, 2, report.WeeklyBreakdown[0].Meetings)
	assert.Equal(t, 1, report.WeeklyBreakdown[0].Events)

	assert.Equal(t, 2, report.WeeklyBreakdown[1].WeekNumber)
	assert.Equal(t, 1, report.WeeklyBreakdown[1].Meetings)

	assert.Equal(t, domain.ActivityTotals{}, report.WeeklyBreakdown[2].ActivityTotals)
	assert.Equal(t, domain.ActivityTotals{}, report.WeeklyBreakdown[3].ActivityTotals)
}

func TestComputeProgress_WeeklyBucketsSumToMonthTotals(t *testing.T) {
	asOf := date(2025, time.March, 20)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 1), 3, 2, "1.5"),
		weekActivity(date(2025, time.March, 10), 1, 0, "2"),
		weekActivity(date(2025, time.March, 17), 4, 1, "0.25"),
		weekActivity(date(2025, time.March, 28), 2, 2, "3"),
	}

	report := ComputeProgress(asOf, activities, nil, defaultTarget())
	require.NotNil(t, report)

	var summed int
	for _, bucket := range report.WeeklyBreakdown {
		summed += bucket.Meetings
	}

	assert.Equal(t, report.MonthTotals.Meetings, summed)
}

// A week starting on the 29th lands in the monthly totals but in none of
// the four weekly buckets.
func TestComputeProgress_WeekStartOnDay29Dropped(t *testing.T) {
	asOf := date(2025, time.March, 30)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 3), 2, 0, "0"),
		weekActivity(date(2025, time.March, 29), 5, 0, "0"),
	}

	report := ComputeProgress(asOf, activities, nil, defaultTarget())
	require.NotNil(t, report)

	assert.Equal(t, 7, report.MonthTotals.Meetings)

	var summed int
	for _, bucket := range report.WeeklyBreakdown {
		summed += bucket.Meetings
	}
	assert.Equal(t, 2, summed)
}

func TestComputeProgress_MonthlyBreakdown(t *testing.T) {
	asOf := date(2025, time.June, 15)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.January, 6), 1, 0, "2"),
		weekActivity(date(2025, time.January, 13), 2, 1, "1"),
		weekActivity(date(2025, time.June, 2), 3, 0, "0.5"),
		// Previous year, excluded entirely
		weekActivity(date(2024, time.June, 3), 9, 9, "9"),
	}

	report := ComputeProgress(asOf, activities, nil, defaultTarget())
	require.NotNil(t, report)
	require.Len(t, report.MonthlyBreakdown, 12)

	january := report.MonthlyBreakdown[0]
	assert.Equal(t, 1, january.Month)
	assert.Equal(t, 3, january.Meetings)
	assert.Equal(t, 2, january.ActivityCount)
	assert.InDelta(t, 3.0, january.HoursProspected, 0.0001)

	june := report.MonthlyBreakdown[5]
	assert.Equal(t, 6, june.Month)
	assert.Equal(t, 3, june.Meetings)
	assert.Equal(t, 1, june.ActivityCount)

	assert.Equal(t, 3, report.ActivitiesThisYear)
	assert.Equal(t, 1, report.ActivitiesThisMonth)
}

func TestComputeProgress_UnparsableHoursCountAsZero(t *testing.T) {
	asOf := date(2025, time.March, 20)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 3), 1, 0, "abc"),
		weekActivity(date(2025, time.March, 10), 1, 0, "2.5"),
	}

	report := ComputeProgress(asOf, activities, nil, defaultTarget())
	require.NotNil(t, report)

	assert.InDelta(t, 2.5, report.MonthTotals.HoursProspected, 0.0001)
	assert.Equal(t, 2, report.MonthTotals.Meetings)
}

func TestComputeProgress_ZeroGoalGuard(t *testing.T) {
	asOf := date(2025, time.March, 20)
	target := &domain.KpiTarget{
		EmployeeID:       "emp1",
		Year:             2025,
		AnnualVolumeGoal: decimal.Zero,
	}
	loans := []*domain.Loan{
		{LoanAmount: decimal.NewFromInt(300000), ClosedDate: datePtr(2025, time.March, 5)},
	}

	report := ComputeProgress(asOf, nil, loans, target)
	require.NotNil(t, report)

	assert.Equal(t, 0, report.VolumeProgress)
	assert.Equal(t, 0, report.UnitsProgress)
	assert.Equal(t, 0, report.LockedProgress)
}

func TestComputeProgress_Idempotent(t *testing.T) {
	asOf := date(2025, time.March, 20)
	activities := []*domain.WeeklyActivity{
		weekActivity(date(2025, time.March, 3), 2, 1, "4.5"),
		weekActivity(date(2025, time.March, 10), 1, 0, "abc"),
	}
	loans := []*domain.Loan{
		{LoanAmount: decimal.NewFromInt(45000000), ClosedDate: datePtr(2025, time.March, 15)},
		{LoanAmount: decimal.NewFromInt(10000000)},
	}

	first := ComputeProgress(asOf, activities, loans, defaultTarget())
	second := ComputeProgress(asOf, activities, loans, defaultTarget())

	assert.Equal(t, first, second)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		expected domain.ProgressStatus
	}{
		{name: "zero is behind", progress: 0, expected: domain.StatusBehind},
		{name: "just below at-risk", progress: 59, expected: domain.StatusBehind},
		{name: "at-risk lower bound", progress: 60, expected: domain.StatusAtRisk},
		{name: "at-risk upper bound", progress: 79, expected: domain.StatusAtRisk},
		{name: "on-track lower bound", progress: 80, expected: domain.StatusOnTrack},
		{name: "past 100 stays on-track", progress: 120, expected: domain.StatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.progress))
		})
	}
}

func TestStatusOfWithExceeded(t *testing.T) {
	assert.Equal(t, domain.StatusOnTrack, StatusOfWithExceeded(99))
	assert.Equal(t, domain.StatusExceeded, StatusOfWithExceeded(100))
	assert.Equal(t, domain.StatusExceeded, StatusOfWithExceeded(150))
	assert.Equal(t, domain.StatusAtRisk, StatusOfWithExceeded(70))
	assert.Equal(t, domain.StatusBehind, StatusOfWithExceeded(10))
}
