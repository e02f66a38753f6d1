package progressing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

// ComputeProgress derives a progress report from an employee's activity
// history, this year's loans and the annual target, all relative to asOf.
// Without a target there is nothing to measure against, so the report is nil.
//
// The function is pure: the clock is injected and nothing is cached, so two
// calls with the same inputs produce the same report.
func ComputeProgress(asOf time.Time, activities []*domain.WeeklyActivity, loans []*domain.Loan, target *domain.KpiTarget) *domain.ProgressReport {
	if target == nil {
		return nil
	}

	year := asOf.Year()
	month := asOf.Month()

	var yearActivities []*domain.WeeklyActivity
	var monthActivities []*domain.WeeklyActivity
	for _, activity := range activities {
		if activity.WeekStartDate.Year() != year {
			continue
		}
		yearActivities = append(yearActivities, activity)

		if activity.WeekStartDate.Month() == month {
			monthActivities = append(monthActivities, activity)
		}
	}

	report := &domain.ProgressReport{
		YearTotals:          reduceCounters(yearActivities),
		MonthTotals:         reduceCounters(monthActivities),
		WeeklyBreakdown:     bucketByWeek(monthActivities),
		MonthlyBreakdown:    bucketByMonth(yearActivities),
		ActivitiesThisYear:  len(yearActivities),
		ActivitiesThisMonth: len(monthActivities),
	}

	deriveLoanMetrics(report, loans, asOf)

	report.VolumeProgress = progressPercent(report.VolumeCompleted.InexactFloat64(), target.AnnualVolumeGoal.InexactFloat64())
	report.UnitsProgress = progressPercent(float64(report.UnitsThisMonth), float64(target.RequiredUnitsMonthly))
	report.LockedProgress = progressPercent(float64(report.LockedLoansThisMonth), float64(target.LockedLoansMonthly))

	return report
}

// reduceCounters sums the six activity counters. HoursProspected arrives as
// a decimal string; anything unparsable counts as zero so one bad row never
// takes the whole report down.
func reduceCounters(activities []*domain.WeeklyActivity) domain.ActivityTotals {
	var totals domain.ActivityTotals

	for _, activity := range activities {
		totals.Meetings += activity.FaceToFaceMeetings
		totals.Events += activity.Events
		totals.Videos += activity.Videos
		totals.ThankYouCards += activity.ThankYouCards
		totals.LeadsReceived += activity.LeadsReceived

		hours, err := decimal.NewFromString(activity.HoursProspected)
		if err == nil {
			totals.HoursProspected += hours.InexactFloat64()
		}
	}

	return totals
}

// bucketByWeek splits a month's activities into the four calendar weeks of
// the month. An activity lands in bucket ceil(day/7) of its week-start day.
// Week starts on the 29th through the 31st compute to bucket 5, which has no
// slot and is dropped; the monthly totals still include those activities.
func bucketByWeek(monthActivities []*domain.WeeklyActivity) []domain.WeekBucket {
	buckets := make([]domain.WeekBucket, 4)
	for i := range buckets {
		buckets[i].WeekNumber = i + 1
	}

	for _, activity := range monthActivities {
		week := (activity.WeekStartDate.Day() + 6) / 7
		if week < 1 || week > 4 {
			continue
		}

		totals := reduceCounters([]*domain.WeeklyActivity{activity})
		addTotals(&buckets[week-1].ActivityTotals, totals)
	}

	return buckets
}

// bucketByMonth produces one bucket per calendar month of the year, in
// order, including empty months.
func bucketByMonth(yearActivities []*domain.WeeklyActivity) []domain.MonthBucket {
	buckets := make([]domain.MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = i + 1
	}

	for _, activity := range yearActivities {
		idx := int(activity.WeekStartDate.Month()) - 1

		totals := reduceCounters([]*domain.WeeklyActivity{activity})
		addTotals(&buckets[idx].ActivityTotals, totals)
		buckets[idx].ActivityCount++
	}

	return buckets
}

func addTotals(dst *domain.ActivityTotals, src domain.ActivityTotals) {
	dst.Meetings += src.Meetings
	dst.Events += src.Events
	dst.Videos += src.Videos
	dst.ThankYouCards += src.ThankYouCards
	dst.LeadsReceived += src.LeadsReceived
	dst.HoursProspected += src.HoursProspected
}

// deriveLoanMetrics fills in the loan-side numbers. Volume trusts the
// closed date over the status column: a loan without a closed date adds no
// volume even if its status says closed.
func deriveLoanMetrics(report *domain.ProgressReport, loans []*domain.Loan, asOf time.Time) {
	report.VolumeCompleted = decimal.Zero

	for _, loan := range loans {
		if loan.ClosedDate != nil {
			report.VolumeCompleted = report.VolumeCompleted.Add(loan.LoanAmount)

			if sameMonth(*loan.ClosedDate, asOf) {
				report.UnitsThisMonth++
			}
		}

		if loan.LockedDate != nil && sameMonth(*loan.LockedDate, asOf) {
			report.LockedLoansThisMonth++
		}
	}
}

func sameMonth(date, asOf time.Time) bool {
	return date.Year() == asOf.Year() && date.Month() == asOf.Month()
}

// progressPercent is round(completed/goal*100), with a zero-goal guard so a
// misconfigured target yields 0 instead of a non-finite value.
func progressPercent(completed, goal float64) int {
	if goal == 0 {
		return 0
	}

	return utils.RoundPercent(completed / goal * 100)
}

// StatusOf classifies a progress percentage into the three base tiers.
func StatusOf(progress int) domain.ProgressStatus {
	switch {
	case progress >= 80:
		return domain.StatusOnTrack
	case progress >= 60:
		return domain.StatusAtRisk
	default:
		return domain.StatusBehind
	}
}

// StatusOfWithExceeded adds a fourth tier at 100 and above. The admin
// overview uses it; the per-employee progress view caps at on-track.
func StatusOfWithExceeded(progress int) domain.ProgressStatus {
	if progress >= 100 {
		return domain.StatusExceeded
	}

	return StatusOf(progress)
}
