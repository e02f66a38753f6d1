package domain

import "github.com/shopspring/decimal"

// ProgressStatus classifies a progress percentage against its target.
type ProgressStatus string

const (
	StatusBehind   ProgressStatus = "behind"
	StatusAtRisk   ProgressStatus = "at-risk"
	StatusOnTrack  ProgressStatus = "on-track"
	StatusExceeded ProgressStatus = "exceeded"
)

// ActivityTotals is the six-counter reduction of a set of weekly activities.
type ActivityTotals struct {
	Events          int     `json:"events"`
	Meetings        int     `json:"meetings"`
	Videos          int     `json:"videos"`
	ThankYouCards   int     `json:"thank_you_cards"`
	LeadsReceived   int     `json:"leads_received"`
	HoursProspected float64 `json:"hours_prospected"`
}

// WeekBucket is the totals for one calendar week of the current month,
// numbered 1 through 4.
type WeekBucket struct {
	WeekNumber int `json:"week_number"`
	ActivityTotals
}

// MonthBucket is the totals for one calendar month of the current year.
type MonthBucket struct {
	Month int `json:"month"`
	ActivityTotals
	ActivityCount int `json:"activity_count"`
}

// ProgressReport is the derived output of the progress aggregation. It is
// recomputed on every request and never persisted.
type ProgressReport struct {
	VolumeCompleted      decimal.Decimal `json:"volume_completed"`
	UnitsThisMonth       int             `json:"units_this_month"`
	LockedLoansThisMonth int             `json:"locked_loans_this_month"`

	VolumeProgress int `json:"volume_progress"`
	UnitsProgress  int `json:"units_progress"`
	LockedProgress int `json:"locked_progress"`

	YearTotals       ActivityTotals `json:"year_totals"`
	MonthTotals      ActivityTotals `json:"month_totals"`
	WeeklyBreakdown  []WeekBucket   `json:"weekly_breakdown"`
	MonthlyBreakdown []MonthBucket  `json:"monthly_breakdown"`

	ActivitiesThisYear  int `json:"activities_this_year"`
	ActivitiesThisMonth int `json:"activities_this_month"`
}
