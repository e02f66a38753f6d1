package domain

import "github.com/shopspring/decimal"

// EmployeeOverview is one row of the admin overview: an employee plus the
// loan metrics and status derived from their current-year progress. Status
// uses the four-tier scale, so employees past their goal show as exceeded.
type EmployeeOverview struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Username     string `json:"username"`
	Active       bool   `json:"active"`
	HasTarget    bool   `json:"has_target"`

	VolumeCompleted      decimal.Decimal `json:"volume_completed"`
	UnitsThisMonth       int             `json:"units_this_month"`
	LockedLoansThisMonth int             `json:"locked_loans_this_month"`
	VolumeProgress       int             `json:"volume_progress"`
	UnitsProgress        int             `json:"units_progress"`
	LockedProgress       int             `json:"locked_progress"`
	ActivitiesThisMonth  int             `json:"activities_this_month"`

	Status ProgressStatus `json:"status"`
}

// TeamOverview is the admin overview report for all employees.
type TeamOverview struct {
	Employees []*EmployeeOverview `json:"employees"`

	TeamVolumeCompleted decimal.Decimal `json:"team_volume_completed"`
	TeamUnitsThisMonth  int             `json:"team_units_this_month"`
	OnTrackCount        int             `json:"on_track_count"`
	AtRiskCount         int             `json:"at_risk_count"`
	BehindCount         int             `json:"behind_count"`
	ExceededCount       int             `json:"exceeded_count"`
}
