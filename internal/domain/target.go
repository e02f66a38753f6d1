package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KpiTarget holds the annual loan-production goals for one employee.
// One row per (employee, year). Monetary and percentage fields are
// fixed-point decimals so currency values survive the wire intact.
type KpiTarget struct {
	ID                        string          `json:"id"`
	EmployeeID                string          `json:"employee_id"`
	Year                      int             `json:"year"`
	AnnualVolumeGoal          decimal.Decimal `json:"annual_volume_goal"`
	AvgLoanAmount             decimal.Decimal `json:"avg_loan_amount"`
	RequiredUnitsMonthly      int             `json:"required_units_monthly"`
	LockPercentage            decimal.Decimal `json:"lock_percentage"`
	LockedLoansMonthly        int             `json:"locked_loans_monthly"`
	NewFileToLockedPercentage decimal.Decimal `json:"new_file_to_locked_percentage"`
	NewFilesMonthly           decimal.Decimal `json:"new_files_monthly"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

// SalesTarget holds the yearly sales-activity goals for one employee.
type SalesTarget struct {
	ID                string    `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	Year              int       `json:"year"`
	EventsTarget      int       `json:"events_target"`
	MeetingsTarget    int       `json:"meetings_target"`
	ThankyouTarget    int       `json:"thankyou_target"`
	ProspectingTarget int       `json:"prospecting_target"`
	VideosTarget      int       `json:"videos_target"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
