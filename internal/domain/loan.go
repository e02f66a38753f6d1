package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan pipeline stages, in lifecycle order.
const (
	LoanStatusLead         = "lead"
	LoanStatusPreQualified = "pre-qualified"
	LoanStatusApplication  = "application"
	LoanStatusProcessing   = "processing"
	LoanStatusLocked       = "locked"
	LoanStatusClosed       = "closed"
)

var loanStatuses = map[string]bool{
	LoanStatusLead:         true,
	LoanStatusPreQualified: true,
	LoanStatusApplication:  true,
	LoanStatusProcessing:   true,
	LoanStatusLocked:       true,
	LoanStatusClosed:       true,
}

func ValidLoanStatus(status string) bool {
	return loanStatuses[status]
}

// Loan is one file in an employee's pipeline. LockedDate and ClosedDate,
// when set, decide which month the loan counts toward for the lock and
// close metrics. A loan with no closed date contributes no volume no
// matter what its status says.
type Loan struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	BorrowerName      *string         `json:"borrower_name,omitempty"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	LoanType          string          `json:"loan_type"`
	Status            string          `json:"status"`
	LockedDate        *time.Time      `json:"locked_date,omitempty"`
	ClosedDate        *time.Time      `json:"closed_date,omitempty"`
	ExpectedCloseDate *time.Time      `json:"expected_close_date,omitempty"`
	ReferralSource    *string         `json:"referral_source,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
