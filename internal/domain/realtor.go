package domain

import "time"

// Relationship strength levels for realtor partners.
const (
	RelationshipNew    = "new"
	RelationshipWarm   = "warm"
	RelationshipStrong = "strong"
)

// RealtorPartner is a referral relationship an employee maintains with a
// real-estate agent.
type RealtorPartner struct {
	ID                   string     `json:"id"`
	EmployeeID           string     `json:"employee_id"`
	Name                 string     `json:"name"`
	Company              *string    `json:"company,omitempty"`
	Phone                *string    `json:"phone,omitempty"`
	Email                *string    `json:"email,omitempty"`
	LastContactDate      *time.Time `json:"last_contact_date,omitempty"`
	RelationshipStrength string     `json:"relationship_strength"`
	LoansReferred        int        `json:"loans_referred"`
	Notes                *string    `json:"notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ReferralCount is a running tally an employee keeps, either of past
// clients or of top realtors. One row per employee per kind.
type ReferralCount struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	TotalCount int       `json:"total_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}
