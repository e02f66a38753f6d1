package domain

import (
	"encoding/json"
	"time"
)

// WeeklyActivity is one employee's activity log for a single week, keyed
// by the Monday the week starts on. At most one record exists per
// (employee, week start); writes go through upsert semantics.
//
// HoursProspected is kept as the raw decimal string the database stores.
// Aggregation parses it defensively and treats unparsable values as zero.
type WeeklyActivity struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	WeekStartDate      time.Time       `json:"week_start_date"`
	WeekEndDate        time.Time       `json:"week_end_date"`
	FaceToFaceMeetings int             `json:"face_to_face_meetings"`
	Events             int             `json:"events"`
	Videos             int             `json:"videos"`
	HoursProspected    string          `json:"hours_prospected"`
	ThankYouCards      int             `json:"thank_you_cards"`
	LeadsReceived      int             `json:"leads_received"`
	DailyBreakdown     json.RawMessage `json:"daily_breakdown,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// DailyActivity is one employee's prospecting log for a single day.
type DailyActivity struct {
	ID                    string    `json:"id"`
	EmployeeID            string    `json:"employee_id"`
	ActivityDate          time.Time `json:"activity_date"`
	CallsMade             int       `json:"calls_made"`
	AppointmentsScheduled int       `json:"appointments_scheduled"`
	AppointmentsCompleted int       `json:"appointments_completed"`
	ApplicationsSubmitted int       `json:"applications_submitted"`
	PreQualsCompleted     int       `json:"pre_quals_completed"`
	CreditPulls           int       `json:"credit_pulls"`
	FollowUps             int       `json:"follow_ups"`
	RealtorMeetings       int       `json:"realtor_meetings"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
