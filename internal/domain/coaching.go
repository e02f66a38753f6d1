package domain

import "time"

// Coaching note types.
const (
	NoteTypeFeedback    = "feedback"
	NoteTypeGoal        = "goal"
	NoteTypeRecognition = "recognition"
)

// CoachingNote is manager feedback attached to an employee. Private notes
// are visible to admins only.
type CoachingNote struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	ManagerID   string    `json:"manager_id"`
	NoteType    string    `json:"note_type"`
	Subject     string    `json:"subject"`
	Content     string    `json:"content"`
	ActionItems *string   `json:"action_items,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}
