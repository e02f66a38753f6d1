package domain

import "time"

// ProgressSnapshot is a nightly capture of an employee's progress
// percentages, written by the snapshot scheduler so the admin overview can
// show movement without recomputing history.
type ProgressSnapshot struct {
	ID             string         `json:"id"`
	EmployeeID     string         `json:"employee_id"`
	SnapshotDate   time.Time      `json:"snapshot_date"`
	VolumeProgress int            `json:"volume_progress"`
	UnitsProgress  int            `json:"units_progress"`
	LockedProgress int            `json:"locked_progress"`
	Status         ProgressStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
