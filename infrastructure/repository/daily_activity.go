package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const dailyActivitiesTable = "daily_activities"

type DailyActivityRepository interface {
	GetByEmployeeAndDate(employeeID string, date time.Time) (*domain.DailyActivity, error)
	ListByEmployeeRange(employeeID string, startDate, endDate time.Time) ([]*domain.DailyActivity, error)
	Upsert(activity *domain.DailyActivity) (*domain.DailyActivity, error)
	Delete(id string) error
}

type dailyActivityRepository struct {
	conn *postgres.Connection
}

func NewDailyActivityRepository(conn *postgres.Connection) DailyActivityRepository {
	return &dailyActivityRepository{
		conn: conn,
	}
}

const dailyActivityColumns = "id, employee_id, activity_date, calls_made, appointments_scheduled, appointments_completed, applications_submitted, pre_quals_completed, credit_pulls, follow_ups, realtor_meetings, notes, created_at, updated_at"

func (r *dailyActivityRepository) GetByEmployeeAndDate(employeeID string, date time.Time) (*domain.DailyActivity, error) {
	query, args, err := squirrel.
		Select(dailyActivityColumns).
		From(dailyActivitiesTable).
		Where(squirrel.Eq{"employee_id": employeeID, "activity_date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var activity domain.DailyActivity
	err = r.scanInto(r.conn.QueryRow(query, args...), &activity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *dailyActivityRepository) ListByEmployeeRange(employeeID string, startDate, endDate time.Time) ([]*domain.DailyActivity, error) {
	query, args, err := squirrel.
		Select(dailyActivityColumns).
		From(dailyActivitiesTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"activity_date": startDate}).
		Where(squirrel.LtOrEq{"activity_date": endDate}).
		OrderBy("activity_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.DailyActivity
	for rows.Next() {
		var activity domain.DailyActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.EmployeeID,
			&activity.ActivityDate,
			&activity.CallsMade,
			&activity.AppointmentsScheduled,
			&activity.AppointmentsCompleted,
			&activity.ApplicationsSubmitted,
			&activity.PreQualsCompleted,
			&activity.CreditPulls,
			&activity.FollowUps,
			&activity.RealtorMeetings,
			&activity.Notes,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		); err != nil {
			return nil, err
		}

		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *dailyActivityRepository) scanInto(row *sql.Row, activity *domain.DailyActivity) error {
	return row.Scan(
		&activity.ID,
		&activity.EmployeeID,
		&activity.ActivityDate,
		&activity.CallsMade,
		&activity.AppointmentsScheduled,
		&activity.AppointmentsCompleted,
		&activity.ApplicationsSubmitted,
		&activity.PreQualsCompleted,
		&activity.CreditPulls,
		&activity.FollowUps,
		&activity.RealtorMeetings,
		&activity.Notes,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
}

// Upsert keeps a single record per (employee, activity date).
func (r *dailyActivityRepository) Upsert(activity *domain.DailyActivity) (*domain.DailyActivity, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating activity id: %w", err)
	}
	activity.ID = id

	query, args, err := squirrel.
		Insert(dailyActivitiesTable).
		Columns("id", "employee_id", "activity_date", "calls_made", "appointments_scheduled", "appointments_completed", "applications_submitted", "pre_quals_completed", "credit_pulls", "follow_ups", "realtor_meetings", "notes").
		Values(activity.ID, activity.EmployeeID, activity.ActivityDate, activity.CallsMade, activity.AppointmentsScheduled, activity.AppointmentsCompleted, activity.ApplicationsSubmitted, activity.PreQualsCompleted, activity.CreditPulls, activity.FollowUps, activity.RealtorMeetings, activity.Notes).
		Suffix(`ON CONFLICT (employee_id, activity_date) DO UPDATE SET
			calls_made = EXCLUDED.calls_made,
			appointments_scheduled = EXCLUDED.appointments_scheduled,
			appointments_completed = EXCLUDED.appointments_completed,
			applications_submitted = EXCLUDED.applications_submitted,
			pre_quals_completed = EXCLUDED.pre_quals_completed,
			credit_pulls = EXCLUDED.credit_pulls,
			follow_ups = EXCLUDED.follow_ups,
			realtor_meetings = EXCLUDED.realtor_meetings,
			notes = EXCLUDED.notes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *dailyActivityRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(dailyActivitiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
