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

const weeklyActivitiesTable = "weekly_activities"

type WeeklyActivityRepository interface {
	GetByEmployeeAndWeekStart(employeeID string, weekStart time.Time) (*domain.WeeklyActivity, error)
	ListByEmployee(employeeID string) ([]*domain.WeeklyActivity, error)
	ListByEmployeeRange(employeeID string, startDate, endDate time.Time) ([]*domain.WeeklyActivity, error)
	Upsert(activity *domain.WeeklyActivity) (*domain.WeeklyActivity, error)
	Update(activity *domain.WeeklyActivity) error
	Delete(id string) error
}

type weeklyActivityRepository struct {
	conn *postgres.Connection
}

func NewWeeklyActivityRepository(conn *postgres.Connection) WeeklyActivityRepository {
	return &weeklyActivityRepository{
		conn: conn,
	}
}

const weeklyActivityColumns = "id, employee_id, week_start_date, week_end_date, face_to_face_meetings, events, videos, hours_prospected, thank_you_cards, leads_received, daily_breakdown, created_at"

func (r *weeklyActivityRepository) GetByEmployeeAndWeekStart(employeeID string, weekStart time.Time) (*domain.WeeklyActivity, error) {
	query, args, err := squirrel.
		Select(weeklyActivityColumns).
		From(weeklyActivitiesTable).
		Where(squirrel.Eq{"employee_id": employeeID, "week_start_date": weekStart}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	activity, err := r.scanActivity(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return activity, nil
}

func (r *weeklyActivityRepository) ListByEmployee(employeeID string) ([]*domain.WeeklyActivity, error) {
	queryBuilder := squirrel.
		Select(weeklyActivityColumns).
		From(weeklyActivitiesTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("week_start_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listActivities(queryBuilder)
}

func (r *weeklyActivityRepository) ListByEmployeeRange(employeeID string, startDate, endDate time.Time) ([]*domain.WeeklyActivity, error) {
	queryBuilder := squirrel.
		Select(weeklyActivityColumns).
		From(weeklyActivitiesTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"week_start_date": startDate}).
		Where(squirrel.LtOrEq{"week_end_date": endDate}).
		OrderBy("week_start_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listActivities(queryBuilder)
}

func (r *weeklyActivityRepository) listActivities(queryBuilder squirrel.SelectBuilder) ([]*domain.WeeklyActivity, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.WeeklyActivity
	for rows.Next() {
		var activity domain.WeeklyActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.EmployeeID,
			&activity.WeekStartDate,
			&activity.WeekEndDate,
			&activity.FaceToFaceMeetings,
			&activity.Events,
			&activity.Videos,
			&activity.HoursProspected,
			&activity.ThankYouCards,
			&activity.LeadsReceived,
			&activity.DailyBreakdown,
			&activity.CreatedAt,
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

func (r *weeklyActivityRepository) scanActivity(row *sql.Row) (*domain.WeeklyActivity, error) {
	var activity domain.WeeklyActivity
	err := row.Scan(
		&activity.ID,
		&activity.EmployeeID,
		&activity.WeekStartDate,
		&activity.WeekEndDate,
		&activity.FaceToFaceMeetings,
		&activity.Events,
		&activity.Videos,
		&activity.HoursProspected,
		&activity.ThankYouCards,
		&activity.LeadsReceived,
		&activity.DailyBreakdown,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// Upsert creates the week's record or, when one already exists for the
// (employee, week start) pair, replaces its counters. This enforces the
// one-record-per-week natural key.
func (r *weeklyActivityRepository) Upsert(activity *domain.WeeklyActivity) (*domain.WeeklyActivity, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating activity id: %w", err)
	}
	activity.ID = id

	query, args, err := squirrel.
		Insert(weeklyActivitiesTable).
		Columns("id", "employee_id", "week_start_date", "week_end_date", "face_to_face_meetings", "events", "videos", "hours_prospected", "thank_you_cards", "leads_received", "daily_breakdown").
		Values(activity.ID, activity.EmployeeID, activity.WeekStartDate, activity.WeekEndDate, activity.FaceToFaceMeetings, activity.Events, activity.Videos, activity.HoursProspected, activity.ThankYouCards, activity.LeadsReceived, activity.DailyBreakdown).
		Suffix(`ON CONFLICT (employee_id, week_start_date) DO UPDATE SET
			week_end_date = EXCLUDED.week_end_date,
			face_to_face_meetings = EXCLUDED.face_to_face_meetings,
			events = EXCLUDED.events,
			videos = EXCLUDED.videos,
			hours_prospected = EXCLUDED.hours_prospected,
			thank_you_cards = EXCLUDED.thank_you_cards,
			leads_received = EXCLUDED.leads_received,
			daily_breakdown = EXCLUDED.daily_breakdown
			RETURNING id, created_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *weeklyActivityRepository) Update(activity *domain.WeeklyActivity) error {
	query, args, err := squirrel.
		Update(weeklyActivitiesTable).
		Set("week_end_date", activity.WeekEndDate).
		Set("face_to_face_meetings", activity.FaceToFaceMeetings).
		Set("events", activity.Events).
		Set("videos", activity.Videos).
		Set("hours_prospected", activity.HoursProspected).
		Set("thank_you_cards", activity.ThankYouCards).
		Set("leads_received", activity.LeadsReceived).
		Set("daily_breakdown", activity.DailyBreakdown).
		Where(squirrel.Eq{"id": activity.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *weeklyActivityRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(weeklyActivitiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
