package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const salesTargetsTable = "employee_sales_targets"

type SalesTargetRepository interface {
	GetByEmployeeAndYear(employeeID string, year int) (*domain.SalesTarget, error)
	GetByID(id string) (*domain.SalesTarget, error)
	Create(target *domain.SalesTarget) (*domain.SalesTarget, error)
	Update(target *domain.SalesTarget) error
	Delete(id string) error
}

type salesTargetRepository struct {
	conn *postgres.Connection
}

func NewSalesTargetRepository(conn *postgres.Connection) SalesTargetRepository {
	return &salesTargetRepository{
		conn: conn,
	}
}

const salesTargetColumns = "id, employee_id, year, events_target, meetings_target, thankyou_target, prospecting_target, videos_target, created_at, updated_at"

func (r *salesTargetRepository) GetByEmployeeAndYear(employeeID string, year int) (*domain.SalesTarget, error) {
	query, args, err := squirrel.
		Select(salesTargetColumns).
		From(salesTargetsTable).
		Where(squirrel.Eq{"employee_id": employeeID, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanTarget(r.conn.QueryRow(query, args...))
}

func (r *salesTargetRepository) GetByID(id string) (*domain.SalesTarget, error) {
	query, args, err := squirrel.
		Select(salesTargetColumns).
		From(salesTargetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanTarget(r.conn.QueryRow(query, args...))
}

func (r *salesTargetRepository) scanTarget(row *sql.Row) (*domain.SalesTarget, error) {
	var target domain.SalesTarget
	err := row.Scan(
		&target.ID,
		&target.EmployeeID,
		&target.Year,
		&target.EventsTarget,
		&target.MeetingsTarget,
		&target.ThankyouTarget,
		&target.ProspectingTarget,
		&target.VideosTarget,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &target, nil
}

func (r *salesTargetRepository) Create(target *domain.SalesTarget) (*domain.SalesTarget, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating target id: %w", err)
	}
	target.ID = id

	query, args, err := squirrel.
		Insert(salesTargetsTable).
		Columns("id", "employee_id", "year", "events_target", "meetings_target", "thankyou_target", "prospecting_target", "videos_target").
		Values(target.ID, target.EmployeeID, target.Year, target.EventsTarget, target.MeetingsTarget, target.ThankyouTarget, target.ProspectingTarget, target.VideosTarget).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&target.CreatedAt, &target.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return target, nil
}

func (r *salesTargetRepository) Update(target *domain.SalesTarget) error {
	query, args, err := squirrel.
		Update(salesTargetsTable).
		Set("events_target", target.EventsTarget).
		Set("meetings_target", target.MeetingsTarget).
		Set("thankyou_target", target.ThankyouTarget).
		Set("prospecting_target", target.ProspectingTarget).
		Set("videos_target", target.VideosTarget).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": target.ID}).
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

func (r *salesTargetRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(salesTargetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
