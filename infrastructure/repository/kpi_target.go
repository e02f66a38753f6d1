package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const kpiTargetsTable = "employee_kpi_targets"

type KpiTargetRepository interface {
	GetByEmployeeAndYear(employeeID string, year int) (*domain.KpiTarget, error)
	GetByID(id string) (*domain.KpiTarget, error)
	Create(target *domain.KpiTarget) (*domain.KpiTarget, error)
	Update(target *domain.KpiTarget) error
	Delete(id string) error
}

type kpiTargetRepository struct {
	conn *postgres.Connection
}

func NewKpiTargetRepository(conn *postgres.Connection) KpiTargetRepository {
	return &kpiTargetRepository{
		conn: conn,
	}
}

const kpiTargetColumns = "id, employee_id, year, annual_volume_goal, avg_loan_amount, required_units_monthly, lock_percentage, locked_loans_monthly, new_file_to_locked_percentage, new_files_monthly, created_at, updated_at"

func (r *kpiTargetRepository) GetByEmployeeAndYear(employeeID string, year int) (*domain.KpiTarget, error) {
	query, args, err := squirrel.
		Select(kpiTargetColumns).
		From(kpiTargetsTable).
		Where(squirrel.Eq{"employee_id": employeeID, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanTarget(r.conn.QueryRow(query, args...))
}

func (r *kpiTargetRepository) GetByID(id string) (*domain.KpiTarget, error) {
	query, args, err := squirrel.
		Select(kpiTargetColumns).
		From(kpiTargetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanTarget(r.conn.QueryRow(query, args...))
}

func (r *kpiTargetRepository) scanTarget(row *sql.Row) (*domain.KpiTarget, error) {
	var target domain.KpiTarget
	err := row.Scan(
		&target.ID,
		&target.EmployeeID,
		&target.Year,
		&target.AnnualVolumeGoal,
		&target.AvgLoanAmount,
		&target.RequiredUnitsMonthly,
		&target.LockPercentage,
		&target.LockedLoansMonthly,
		&target.NewFileToLockedPercentage,
		&target.NewFilesMonthly,
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

func (r *kpiTargetRepository) Create(target *domain.KpiTarget) (*domain.KpiTarget, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating target id: %w", err)
	}
	target.ID = id

	query, args, err := squirrel.
		Insert(kpiTargetsTable).
		Columns("id", "employee_id", "year", "annual_volume_goal", "avg_loan_amount", "required_units_monthly", "lock_percentage", "locked_loans_monthly", "new_file_to_locked_percentage", "new_files_monthly").
		Values(target.ID, target.EmployeeID, target.Year, target.AnnualVolumeGoal, target.AvgLoanAmount, target.RequiredUnitsMonthly, target.LockPercentage, target.LockedLoansMonthly, target.NewFileToLockedPercentage, target.NewFilesMonthly).
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

func (r *kpiTargetRepository) Update(target *domain.KpiTarget) error {
	query, args, err := squirrel.
		Update(kpiTargetsTable).
		Set("annual_volume_goal", target.AnnualVolumeGoal).
		Set("avg_loan_amount", target.AvgLoanAmount).
		Set("required_units_monthly", target.RequiredUnitsMonthly).
		Set("lock_percentage", target.LockPercentage).
		Set("locked_loans_monthly", target.LockedLoansMonthly).
		Set("new_file_to_locked_percentage", target.NewFileToLockedPercentage).
		Set("new_files_monthly", target.NewFilesMonthly).
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

func (r *kpiTargetRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(kpiTargetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
