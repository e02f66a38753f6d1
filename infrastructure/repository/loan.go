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

const loansTable = "loans"

type LoanRepository interface {
	GetByID(id string) (*domain.Loan, error)
	ListByEmployee(employeeID string) ([]*domain.Loan, error)
	ListByEmployeeAndYear(employeeID string, year int) ([]*domain.Loan, error)
	Create(loan *domain.Loan) (*domain.Loan, error)
	Update(loan *domain.Loan) error
	Delete(id string) error
}

type loanRepository struct {
	conn *postgres.Connection
}

func NewLoanRepository(conn *postgres.Connection) LoanRepository {
	return &loanRepository{
		conn: conn,
	}
}

const loanColumns = "id, employee_id, borrower_name, loan_amount, loan_type, status, locked_date, closed_date, expected_close_date, referral_source, created_at, updated_at"

func (r *loanRepository) GetByID(id string) (*domain.Loan, error) {
	query, args, err := squirrel.
		Select(loanColumns).
		From(loansTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var loan domain.Loan
	err = r.conn.QueryRow(query, args...).Scan(
		&loan.ID,
		&loan.EmployeeID,
		&loan.BorrowerName,
		&loan.LoanAmount,
		&loan.LoanType,
		&loan.Status,
		&loan.LockedDate,
		&loan.ClosedDate,
		&loan.ExpectedCloseDate,
		&loan.ReferralSource,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) ListByEmployee(employeeID string) ([]*domain.Loan, error) {
	queryBuilder := squirrel.
		Select(loanColumns).
		From(loansTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listLoans(queryBuilder)
}

// ListByEmployeeAndYear returns loans relevant to a reporting year: any
// loan locked, closed or created within it.
func (r *loanRepository) ListByEmployeeAndYear(employeeID string, year int) ([]*domain.Loan, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	queryBuilder := squirrel.
		Select(loanColumns).
		From(loansTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Or{
			squirrel.And{squirrel.GtOrEq{"closed_date": yearStart}, squirrel.Lt{"closed_date": yearEnd}},
			squirrel.And{squirrel.GtOrEq{"locked_date": yearStart}, squirrel.Lt{"locked_date": yearEnd}},
			squirrel.And{squirrel.GtOrEq{"created_at": yearStart}, squirrel.Lt{"created_at": yearEnd}},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listLoans(queryBuilder)
}

func (r *loanRepository) listLoans(queryBuilder squirrel.SelectBuilder) ([]*domain.Loan, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*domain.Loan
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(
			&loan.ID,
			&loan.EmployeeID,
			&loan.BorrowerName,
			&loan.LoanAmount,
			&loan.LoanType,
			&loan.Status,
			&loan.LockedDate,
			&loan.ClosedDate,
			&loan.ExpectedCloseDate,
			&loan.ReferralSource,
			&loan.CreatedAt,
			&loan.UpdatedAt,
		); err != nil {
			return nil, err
		}

		loans = append(loans, &loan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) Create(loan *domain.Loan) (*domain.Loan, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating loan id: %w", err)
	}
	loan.ID = id

	query, args, err := squirrel.
		Insert(loansTable).
		Columns("id", "employee_id", "borrower_name", "loan_amount", "loan_type", "status", "locked_date", "closed_date", "expected_close_date", "referral_source").
		Values(loan.ID, loan.EmployeeID, loan.BorrowerName, loan.LoanAmount, loan.LoanType, loan.Status, loan.LockedDate, loan.ClosedDate, loan.ExpectedCloseDate, loan.ReferralSource).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return loan, nil
}

func (r *loanRepository) Update(loan *domain.Loan) error {
	query, args, err := squirrel.
		Update(loansTable).
		Set("borrower_name", loan.BorrowerName).
		Set("loan_amount", loan.LoanAmount).
		Set("loan_type", loan.LoanType).
		Set("status", loan.Status).
		Set("locked_date", loan.LockedDate).
		Set("closed_date", loan.ClosedDate).
		Set("expected_close_date", loan.ExpectedCloseDate).
		Set("referral_source", loan.ReferralSource).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": loan.ID}).
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

func (r *loanRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(loansTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
