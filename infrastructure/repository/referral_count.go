package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const (
	pastClientsTable = "past_clients"
	topRealtorsTable = "top_realtors"
)

// ReferralCountRepository keeps a single running tally per employee. Past
// clients and top realtors share the same shape, so one implementation backs
// both tables.
type ReferralCountRepository interface {
	GetByEmployee(employeeID string) (*domain.ReferralCount, error)
	Upsert(count *domain.ReferralCount) (*domain.ReferralCount, error)
}

type referralCountRepository struct {
	conn  *postgres.Connection
	table string
}

func NewPastClientRepository(conn *postgres.Connection) ReferralCountRepository {
	return &referralCountRepository{
		conn:  conn,
		table: pastClientsTable,
	}
}

func NewTopRealtorRepository(conn *postgres.Connection) ReferralCountRepository {
	return &referralCountRepository{
		conn:  conn,
		table: topRealtorsTable,
	}
}

func (r *referralCountRepository) GetByEmployee(employeeID string) (*domain.ReferralCount, error) {
	query, args, err := squirrel.
		Select("id, employee_id, total_count, updated_at").
		From(r.table).
		Where(squirrel.Eq{"employee_id": employeeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var count domain.ReferralCount
	err = r.conn.QueryRow(query, args...).Scan(
		&count.ID,
		&count.EmployeeID,
		&count.TotalCount,
		&count.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &count, nil
}

func (r *referralCountRepository) Upsert(count *domain.ReferralCount) (*domain.ReferralCount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating id: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, total_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE
		SET total_count = EXCLUDED.total_count, updated_at = NOW()
		RETURNING id, updated_at
	`, r.table)

	err = r.conn.QueryRow(query, id, count.EmployeeID, count.TotalCount).
		Scan(&count.ID, &count.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return count, nil
}
