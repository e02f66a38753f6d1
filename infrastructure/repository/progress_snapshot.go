package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const progressSnapshotsTable = "progress_snapshots"

type ProgressSnapshotRepository interface {
	ListByEmployeeRange(employeeID string, from, to time.Time) ([]*domain.ProgressSnapshot, error)
	Upsert(snapshot *domain.ProgressSnapshot) (*domain.ProgressSnapshot, error)
}

type progressSnapshotRepository struct {
	conn *postgres.Connection
}

func NewProgressSnapshotRepository(conn *postgres.Connection) ProgressSnapshotRepository {
	return &progressSnapshotRepository{
		conn: conn,
	}
}

func (r *progressSnapshotRepository) ListByEmployeeRange(employeeID string, from, to time.Time) ([]*domain.ProgressSnapshot, error) {
	query, args, err := squirrel.
		Select("id, employee_id, snapshot_date, volume_progress, units_progress, locked_progress, status, created_at").
		From(progressSnapshotsTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"snapshot_date": from}).
		Where(squirrel.LtOrEq{"snapshot_date": to}).
		OrderBy("snapshot_date ASC").
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

	var snapshots []*domain.ProgressSnapshot
	for rows.Next() {
		var snapshot domain.ProgressSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.EmployeeID,
			&snapshot.SnapshotDate,
			&snapshot.VolumeProgress,
			&snapshot.UnitsProgress,
			&snapshot.LockedProgress,
			&snapshot.Status,
			&snapshot.CreatedAt,
		); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Upsert writes at most one snapshot per employee per day, so re-running the
// nightly job is safe.
func (r *progressSnapshotRepository) Upsert(snapshot *domain.ProgressSnapshot) (*domain.ProgressSnapshot, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating snapshot id: %w", err)
	}

	query := `
		INSERT INTO progress_snapshots (id, employee_id, snapshot_date, volume_progress, units_progress, locked_progress, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, snapshot_date) DO UPDATE
		SET volume_progress = EXCLUDED.volume_progress,
			units_progress = EXCLUDED.units_progress,
			locked_progress = EXCLUDED.locked_progress,
			status = EXCLUDED.status
		RETURNING id, created_at
	`

	err = r.conn.QueryRow(query,
		id,
		snapshot.EmployeeID,
		snapshot.SnapshotDate,
		snapshot.VolumeProgress,
		snapshot.UnitsProgress,
		snapshot.LockedProgress,
		snapshot.Status,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
