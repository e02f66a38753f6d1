package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const coachingNotesTable = "coaching_notes"

type CoachingNoteRepository interface {
	GetByID(id string) (*domain.CoachingNote, error)
	ListByEmployee(employeeID string, includePrivate bool) ([]*domain.CoachingNote, error)
	Create(note *domain.CoachingNote) (*domain.CoachingNote, error)
	Delete(id string) error
}

type coachingNoteRepository struct {
	conn *postgres.Connection
}

func NewCoachingNoteRepository(conn *postgres.Connection) CoachingNoteRepository {
	return &coachingNoteRepository{
		conn: conn,
	}
}

const coachingNoteColumns = "id, employee_id, manager_id, note_type, subject, content, action_items, is_private, created_at"

func (r *coachingNoteRepository) GetByID(id string) (*domain.CoachingNote, error) {
	query, args, err := squirrel.
		Select(coachingNoteColumns).
		From(coachingNotesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var note domain.CoachingNote
	err = r.conn.QueryRow(query, args...).Scan(
		&note.ID,
		&note.EmployeeID,
		&note.ManagerID,
		&note.NoteType,
		&note.Subject,
		&note.Content,
		&note.ActionItems,
		&note.IsPrivate,
		&note.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *coachingNoteRepository) ListByEmployee(employeeID string, includePrivate bool) ([]*domain.CoachingNote, error) {
	builder := squirrel.
		Select(coachingNoteColumns).
		From(coachingNotesTable).
		Where(squirrel.Eq{"employee_id": employeeID})

	if !includePrivate {
		builder = builder.Where(squirrel.Eq{"is_private": false})
	}

	query, args, err := builder.
		OrderBy("created_at DESC").
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

	var notes []*domain.CoachingNote
	for rows.Next() {
		var note domain.CoachingNote
		if err := rows.Scan(
			&note.ID,
			&note.EmployeeID,
			&note.ManagerID,
			&note.NoteType,
			&note.Subject,
			&note.Content,
			&note.ActionItems,
			&note.IsPrivate,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}

		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *coachingNoteRepository) Create(note *domain.CoachingNote) (*domain.CoachingNote, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating note id: %w", err)
	}
	note.ID = id

	query, args, err := squirrel.
		Insert(coachingNotesTable).
		Columns("id", "employee_id", "manager_id", "note_type", "subject", "content", "action_items", "is_private").
		Values(note.ID, note.EmployeeID, note.ManagerID, note.NoteType, note.Subject, note.Content, note.ActionItems, note.IsPrivate).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&note.CreatedAt)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *coachingNoteRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(coachingNotesTable).
		Where(squirrel.Eq{"id": id}).
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
