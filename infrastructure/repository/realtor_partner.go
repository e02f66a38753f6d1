package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/database/postgres"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

const realtorPartnersTable = "realtor_partners"

type RealtorPartnerRepository interface {
	GetByID(id string) (*domain.RealtorPartner, error)
	ListByEmployee(employeeID string) ([]*domain.RealtorPartner, error)
	Create(partner *domain.RealtorPartner) (*domain.RealtorPartner, error)
	Update(partner *domain.RealtorPartner) error
	Delete(id string) error
}

type realtorPartnerRepository struct {
	conn *postgres.Connection
}

func NewRealtorPartnerRepository(conn *postgres.Connection) RealtorPartnerRepository {
	return &realtorPartnerRepository{
		conn: conn,
	}
}

const realtorPartnerColumns = "id, employee_id, name, company, phone, email, last_contact_date, relationship_strength, loans_referred, notes, created_at, updated_at"

func (r *realtorPartnerRepository) GetByID(id string) (*domain.RealtorPartner, error) {
	query, args, err := squirrel.
		Select(realtorPartnerColumns).
		From(realtorPartnersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var partner domain.RealtorPartner
	err = r.conn.QueryRow(query, args...).Scan(
		&partner.ID,
		&partner.EmployeeID,
		&partner.Name,
		&partner.Company,
		&partner.Phone,
		&partner.Email,
		&partner.LastContactDate,
		&partner.RelationshipStrength,
		&partner.LoansReferred,
		&partner.Notes,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &partner, nil
}

func (r *realtorPartnerRepository) ListByEmployee(employeeID string) ([]*domain.RealtorPartner, error) {
	query, args, err := squirrel.
		Select(realtorPartnerColumns).
		From(realtorPartnersTable).
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("name ASC").
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

	var partners []*domain.RealtorPartner
	for rows.Next() {
		var partner domain.RealtorPartner
		if err := rows.Scan(
			&partner.ID,
			&partner.EmployeeID,
			&partner.Name,
			&partner.Company,
			&partner.Phone,
			&partner.Email,
			&partner.LastContactDate,
			&partner.RelationshipStrength,
			&partner.LoansReferred,
			&partner.Notes,
			&partner.CreatedAt,
			&partner.UpdatedAt,
		); err != nil {
			return nil, err
		}

		partners = append(partners, &partner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

func (r *realtorPartnerRepository) Create(partner *domain.RealtorPartner) (*domain.RealtorPartner, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating partner id: %w", err)
	}
	partner.ID = id

	query, args, err := squirrel.
		Insert(realtorPartnersTable).
		Columns("id", "employee_id", "name", "company", "phone", "email", "last_contact_date", "relationship_strength", "loans_referred", "notes").
		Values(partner.ID, partner.EmployeeID, partner.Name, partner.Company, partner.Phone, partner.Email, partner.LastContactDate, partner.RelationshipStrength, partner.LoansReferred, partner.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&partner.CreatedAt, &partner.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return partner, nil
}

func (r *realtorPartnerRepository) Update(partner *domain.RealtorPartner) error {
	query, args, err := squirrel.
		Update(realtorPartnersTable).
		Set("name", partner.Name).
		Set("company", partner.Company).
		Set("phone", partner.Phone).
		Set("email", partner.Email).
		Set("last_contact_date", partner.LastContactDate).
		Set("relationship_strength", partner.RelationshipStrength).
		Set("loans_referred", partner.LoansReferred).
		Set("notes", partner.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": partner.ID}).
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

func (r *realtorPartnerRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(realtorPartnersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
