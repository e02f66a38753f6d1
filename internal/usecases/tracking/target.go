package tracking

import (
	"errors"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

var (
	ErrInvalidTarget  = errors.New("invalid target")
	ErrTargetNotFound = errors.New("target not found")
	ErrTargetExists   = errors.New("target already exists for this employee and year")
)

// TargetService manages KPI and sales targets. Targets are validated at
// write time so progress percentages never divide by zero.
type TargetService interface {
	GetKpiTarget(employeeID string, year int) (*domain.KpiTarget, error)
	CreateKpiTarget(target *domain.KpiTarget) (*domain.KpiTarget, error)
	UpdateKpiTarget(target *domain.KpiTarget) error
	GetSalesTarget(employeeID string, year int) (*domain.SalesTarget, error)
	CreateSalesTarget(target *domain.SalesTarget) (*domain.SalesTarget, error)
	UpdateSalesTarget(target *domain.SalesTarget) error
}

type targetService struct {
	kpiRepo   repository.KpiTargetRepository
	salesRepo repository.SalesTargetRepository
}

func NewTargetService(kpiRepo repository.KpiTargetRepository, salesRepo repository.SalesTargetRepository) TargetService {
	return &targetService{
		kpiRepo:   kpiRepo,
		salesRepo: salesRepo,
	}
}

func (s *targetService) GetKpiTarget(employeeID string, year int) (*domain.KpiTarget, error) {
	return s.kpiRepo.GetByEmployeeAndYear(employeeID, year)
}

func (s *targetService) CreateKpiTarget(target *domain.KpiTarget) (*domain.KpiTarget, error) {
	if err := validateKpiTarget(target); err != nil {
		return nil, err
	}

	existing, err := s.kpiRepo.GetByEmployeeAndYear(target.EmployeeID, target.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTargetExists
	}

	return s.kpiRepo.Create(target)
}

func (s *targetService) UpdateKpiTarget(target *domain.KpiTarget) error {
	if err := validateKpiTarget(target); err != nil {
		return err
	}

	existing, err := s.kpiRepo.GetByID(target.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTargetNotFound
	}

	target.EmployeeID = existing.EmployeeID
	target.Year = existing.Year

	return s.kpiRepo.Update(target)
}

func (s *targetService) GetSalesTarget(employeeID string, year int) (*domain.SalesTarget, error) {
	return s.salesRepo.GetByEmployeeAndYear(employeeID, year)
}

func (s *targetService) CreateSalesTarget(target *domain.SalesTarget) (*domain.SalesTarget, error) {
	if err := validateSalesTarget(target); err != nil {
		return nil, err
	}

	existing, err := s.salesRepo.GetByEmployeeAndYear(target.EmployeeID, target.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTargetExists
	}

	return s.salesRepo.Create(target)
}

func (s *targetService) UpdateSalesTarget(target *domain.SalesTarget) error {
	if err := validateSalesTarget(target); err != nil {
		return err
	}

	existing, err := s.salesRepo.GetByID(target.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTargetNotFound
	}

	target.EmployeeID = existing.EmployeeID
	target.Year = existing.Year

	return s.salesRepo.Update(target)
}

func validateKpiTarget(target *domain.KpiTarget) error {
	if target.EmployeeID == "" || target.Year == 0 {
		return ErrInvalidTarget
	}

	if !target.AnnualVolumeGoal.IsPositive() {
		return ErrInvalidTarget
	}

	if target.RequiredUnitsMonthly <= 0 || target.LockedLoansMonthly <= 0 {
		return ErrInvalidTarget
	}

	if target.LockPercentage.IsNegative() || target.NewFileToLockedPercentage.IsNegative() {
		return ErrInvalidTarget
	}

	return nil
}

func validateSalesTarget(target *domain.SalesTarget) error {
	if target.EmployeeID == "" || target.Year == 0 {
		return ErrInvalidTarget
	}

	if target.EventsTarget < 0 || target.MeetingsTarget < 0 || target.ThankyouTarget < 0 ||
		target.ProspectingTarget < 0 || target.VideosTarget < 0 {
		return ErrInvalidTarget
	}

	return nil
}
