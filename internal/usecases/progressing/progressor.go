package progressing

import (
	"time"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

// Progressor assembles an employee's progress report. A nil report with a
// nil error means the employee has no target configured for the year.
type Progressor interface {
	GetKpiProgress(employeeID string, asOf time.Time) (*domain.ProgressReport, error)
}

type Service struct {
	activityRepo repository.WeeklyActivityRepository
	loanRepo     repository.LoanRepository
	targetRepo   repository.KpiTargetRepository
}

func NewService(
	activityRepo repository.WeeklyActivityRepository,
	loanRepo repository.LoanRepository,
	targetRepo repository.KpiTargetRepository,
) Progressor {
	return &Service{
		activityRepo: activityRepo,
		loanRepo:     loanRepo,
		targetRepo:   targetRepo,
	}
}

func (s *Service) GetKpiProgress(employeeID string, asOf time.Time) (*domain.ProgressReport, error) {
	target, err := s.targetRepo.GetByEmployeeAndYear(employeeID, asOf.Year())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}

	activities, err := s.activityRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.ListByEmployeeAndYear(employeeID, asOf.Year())
	if err != nil {
		return nil, err
	}

	return ComputeProgress(asOf, activities, loans, target), nil
}
