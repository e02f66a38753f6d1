package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
	"github.com/sureshkirannz/EmployeeKPI/pkg/log"
)

// Reporter builds the admin team overview and historical progress reads.
type Reporter interface {
	GetTeamOverview(asOf time.Time) (*domain.TeamOverview, error)
	GetProgressHistory(employeeID string, from, to time.Time) ([]*domain.ProgressSnapshot, error)
}

type Service struct {
	userRepo     repository.UserRepository
	activityRepo repository.WeeklyActivityRepository
	loanRepo     repository.LoanRepository
	targetRepo   repository.KpiTargetRepository
	snapshotRepo repository.ProgressSnapshotRepository
}

func NewService(
	userRepo repository.UserRepository,
	activityRepo repository.WeeklyActivityRepository,
	loanRepo repository.LoanRepository,
	targetRepo repository.KpiTargetRepository,
	snapshotRepo repository.ProgressSnapshotRepository,
) Reporter {
	return &Service{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		loanRepo:     loanRepo,
		targetRepo:   targetRepo,
		snapshotRepo: snapshotRepo,
	}
}

// GetTeamOverview rolls up every employee's current-year progress into one
// report. Employees without a configured target still appear, flagged with
// HasTarget false and zeroed metrics, so the admin can see who needs setup.
func (s *Service) GetTeamOverview(asOf time.Time) (*domain.TeamOverview, error) {
	employees, err := s.userRepo.ListEmployees()
	if err != nil {
		return nil, err
	}

	overview := &domain.TeamOverview{
		Employees:           make([]*domain.EmployeeOverview, 0, len(employees)),
		TeamVolumeCompleted: decimal.Zero,
	}

	for _, employee := range employees {
		row, err := s.employeeOverview(employee, asOf)
		if err != nil {
			log.L.Errorf("team overview: skipping employee %s: %v", employee.ID, err)
			continue
		}

		overview.Employees = append(overview.Employees, row)

		if !row.HasTarget {
			continue
		}

		overview.TeamVolumeCompleted = overview.TeamVolumeCompleted.Add(row.VolumeCompleted)
		overview.TeamUnitsThisMonth += row.UnitsThisMonth

		switch row.Status {
		case domain.StatusExceeded:
			overview.ExceededCount++
		case domain.StatusOnTrack:
			overview.OnTrackCount++
		case domain.StatusAtRisk:
			overview.AtRiskCount++
		default:
			overview.BehindCount++
		}
	}

	return overview, nil
}

// GetProgressHistory returns the nightly snapshots recorded for an employee
// between from and to, oldest first. Employees with no snapshots in the range
// yield an empty list rather than an error.
func (s *Service) GetProgressHistory(employeeID string, from, to time.Time) ([]*domain.ProgressSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListByEmployeeRange(employeeID, from, to)
	if err != nil {
		return nil, err
	}

	if snapshots == nil {
		snapshots = []*domain.ProgressSnapshot{}
	}

	return snapshots, nil
}

func (s *Service) employeeOverview(employee *domain.User, asOf time.Time) (*domain.EmployeeOverview, error) {
	row := &domain.EmployeeOverview{
		EmployeeID:      employee.ID,
		EmployeeName:    employee.EmployeeName,
		Username:        employee.Username,
		Active:          employee.Active,
		VolumeCompleted: decimal.Zero,
		Status:          domain.StatusBehind,
	}

	target, err := s.targetRepo.GetByEmployeeAndYear(employee.ID, asOf.Year())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return row, nil
	}

	activities, err := s.activityRepo.ListByEmployee(employee.ID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.ListByEmployeeAndYear(employee.ID, asOf.Year())
	if err != nil {
		return nil, err
	}

	report := progressing.ComputeProgress(asOf, activities, loans, target)

	row.HasTarget = true
	row.VolumeCompleted = report.VolumeCompleted
	row.UnitsThisMonth = report.UnitsThisMonth
	row.LockedLoansThisMonth = report.LockedLoansThisMonth
	row.VolumeProgress = report.VolumeProgress
	row.UnitsProgress = report.UnitsProgress
	row.LockedProgress = report.LockedProgress
	row.ActivitiesThisMonth = report.ActivitiesThisMonth
	row.Status = progressing.StatusOfWithExceeded(report.VolumeProgress)

	return row, nil
}
