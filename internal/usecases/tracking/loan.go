package tracking

import (
	"errors"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

var (
	ErrInvalidLoan  = errors.New("invalid loan")
	ErrLoanNotFound = errors.New("loan not found")
	ErrNotLoanOwner = errors.New("loan belongs to another employee")
)

// LoanService manages an employee's loan pipeline. Every operation is
// scoped to the requesting employee so one employee cannot touch another's
// loans.
type LoanService interface {
	List(employeeID string) ([]*domain.Loan, error)
	Create(loan *domain.Loan) (*domain.Loan, error)
	Update(employeeID string, loan *domain.Loan) error
	Delete(employeeID, loanID string) error
}

type loanService struct {
	loanRepo repository.LoanRepository
}

func NewLoanService(loanRepo repository.LoanRepository) LoanService {
	return &loanService{
		loanRepo: loanRepo,
	}
}

func (s *loanService) List(employeeID string) ([]*domain.Loan, error) {
	return s.loanRepo.ListByEmployee(employeeID)
}

func (s *loanService) Create(loan *domain.Loan) (*domain.Loan, error) {
	if err := validateLoan(loan); err != nil {
		return nil, err
	}

	return s.loanRepo.Create(loan)
}

func (s *loanService) Update(employeeID string, loan *domain.Loan) error {
	if err := validateLoan(loan); err != nil {
		return err
	}

	if _, err := s.ownedLoan(employeeID, loan.ID); err != nil {
		return err
	}

	loan.EmployeeID = employeeID
	return s.loanRepo.Update(loan)
}

func (s *loanService) Delete(employeeID, loanID string) error {
	if _, err := s.ownedLoan(employeeID, loanID); err != nil {
		return err
	}

	return s.loanRepo.Delete(loanID)
}

func (s *loanService) ownedLoan(employeeID, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}
	if loan.EmployeeID != employeeID {
		return nil, ErrNotLoanOwner
	}

	return loan, nil
}

func validateLoan(loan *domain.Loan) error {
	if loan.EmployeeID == "" {
		return ErrInvalidLoan
	}

	if !domain.ValidLoanStatus(loan.Status) {
		return ErrInvalidLoan
	}

	if loan.LoanAmount.IsNegative() {
		return ErrInvalidLoan
	}

	return nil
}
