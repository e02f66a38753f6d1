package tracking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
)

func newLoanService(t *testing.T) (LoanService, *mocks.MockLoanRepository) {
	ctrl := gomock.NewController(t)
	loanRepo := mocks.NewMockLoanRepository(ctrl)
	return NewLoanService(loanRepo), loanRepo
}

func TestCreateLoan(t *testing.T) {
	service, loanRepo := newLoanService(t)

	loan := &domain.Loan{
		EmployeeID: "emp-1",
		LoanAmount: decimal.NewFromInt(450000),
		LoanType:   "conventional",
		Status:     domain.LoanStatusProcessing,
	}

	loanRepo.EXPECT().Create(loan).Return(loan, nil)

	created, err := service.Create(loan)
	require.NoError(t, err)
	assert.Equal(t, loan, created)
}

func TestCreateLoanRejectsUnknownStatus(t *testing.T) {
	service, _ := newLoanService(t)

	_, err := service.Create(&domain.Loan{
		EmployeeID: "emp-1",
		LoanAmount: decimal.NewFromInt(450000),
		Status:     "funded",
	})
	assert.ErrorIs(t, err, ErrInvalidLoan)
}

func TestCreateLoanRejectsNegativeAmount(t *testing.T) {
	service, _ := newLoanService(t)

	_, err := service.Create(&domain.Loan{
		EmployeeID: "emp-1",
		LoanAmount: decimal.NewFromInt(-1),
		Status:     domain.LoanStatusLead,
	})
	assert.ErrorIs(t, err, ErrInvalidLoan)
}

func TestUpdateLoanOwnership(t *testing.T) {
	service, loanRepo := newLoanService(t)

	loan := &domain.Loan{
		ID:         "loan-1",
		EmployeeID: "emp-1",
		LoanAmount: decimal.NewFromInt(450000),
		Status:     domain.LoanStatusLocked,
	}

	loanRepo.EXPECT().GetByID("loan-1").Return(&domain.Loan{
		ID:         "loan-1",
		EmployeeID: "emp-2",
	}, nil)

	err := service.Update("emp-1", loan)
	assert.ErrorIs(t, err, ErrNotLoanOwner)
}

func TestDeleteLoanNotFound(t *testing.T) {
	service, loanRepo := newLoanService(t)

	loanRepo.EXPECT().GetByID("missing").Return(nil, nil)

	err := service.Delete("emp-1", "missing")
	assert.ErrorIs(t, err, ErrLoanNotFound)
}

func TestDeleteLoan(t *testing.T) {
	service, loanRepo := newLoanService(t)

	loanRepo.EXPECT().GetByID("loan-1").Return(&domain.Loan{
		ID:         "loan-1",
		EmployeeID: "emp-1",
	}, nil)
	loanRepo.EXPECT().Delete("loan-1").Return(nil)

	err := service.Delete("emp-1", "loan-1")
	assert.NoError(t, err)
}
