package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

// LoanRequest carries loan amounts as decimal strings so currency values
// survive the wire intact.
type LoanRequest struct {
	BorrowerName      *string `json:"borrower_name,omitempty"`
	LoanAmount        string  `json:"loan_amount"`
	LoanType          string  `json:"loan_type"`
	Status            string  `json:"status"`
	LockedDate        string  `json:"locked_date,omitempty"`
	ClosedDate        string  `json:"closed_date,omitempty"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty"`
	ReferralSource    *string `json:"referral_source,omitempty"`
}

func ListLoans(service tracking.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		loans, err := service.List(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list loans", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loans)
	}
}

func CreateLoan(service tracking.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		loan, err := loanFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.Create(loan)
		if err != nil {
			writeLoanError(w, err, "Failed to create loan")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateLoan(service tracking.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		loanID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req LoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		loan, err := loanFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		loan.ID = loanID

		if err := service.Update(userClaims.UserID, loan); err != nil {
			writeLoanError(w, err, "Failed to update loan")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loan)
	}
}

func DeleteLoan(service tracking.LoanService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		loanID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, loanID); err != nil {
			writeLoanError(w, err, "Failed to delete loan")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func loanFromRequest(employeeID string, req *LoanRequest) (*domain.Loan, error) {
	amount, err := decimal.NewFromString(req.LoanAmount)
	if err != nil {
		return nil, errors.New("loan_amount must be a decimal string")
	}

	lockedDate, err := utils.ParseOptionalDate(req.LockedDate)
	if err != nil {
		return nil, errors.New("locked_date must use the YYYY-MM-DD format")
	}

	closedDate, err := utils.ParseOptionalDate(req.ClosedDate)
	if err != nil {
		return nil, errors.New("closed_date must use the YYYY-MM-DD format")
	}

	expectedCloseDate, err := utils.ParseOptionalDate(req.ExpectedCloseDate)
	if err != nil {
		return nil, errors.New("expected_close_date must use the YYYY-MM-DD format")
	}

	return &domain.Loan{
		EmployeeID:        employeeID,
		BorrowerName:      req.BorrowerName,
		LoanAmount:        amount,
		LoanType:          req.LoanType,
		Status:            req.Status,
		LockedDate:        lockedDate,
		ClosedDate:        closedDate,
		ExpectedCloseDate: expectedCloseDate,
		ReferralSource:    req.ReferralSource,
	}, nil
}

func writeLoanError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tracking.ErrInvalidLoan):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Loan status or amount is invalid", nil)

	case errors.Is(err, tracking.ErrLoanNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLoanNotFound, "Loan not found", nil)

	case errors.Is(err, tracking.ErrNotLoanOwner):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Loan belongs to another employee", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
