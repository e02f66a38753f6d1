package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/authenticating"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
)

type CreateEmployeeRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	EmployeeName string `json:"employee_name"`
	RoleID       int    `json:"role_id"`
}

func ListEmployees(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := service.ListEmployees()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list employees", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(employees)
	}
}

func CreateEmployee(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		user := &domain.User{
			Username:     req.Username,
			PasswordHash: req.Password,
			EmployeeName: req.EmployeeName,
			RoleID:       req.RoleID,
		}

		created, err := service.CreateUser(user)
		if err != nil {
			logrus.Error(err)

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to create employee", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateEmployee(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if employeeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Employee ID is required", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}
		req.ID = employeeID

		if err := service.UpdateUser(&req); err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrEmployeeNotFound, "Employee not found", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to update employee", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeleteEmployee(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if employeeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Employee ID is required", nil)
			return
		}

		if err := service.DeleteUser(employeeID); err != nil {
			logrus.Error(err)

			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrEmployeeNotFound, "Employee not found", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to delete employee", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
