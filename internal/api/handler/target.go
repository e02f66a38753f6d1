package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
)

func GetEmployeeKpiTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		employeeID := params.ByName("id")

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid year", nil)
			return
		}

		target, err := service.GetKpiTarget(employeeID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load target", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "No KPI target for this employee and year", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

// GetMyKpiTarget returns the logged in employee's own KPI target.
func GetMyKpiTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		year, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid year", nil)
			return
		}

		target, err := service.GetKpiTarget(userClaims.UserID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load target", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "No KPI target configured", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func CreateKpiTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target domain.KpiTarget
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		created, err := service.CreateKpiTarget(&target)
		if err != nil {
			writeTargetError(w, err, "Failed to create KPI target")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateKpiTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var target domain.KpiTarget
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}
		target.ID = targetID

		if err := service.UpdateKpiTarget(&target); err != nil {
			writeTargetError(w, err, "Failed to update KPI target")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func GetEmployeeSalesTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		employeeID := params.ByName("id")

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid year", nil)
			return
		}

		target, err := service.GetSalesTarget(employeeID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load target", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "No sales target for this employee and year", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func GetMySalesTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		year, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid year", nil)
			return
		}

		target, err := service.GetSalesTarget(userClaims.UserID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load target", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "No sales target configured", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func CreateSalesTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target domain.SalesTarget
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		created, err := service.CreateSalesTarget(&target)
		if err != nil {
			writeTargetError(w, err, "Failed to create sales target")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateSalesTarget(service tracking.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var target domain.SalesTarget
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}
		target.ID = targetID

		if err := service.UpdateSalesTarget(&target); err != nil {
			writeTargetError(w, err, "Failed to update sales target")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func writeTargetError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tracking.ErrInvalidTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Target fields must be positive", nil)

	case errors.Is(err, tracking.ErrTargetExists):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A target already exists for this employee and year", nil)

	case errors.Is(err, tracking.ErrTargetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "Target not found", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
