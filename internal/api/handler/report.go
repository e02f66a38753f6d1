package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/reporting"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

func GetTeamOverview(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := reporter.GetTeamOverview(time.Now())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to build team overview", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

// GetProgressHistory serves the nightly progress snapshots for one employee.
// The range defaults to the current calendar year when from/to are omitted.
func GetProgressHistory(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		now := time.Now()
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to := now

		if parsed, err := utils.ParseOptionalDate(r.URL.Query().Get("from")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid from date, expected YYYY-MM-DD", nil)
			return
		} else if parsed != nil {
			from = *parsed
		}

		if parsed, err := utils.ParseOptionalDate(r.URL.Query().Get("to")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid to date, expected YYYY-MM-DD", nil)
			return
		} else if parsed != nil {
			to = *parsed
		}

		history, err := reporter.GetProgressHistory(employeeID, from, to)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load progress history", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}
