package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
)

// ProgressResponse wraps the report so clients can distinguish "no target
// configured" (progress is null) from an empty report.
type ProgressResponse struct {
	Progress *domain.ProgressReport `json:"progress"`
}

func GetKpiProgress(progressor progressing.Progressor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		report, err := progressor.GetKpiProgress(userClaims.UserID, time.Now())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to compute KPI progress", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProgressResponse{Progress: report})
	}
}
