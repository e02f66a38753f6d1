package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/crm"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
)

type CoachingNoteRequest struct {
	EmployeeID  string  `json:"employee_id"`
	NoteType    string  `json:"note_type"`
	Subject     string  `json:"subject"`
	Content     string  `json:"content"`
	ActionItems *string `json:"action_items,omitempty"`
	IsPrivate   bool    `json:"is_private"`
}

// ListCoachingNotes returns the notes for the employee in the path. Admins
// see every note including private ones; employees only see their own
// non-private notes.
func ListCoachingNotes(service crm.CoachingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		employeeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		isAdmin := userClaims.UserRoleID == domain.RoleAdmin

		if !isAdmin && employeeID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Cannot view another employee's coaching notes", nil)
			return
		}

		notes, err := service.ListNotes(employeeID, isAdmin)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list coaching notes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notes)
	}
}

func CreateCoachingNote(service crm.CoachingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req CoachingNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		note := &domain.CoachingNote{
			EmployeeID:  req.EmployeeID,
			ManagerID:   userClaims.UserID,
			NoteType:    req.NoteType,
			Subject:     req.Subject,
			Content:     req.Content,
			ActionItems: req.ActionItems,
			IsPrivate:   req.IsPrivate,
		}

		created, err := service.CreateNote(note)
		if err != nil {
			writeCoachingError(w, err, "Failed to create coaching note")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteCoachingNote(service crm.CoachingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteNote(noteID); err != nil {
			writeCoachingError(w, err, "Failed to delete coaching note")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeCoachingError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, crm.ErrInvalidNote):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Coaching note is missing required fields", nil)

	case errors.Is(err, crm.ErrNoteNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNoteNotFound, "Coaching note not found", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
