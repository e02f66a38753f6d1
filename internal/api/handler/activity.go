package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
	"github.com/sureshkirannz/EmployeeKPI/pkg/apiErrors"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

type WeeklyActivityRequest struct {
	WeekStartDate      string          `json:"week_start_date"`
	WeekEndDate        string          `json:"week_end_date"`
	FaceToFaceMeetings int             `json:"face_to_face_meetings"`
	Events             int             `json:"events"`
	Videos             int             `json:"videos"`
	HoursProspected    string          `json:"hours_prospected"`
	ThankYouCards      int             `json:"thank_you_cards"`
	LeadsReceived      int             `json:"leads_received"`
	DailyBreakdown     json.RawMessage `json:"daily_breakdown,omitempty"`
}

type DailyActivityRequest struct {
	ActivityDate          string  `json:"activity_date"`
	CallsMade             int     `json:"calls_made"`
	AppointmentsScheduled int     `json:"appointments_scheduled"`
	AppointmentsCompleted int     `json:"appointments_completed"`
	ApplicationsSubmitted int     `json:"applications_submitted"`
	PreQualsCompleted     int     `json:"pre_quals_completed"`
	CreditPulls           int     `json:"credit_pulls"`
	FollowUps             int     `json:"follow_ups"`
	RealtorMeetings       int     `json:"realtor_meetings"`
	Notes                 *string `json:"notes,omitempty"`
}

// ListWeeklyActivities returns the logged in employee's weekly logs,
// optionally bounded by start_date/end_date query parameters.
func ListWeeklyActivities(service tracking.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		startDate, endDate, err := rangeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dates must use the YYYY-MM-DD format", nil)
			return
		}

		var activities []*domain.WeeklyActivity
		if startDate != nil && endDate != nil {
			activities, err = service.ListWeeklyRange(userClaims.UserID, *startDate, *endDate)
		} else {
			activities, err = service.ListWeekly(userClaims.UserID)
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list activities", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(activities)
	}
}

// UpsertWeeklyActivity creates or replaces the week log identified by the
// week start date.
func UpsertWeeklyActivity(service tracking.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req WeeklyActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		activity, err := weeklyActivityFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dates must use the YYYY-MM-DD format", nil)
			return
		}

		saved, err := service.UpsertWeekly(activity)
		if err != nil {
			writeActivityError(w, err, "Failed to save activity")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	}
}

func UpdateWeeklyActivity(service tracking.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		activityID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req WeeklyActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		activity, err := weeklyActivityFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dates must use the YYYY-MM-DD format", nil)
			return
		}
		activity.ID = activityID

		if err := service.UpdateWeekly(userClaims.UserID, activity); err != nil {
			writeActivityError(w, err, "Failed to update activity")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(activity)
	}
}

func ListDailyActivities(service tracking.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		startDate, endDate, err := rangeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dates must use the YYYY-MM-DD format", nil)
			return
		}

		// Default to the current month.
		if startDate == nil || endDate == nil {
			now := time.Now()
			first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			last := first.AddDate(0, 1, -1)
			startDate, endDate = &first, &last
		}

		activities, err := service.ListDailyRange(userClaims.UserID, *startDate, *endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list activities", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(activities)
	}
}

func UpsertDailyActivity(service tracking.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req DailyActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		activityDate, err := utils.ParseOptionalDate(req.ActivityDate)
		if err != nil || activityDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "activity_date must use the YYYY-MM-DD format", nil)
			return
		}

		activity := &domain.DailyActivity{
			EmployeeID:            userClaims.UserID,
			ActivityDate:          *activityDate,
			CallsMade:             req.CallsMade,
			AppointmentsScheduled: req.AppointmentsScheduled,
			AppointmentsCompleted: req.AppointmentsCompleted,
			ApplicationsSubmitted: req.ApplicationsSubmitted,
			PreQualsCompleted:     req.PreQualsCompleted,
			CreditPulls:           req.CreditPulls,
			FollowUps:             req.FollowUps,
			RealtorMeetings:       req.RealtorMeetings,
			Notes:                 req.Notes,
		}

		saved, err := service.UpsertDaily(activity)
		if err != nil {
			writeActivityError(w, err, "Failed to save activity")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	}
}

func weeklyActivityFromRequest(employeeID string, req *WeeklyActivityRequest) (*domain.WeeklyActivity, error) {
	weekStart, err := utils.ParseOptionalDate(req.WeekStartDate)
	if err != nil {
		return nil, err
	}

	weekEnd, err := utils.ParseOptionalDate(req.WeekEndDate)
	if err != nil {
		return nil, err
	}

	activity := &domain.WeeklyActivity{
		EmployeeID:         employeeID,
		FaceToFaceMeetings: req.FaceToFaceMeetings,
		Events:             req.Events,
		Videos:             req.Videos,
		HoursProspected:    req.HoursProspected,
		ThankYouCards:      req.ThankYouCards,
		LeadsReceived:      req.LeadsReceived,
		DailyBreakdown:     req.DailyBreakdown,
	}

	if weekStart != nil {
		activity.WeekStartDate = *weekStart
	}
	if weekEnd != nil {
		activity.WeekEndDate = *weekEnd
	}

	return activity, nil
}

func rangeFromQuery(r *http.Request) (*time.Time, *time.Time, error) {
	startDate, err := utils.ParseOptionalDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, nil, err
	}

	endDate, err := utils.ParseOptionalDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, nil, err
	}

	return startDate, endDate, nil
}

func writeActivityError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tracking.ErrInvalidActivity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Activity counters must not be negative and the week must be valid", nil)

	case errors.Is(err, tracking.ErrActivityNotFound):
		apiErrors.WriteError(w, apiErrors.ErrActivityNotFound, "Activity not found", nil)

	case errors.Is(err, tracking.ErrNotActivityOwner):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Activity belongs to another employee", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
