package tracking

import (
	"errors"
	"time"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

var (
	ErrInvalidActivity  = errors.New("invalid activity")
	ErrActivityNotFound = errors.New("activity not found")
	ErrNotActivityOwner = errors.New("activity belongs to another employee")
)

// ActivityService manages weekly and daily activity logs. Weekly writes go
// through upsert on the (employee, week start) natural key.
type ActivityService interface {
	ListWeekly(employeeID string) ([]*domain.WeeklyActivity, error)
	ListWeeklyRange(employeeID string, startDate, endDate time.Time) ([]*domain.WeeklyActivity, error)
	UpsertWeekly(activity *domain.WeeklyActivity) (*domain.WeeklyActivity, error)
	UpdateWeekly(employeeID string, activity *domain.WeeklyActivity) error
	ListDailyRange(employeeID string, startDate, endDate time.Time) ([]*domain.DailyActivity, error)
	UpsertDaily(activity *domain.DailyActivity) (*domain.DailyActivity, error)
}

type activityService struct {
	weeklyRepo repository.WeeklyActivityRepository
	dailyRepo  repository.DailyActivityRepository
}

func NewActivityService(weeklyRepo repository.WeeklyActivityRepository, dailyRepo repository.DailyActivityRepository) ActivityService {
	return &activityService{
		weeklyRepo: weeklyRepo,
		dailyRepo:  dailyRepo,
	}
}

func (s *activityService) ListWeekly(employeeID string) ([]*domain.WeeklyActivity, error) {
	return s.weeklyRepo.ListByEmployee(employeeID)
}

func (s *activityService) ListWeeklyRange(employeeID string, startDate, endDate time.Time) ([]*domain.WeeklyActivity, error) {
	return s.weeklyRepo.ListByEmployeeRange(employeeID, startDate, endDate)
}

func (s *activityService) UpsertWeekly(activity *domain.WeeklyActivity) (*domain.WeeklyActivity, error) {
	if activity.EmployeeID == "" || activity.WeekStartDate.IsZero() {
		return nil, ErrInvalidActivity
	}

	// Week end defaults to the Sunday of the same week.
	if activity.WeekEndDate.IsZero() {
		activity.WeekEndDate = activity.WeekStartDate.AddDate(0, 0, 6)
	}

	if activity.WeekEndDate.Before(activity.WeekStartDate) {
		return nil, ErrInvalidActivity
	}

	if err := validateCounters(activity); err != nil {
		return nil, err
	}

	if activity.HoursProspected == "" {
		activity.HoursProspected = "0"
	}

	return s.weeklyRepo.Upsert(activity)
}

func (s *activityService) UpdateWeekly(employeeID string, activity *domain.WeeklyActivity) error {
	existing, err := s.weeklyRepo.GetByEmployeeAndWeekStart(employeeID, activity.WeekStartDate)
	if err != nil {
		return err
	}

	if existing == nil || existing.ID != activity.ID {
		current, err := s.findOwnedActivity(employeeID, activity.ID)
		if err != nil {
			return err
		}
		activity.WeekStartDate = current.WeekStartDate
		activity.WeekEndDate = current.WeekEndDate
	}

	activity.EmployeeID = employeeID

	if err := validateCounters(activity); err != nil {
		return err
	}

	return s.weeklyRepo.Update(activity)
}

// findOwnedActivity resolves an activity by ID and checks it belongs to the
// employee making the request.
func (s *activityService) findOwnedActivity(employeeID, activityID string) (*domain.WeeklyActivity, error) {
	activities, err := s.weeklyRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	for _, activity := range activities {
		if activity.ID == activityID {
			return activity, nil
		}
	}

	return nil, ErrActivityNotFound
}

func (s *activityService) ListDailyRange(employeeID string, startDate, endDate time.Time) ([]*domain.DailyActivity, error) {
	return s.dailyRepo.ListByEmployeeRange(employeeID, startDate, endDate)
}

func (s *activityService) UpsertDaily(activity *domain.DailyActivity) (*domain.DailyActivity, error) {
	if activity.EmployeeID == "" || activity.ActivityDate.IsZero() {
		return nil, ErrInvalidActivity
	}

	if activity.CallsMade < 0 || activity.AppointmentsScheduled < 0 || activity.AppointmentsCompleted < 0 ||
		activity.ApplicationsSubmitted < 0 || activity.PreQualsCompleted < 0 || activity.CreditPulls < 0 ||
		activity.FollowUps < 0 || activity.RealtorMeetings < 0 {
		return nil, ErrInvalidActivity
	}

	return s.dailyRepo.Upsert(activity)
}

func validateCounters(activity *domain.WeeklyActivity) error {
	if activity.FaceToFaceMeetings < 0 || activity.Events < 0 || activity.Videos < 0 ||
		activity.ThankYouCards < 0 || activity.LeadsReceived < 0 {
		return ErrInvalidActivity
	}

	return nil
}
