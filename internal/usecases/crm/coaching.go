package crm

import (
	"errors"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

var (
	ErrInvalidNote  = errors.New("invalid coaching note")
	ErrNoteNotFound = errors.New("coaching note not found")
)

var noteTypes = map[string]bool{
	domain.NoteTypeFeedback:    true,
	domain.NoteTypeGoal:        true,
	domain.NoteTypeRecognition: true,
}

// CoachingService manages manager feedback notes. Private notes are only
// returned to admins.
type CoachingService interface {
	ListNotes(employeeID string, includePrivate bool) ([]*domain.CoachingNote, error)
	CreateNote(note *domain.CoachingNote) (*domain.CoachingNote, error)
	DeleteNote(noteID string) error
}

type coachingService struct {
	noteRepo repository.CoachingNoteRepository
}

func NewCoachingService(noteRepo repository.CoachingNoteRepository) CoachingService {
	return &coachingService{
		noteRepo: noteRepo,
	}
}

func (s *coachingService) ListNotes(employeeID string, includePrivate bool) ([]*domain.CoachingNote, error) {
	return s.noteRepo.ListByEmployee(employeeID, includePrivate)
}

func (s *coachingService) CreateNote(note *domain.CoachingNote) (*domain.CoachingNote, error) {
	if note.EmployeeID == "" || note.ManagerID == "" || note.Subject == "" || note.Content == "" {
		return nil, ErrInvalidNote
	}

	if note.NoteType == "" {
		note.NoteType = domain.NoteTypeFeedback
	}
	if !noteTypes[note.NoteType] {
		return nil, ErrInvalidNote
	}

	return s.noteRepo.Create(note)
}

func (s *coachingService) DeleteNote(noteID string) error {
	existing, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNoteNotFound
	}

	return s.noteRepo.Delete(noteID)
}
