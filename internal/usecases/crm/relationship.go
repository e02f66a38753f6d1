package crm

import (
	"errors"

	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
)

var (
	ErrInvalidPartner  = errors.New("invalid realtor partner")
	ErrPartnerNotFound = errors.New("realtor partner not found")
	ErrNotPartnerOwner = errors.New("realtor partner belongs to another employee")
	ErrInvalidCount    = errors.New("referral count must not be negative")
)

var relationshipStrengths = map[string]bool{
	domain.RelationshipNew:    true,
	domain.RelationshipWarm:   true,
	domain.RelationshipStrong: true,
}

// RelationshipService manages realtor partners and the past-client and
// top-realtor referral tallies.
type RelationshipService interface {
	ListPartners(employeeID string) ([]*domain.RealtorPartner, error)
	CreatePartner(partner *domain.RealtorPartner) (*domain.RealtorPartner, error)
	UpdatePartner(employeeID string, partner *domain.RealtorPartner) error
	GetPastClients(employeeID string) (*domain.ReferralCount, error)
	SetPastClients(employeeID string, totalCount int) (*domain.ReferralCount, error)
	GetTopRealtors(employeeID string) (*domain.ReferralCount, error)
	SetTopRealtors(employeeID string, totalCount int) (*domain.ReferralCount, error)
}

type relationshipService struct {
	partnerRepo    repository.RealtorPartnerRepository
	pastClientRepo repository.ReferralCountRepository
	topRealtorRepo repository.ReferralCountRepository
}

func NewRelationshipService(
	partnerRepo repository.RealtorPartnerRepository,
	pastClientRepo repository.ReferralCountRepository,
	topRealtorRepo repository.ReferralCountRepository,
) RelationshipService {
	return &relationshipService{
		partnerRepo:    partnerRepo,
		pastClientRepo: pastClientRepo,
		topRealtorRepo: topRealtorRepo,
	}
}

func (s *relationshipService) ListPartners(employeeID string) ([]*domain.RealtorPartner, error) {
	return s.partnerRepo.ListByEmployee(employeeID)
}

func (s *relationshipService) CreatePartner(partner *domain.RealtorPartner) (*domain.RealtorPartner, error) {
	if partner.EmployeeID == "" || partner.Name == "" {
		return nil, ErrInvalidPartner
	}

	if partner.RelationshipStrength == "" {
		partner.RelationshipStrength = domain.RelationshipNew
	}
	if !relationshipStrengths[partner.RelationshipStrength] {
		return nil, ErrInvalidPartner
	}

	if partner.LoansReferred < 0 {
		return nil, ErrInvalidPartner
	}

	return s.partnerRepo.Create(partner)
}

func (s *relationshipService) UpdatePartner(employeeID string, partner *domain.RealtorPartner) error {
	if partner.Name == "" || !relationshipStrengths[partner.RelationshipStrength] || partner.LoansReferred < 0 {
		return ErrInvalidPartner
	}

	existing, err := s.partnerRepo.GetByID(partner.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPartnerNotFound
	}
	if existing.EmployeeID != employeeID {
		return ErrNotPartnerOwner
	}

	partner.EmployeeID = employeeID
	return s.partnerRepo.Update(partner)
}

func (s *relationshipService) GetPastClients(employeeID string) (*domain.ReferralCount, error) {
	return s.getCount(s.pastClientRepo, employeeID)
}

func (s *relationshipService) SetPastClients(employeeID string, totalCount int) (*domain.ReferralCount, error) {
	return s.setCount(s.pastClientRepo, employeeID, totalCount)
}

func (s *relationshipService) GetTopRealtors(employeeID string) (*domain.ReferralCount, error) {
	return s.getCount(s.topRealtorRepo, employeeID)
}

func (s *relationshipService) SetTopRealtors(employeeID string, totalCount int) (*domain.ReferralCount, error) {
	return s.setCount(s.topRealtorRepo, employeeID, totalCount)
}

// getCount returns a zero-value tally when none has been saved yet, so the
// UI always has a number to show.
func (s *relationshipService) getCount(repo repository.ReferralCountRepository, employeeID string) (*domain.ReferralCount, error) {
	count, err := repo.GetByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return &domain.ReferralCount{EmployeeID: employeeID, TotalCount: 0}, nil
	}

	return count, nil
}

func (s *relationshipService) setCount(repo repository.ReferralCountRepository, employeeID string, totalCount int) (*domain.ReferralCount, error) {
	if totalCount < 0 {
		return nil, ErrInvalidCount
	}

	return repo.Upsert(&domain.ReferralCount{
		EmployeeID: employeeID,
		TotalCount: totalCount,
	})
}
