package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
)

func newRelationshipService(t *testing.T) (RelationshipService, *mocks.MockRealtorPartnerRepository, *mocks.MockReferralCountRepository, *mocks.MockReferralCountRepository) {
	ctrl := gomock.NewController(t)
	partnerRepo := mocks.NewMockRealtorPartnerRepository(ctrl)
	pastClientRepo := mocks.NewMockReferralCountRepository(ctrl)
	topRealtorRepo := mocks.NewMockReferralCountRepository(ctrl)
	service := NewRelationshipService(partnerRepo, pastClientRepo, topRealtorRepo)
	return service, partnerRepo, pastClientRepo, topRealtorRepo
}

func TestCreatePartnerDefaultsStrength(t *testing.T) {
	service, partnerRepo, _, _ := newRelationshipService(t)

	partner := &domain.RealtorPartner{
		EmployeeID: "emp-1",
		Name:       "Casey Realtor",
	}

	partnerRepo.EXPECT().Create(partner).Return(partner, nil)

	created, err := service.CreatePartner(partner)
	require.NoError(t, err)
	assert.Equal(t, domain.RelationshipNew, created.RelationshipStrength)
}

func TestCreatePartnerRejectsUnknownStrength(t *testing.T) {
	service, _, _, _ := newRelationshipService(t)

	_, err := service.CreatePartner(&domain.RealtorPartner{
		EmployeeID:           "emp-1",
		Name:                 "Casey Realtor",
		RelationshipStrength: "best-friends",
	})
	assert.ErrorIs(t, err, ErrInvalidPartner)
}

func TestUpdatePartnerOwnership(t *testing.T) {
	service, partnerRepo, _, _ := newRelationshipService(t)

	partnerRepo.EXPECT().GetByID("partner-1").Return(&domain.RealtorPartner{
		ID:         "partner-1",
		EmployeeID: "emp-2",
	}, nil)

	err := service.UpdatePartner("emp-1", &domain.RealtorPartner{
		ID:                   "partner-1",
		Name:                 "Casey Realtor",
		RelationshipStrength: domain.RelationshipWarm,
	})
	assert.ErrorIs(t, err, ErrNotPartnerOwner)
}

func TestGetPastClientsDefaultsToZero(t *testing.T) {
	service, _, pastClientRepo, _ := newRelationshipService(t)

	pastClientRepo.EXPECT().GetByEmployee("emp-1").Return(nil, nil)

	count, err := service.GetPastClients("emp-1")
	require.NoError(t, err)
	require.NotNil(t, count)
	assert.Equal(t, "emp-1", count.EmployeeID)
	assert.Equal(t, 0, count.TotalCount)
}

func TestSetTopRealtorsRejectsNegativeCount(t *testing.T) {
	service, _, _, _ := newRelationshipService(t)

	_, err := service.SetTopRealtors("emp-1", -4)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSetPastClients(t *testing.T) {
	service, _, pastClientRepo, _ := newRelationshipService(t)

	pastClientRepo.EXPECT().Upsert(&domain.ReferralCount{
		EmployeeID: "emp-1",
		TotalCount: 37,
	}).DoAndReturn(func(count *domain.ReferralCount) (*domain.ReferralCount, error) {
		count.ID = "count-1"
		return count, nil
	})

	count, err := service.SetPastClients("emp-1", 37)
	require.NoError(t, err)
	assert.Equal(t, 37, count.TotalCount)
}
