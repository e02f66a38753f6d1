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
	"github.com/sureshkirannz/EmployeeKPI/pkg/utils"
)

type RealtorPartnerRequest struct {
	Name                 string  `json:"name"`
	Company              *string `json:"company,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	Email                *string `json:"email,omitempty"`
	LastContactDate      string  `json:"last_contact_date,omitempty"`
	RelationshipStrength string  `json:"relationship_strength"`
	LoansReferred        int     `json:"loans_referred"`
	Notes                *string `json:"notes,omitempty"`
}

type ReferralCountRequest struct {
	TotalCount int `json:"total_count"`
}

func ListRealtorPartners(service crm.RelationshipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		partners, err := service.ListPartners(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to list realtor partners", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(partners)
	}
}

func CreateRealtorPartner(service crm.RelationshipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req RealtorPartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		partner, err := partnerFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreatePartner(partner)
		if err != nil {
			writeRealtorError(w, err, "Failed to create realtor partner")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateRealtorPartner(service crm.RelationshipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		partnerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req RealtorPartnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		partner, err := partnerFromRequest(userClaims.UserID, &req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		partner.ID = partnerID

		if err := service.UpdatePartner(userClaims.UserID, partner); err != nil {
			writeRealtorError(w, err, "Failed to update realtor partner")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(partner)
	}
}

func GetPastClients(service crm.RelationshipService) http.HandlerFunc {
	return getReferralCount(service.GetPastClients, "Failed to fetch past clients count")
}

func UpdatePastClients(service crm.RelationshipService) http.HandlerFunc {
	return setReferralCount(service.SetPastClients, "Failed to update past clients count")
}

func GetTopRealtors(service crm.RelationshipService) http.HandlerFunc {
	return getReferralCount(service.GetTopRealtors, "Failed to fetch top realtors count")
}

func UpdateTopRealtors(service crm.RelationshipService) http.HandlerFunc {
	return setReferralCount(service.SetTopRealtors, "Failed to update top realtors count")
}

func getReferralCount(get func(string) (*domain.ReferralCount, error), fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		count, err := get(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(count)
	}
}

func setReferralCount(set func(string, int) (*domain.ReferralCount, error), fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req ReferralCountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		count, err := set(userClaims.UserID, req.TotalCount)
		if err != nil {
			writeRealtorError(w, err, fallback)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(count)
	}
}

func partnerFromRequest(employeeID string, req *RealtorPartnerRequest) (*domain.RealtorPartner, error) {
	lastContact, err := utils.ParseOptionalDate(req.LastContactDate)
	if err != nil {
		return nil, errors.New("last_contact_date must use the YYYY-MM-DD format")
	}

	return &domain.RealtorPartner{
		EmployeeID:           employeeID,
		Name:                 req.Name,
		Company:              req.Company,
		Phone:                req.Phone,
		Email:                req.Email,
		LastContactDate:      lastContact,
		RelationshipStrength: req.RelationshipStrength,
		LoansReferred:        req.LoansReferred,
		Notes:                req.Notes,
	}, nil
}

func writeRealtorError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, crm.ErrInvalidPartner), errors.Is(err, crm.ErrInvalidCount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, crm.ErrPartnerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRealtorNotFound, "Realtor partner not found", nil)

	case errors.Is(err, crm.ErrNotPartnerOwner):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Realtor partner belongs to another employee", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
