package http

import (
	"net/http"

	"reelgear-backend/internal/service"
)

type KYCHandler struct {
	kycSvc service.KYCService
}

func NewKYCHandler(kycSvc service.KYCService) *KYCHandler {
	return &KYCHandler{kycSvc: kycSvc}
}

// Field names follow the submission payload of the web client.
type kycSubmitRequest struct {
	AadhaarNumber string `json:"aadhaarNumber" validate:"required,numeric,min=12,max=16"`
	Name          string `json:"name" validate:"required"`
	DOB           string `json:"dob" validate:"required,datetime=2006-01-02"`
	Address       string `json:"address" validate:"required"`
}

func (h *KYCHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req kycSubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.kycSvc.Submit(r.Context(), claims.UserID, service.KYCSubmission{
		AadhaarNumber: req.AadhaarNumber,
		Name:          req.Name,
		DOB:           req.DOB,
		Address:       req.Address,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *KYCHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	profile, err := h.kycSvc.Get(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
