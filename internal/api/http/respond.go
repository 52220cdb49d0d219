package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/logger"
	"reelgear-backend/internal/repository"
	"reelgear-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

// pagedResponse is the envelope for list endpoints.
type pagedResponse struct {
	Items interface{} `json:"items"`
	Total int32       `json:"total"`
	Page  int32       `json:"page"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the service-layer error taxonomy onto HTTP codes:
// validation 400, auth 401, ownership 403, missing rows 404, and state or
// uniqueness conflicts 409. Anything unmapped is a 500 with a generic body.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrOwnEquipment),
		errors.Is(err, domain.ErrIncompleteCriteria),
		errors.Is(err, domain.ErrScoreOutOfRange),
		errors.Is(err, domain.ErrUnknownCriterion),
		errors.Is(err, domain.ErrCommentTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotParty),
		errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrKYCRequired):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNotReviewable),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrEquipmentUnavailable),
		errors.Is(err, repository.ErrVersionConflict),
		errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and runs the struct's
// validate tags. A false return means the response is already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
