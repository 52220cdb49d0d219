package http

import (
	"net/http"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
	authSvc    service.AuthService
}

func NewBookingHandler(bookingSvc service.BookingService, authSvc service.AuthService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, authSvc: authSvc}
}

type createBookingRequest struct {
	EquipmentID    int32  `json:"equipment_id" validate:"required,gt=0"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Quantity       int32  `json:"quantity"`
	DeliveryOption string `json:"delivery_option" validate:"required,oneof=pickup delivery"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// The header form takes precedence over the body field.
	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		key = req.IdempotencyKey
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), claims.UserID, service.BookingRequest{
		IdempotencyKey: key,
		EquipmentID:    req.EquipmentID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Quantity:       req.Quantity,
		DeliveryOption: domain.DeliveryOption(req.DeliveryOption),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// List returns the caller's side of the marketplace, optionally filtered by
// status: a customer sees bookings they placed, a vendor the bookings on
// their listings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	status := domain.BookingStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	user, err := h.authSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	page, pageSize := pagination(r)
	items, total, err := h.bookingSvc.ListForUser(r.Context(), user, status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: items, Total: total, Page: page})
}

type statusUpdateRequest struct {
	Action  string `json:"action" validate:"required,oneof=accept reject cancel complete"`
	Version int32  `json:"version" validate:"required,gt=0"`
	Reason  string `json:"reason"`
}

// UpdateStatus is the single transition endpoint. The version field carries
// the client's last-read booking version; a stale version gets a 409.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req statusUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var booking *domain.Booking
	var err error
	switch req.Action {
	case "accept":
		booking, err = h.bookingSvc.AcceptBooking(r.Context(), claims.UserID, id, req.Version)
	case "reject":
		booking, err = h.bookingSvc.RejectBooking(r.Context(), claims.UserID, id, req.Version, req.Reason)
	case "cancel":
		booking, err = h.bookingSvc.CancelBooking(r.Context(), claims.UserID, id, req.Version, req.Reason)
	case "complete":
		booking, err = h.bookingSvc.CompleteBooking(r.Context(), claims.UserID, id, req.Version)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
