package http

import (
	"net/http"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type submitReviewRequest struct {
	Scores  map[string]int32 `json:"scores" validate:"required"`
	Comment string           `json:"comment" validate:"max=500"`
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	bookingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.reviewSvc.SubmitReview(r.Context(), claims.UserID, bookingID, req.Scores, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListForBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	bookingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewSvc.BookingReviews(r.Context(), claims.UserID, bookingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ListForUser exposes the revealed reviews about a user; public.
func (h *ReviewHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	page, pageSize := pagination(r)
	reviews, total, err := h.reviewSvc.UserReviews(r.Context(), userID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: reviews, Total: total, Page: page})
}

type ratingResponse struct {
	*domain.RatingSummary
	DisplayAverage float64 `json:"display_average"`
}

// Rating returns the running aggregate, with the average additionally
// rounded to one decimal for display.
func (h *ReviewHandler) Rating(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.reviewSvc.UserRating(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingResponse{
		RatingSummary:  summary,
		DisplayAverage: domain.DisplayRating(summary.Average),
	})
}
