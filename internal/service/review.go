package service

import (
	"context"
	"errors"
	"fmt"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

// SubmitReview enforces the rating gate: the booking must be completed, the
// reviewer must be a party to it, each role submits exactly once, all of the
// role's criteria carry a 1-5 score, and the comment fits 500 characters.
func (s *reviewService) SubmitReview(ctx context.Context, reviewerID, bookingID int32, scores map[string]int32, comment string) (*domain.Review, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role := booking.Party(reviewerID)
	if role == "" {
		return nil, ErrNotParty
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, ErrNotReviewable
	}
	if err := domain.ValidateScores(role, scores); err != nil {
		return nil, err
	}
	if len([]rune(comment)) > domain.MaxReviewCommentLen {
		return nil, domain.ErrCommentTooLong
	}

	rateeID := booking.VendorID
	if role == domain.ReviewerRoleVendor {
		rateeID = booking.CustomerID
	}

	review := &domain.Review{
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		RateeID:    rateeID,
		Role:       role,
		Scores:     scores,
		Comment:    comment,
		Overall:    domain.OverallScore(scores),
	}
	if err := s.reviewRepo.CreateWithAggregates(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	reviewer, reviewerErr := s.userRepo.GetByID(ctx, reviewerID)
	ratee, rateeErr := s.userRepo.GetByID(ctx, rateeID)
	if reviewerErr == nil && rateeErr == nil {
		_ = s.emailSvc.SendReviewReceived(ctx, ratee.Email, reviewer.Name(), booking.EquipmentName)
	}
	note := &domain.Notification{
		UserID:  rateeID,
		Title:   "New Review",
		Message: fmt.Sprintf("You received a review for %s", booking.EquipmentName),
		Attributes: map[string]string{
			"type":       "REVIEW_RECEIVED",
			"booking_id": fmt.Sprintf("%d", bookingID),
		},
	}
	_ = s.noteRepo.Create(ctx, note)

	return review, nil
}

// BookingReviews applies the mutual-blind visibility rule: a party always
// sees its own submission, and the counterpart's only once both are in.
func (s *reviewService) BookingReviews(ctx context.Context, userID, bookingID int32) ([]domain.Review, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Party(userID) == "" {
		return nil, ErrNotParty
	}

	all, err := s.reviewRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Review, 0, len(all))
	for _, rv := range all {
		if rv.Revealed || rv.ReviewerID == userID {
			visible = append(visible, rv)
		}
	}
	return visible, nil
}

func (s *reviewService) UserReviews(ctx context.Context, rateeID, page, pageSize int32) ([]domain.Review, int32, error) {
	return s.reviewRepo.ListRevealedByRatee(ctx, rateeID, page, pageSize)
}

func (s *reviewService) UserRating(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	return s.reviewRepo.GetSummary(ctx, userID)
}
