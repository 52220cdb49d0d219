package service

import (
	"context"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
)

type RegisterInput struct {
	Email        string
	Password     string
	Password2    string
	FirstName    string
	LastName     string
	Role         domain.UserRole
	BusinessName string
}

type AuthService interface {
	// Register creates the account and logs it in immediately, returning
	// access and refresh tokens alongside the user.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type KYCSubmission struct {
	AadhaarNumber string
	Name          string
	DOB           string
	Address       string
}

type KYCService interface {
	// Submit stores the profile, marks it verified and flips the user's
	// is_kyc_verified flag.
	Submit(ctx context.Context, userID int32, sub KYCSubmission) (*domain.KYCProfile, error)
	Get(ctx context.Context, userID int32) (*domain.KYCProfile, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error
	RetireEquipment(ctx context.Context, vendorID, id int32) error
	ListMyEquipment(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error)
	SearchEquipment(ctx context.Context, filter repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error)
}

type BookingRequest struct {
	IdempotencyKey string
	EquipmentID    int32
	StartDate      string
	EndDate        string
	Quantity       int32
	DeliveryOption domain.DeliveryOption
}

type BookingService interface {
	CreateBooking(ctx context.Context, customerID int32, req BookingRequest) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	// ListForUser returns the user's side of the marketplace: a customer's
	// own bookings, or the bookings on a vendor's equipment.
	ListForUser(ctx context.Context, user *domain.User, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	AcceptBooking(ctx context.Context, vendorID, bookingID, version int32) (*domain.Booking, error)
	RejectBooking(ctx context.Context, vendorID, bookingID, version int32, reason string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, customerID, bookingID, version int32, reason string) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, userID, bookingID, version int32) (*domain.Booking, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, reviewerID, bookingID int32, scores map[string]int32, comment string) (*domain.Review, error)
	// BookingReviews returns the caller's own review always, and the
	// counterpart's only once both sides are in.
	BookingReviews(ctx context.Context, userID, bookingID int32) ([]domain.Review, error)
	UserReviews(ctx context.Context, rateeID, page, pageSize int32) ([]domain.Review, int32, error)
	UserRating(ctx context.Context, userID int32) (*domain.RatingSummary, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendBookingRequested(ctx context.Context, vendorEmail, customerName, equipmentName string) error
	SendBookingConfirmed(ctx context.Context, customerEmail, equipmentName, vendorName string) error
	SendBookingCancelled(ctx context.Context, email, equipmentName, reason string) error
	SendBookingCompleted(ctx context.Context, email, equipmentName string, totalAmount int64) error
	SendReviewReceived(ctx context.Context, email, reviewerName, equipmentName string) error
}
