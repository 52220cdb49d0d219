package repository

import (
	"context"
	"errors"

	"reelgear-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a row does not exist or is soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict is returned when an optimistic-concurrency update
	// matched no row because another writer bumped the version first.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicate is returned on unique-constraint violations other than
	// idempotent booking replays (duplicate email, duplicate review).
	ErrDuplicate = errors.New("already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetKYCVerified(ctx context.Context, userID int32, verified bool) error
}

// EquipmentFilter narrows the public catalog listing. Zero values mean
// "no constraint".
type EquipmentFilter struct {
	Query        string
	Category     domain.EquipmentCategory
	MaxDailyRate int64
	Availability domain.EquipmentAvailability
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	ListByVendor(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error)
	Search(ctx context.Context, filter EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error)
}

type BookingRepository interface {
	// Create inserts the booking, or returns the existing row untouched
	// when the idempotency key has been seen before.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	// UpdateStatus writes the new status only if the stored version still
	// equals b.Version, bumping the version on success. Returns
	// ErrVersionConflict otherwise.
	UpdateStatus(ctx context.Context, b *domain.Booking) error
	ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByVendor(ctx context.Context, vendorID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListElapsedConfirmed returns confirmed bookings whose end date is
	// strictly before the given date (YYYY-MM-DD).
	ListElapsedConfirmed(ctx context.Context, before string) ([]domain.Booking, error)
}

type ReviewRepository interface {
	// CreateWithAggregates runs the whole review write in one transaction:
	// insert the review, recompute the ratee's rating summary, and when the
	// counterpart review already exists flip revealed on both rows.
	CreateWithAggregates(ctx context.Context, review *domain.Review) error
	GetByBookingAndRole(ctx context.Context, bookingID int32, role domain.ReviewerRole) (*domain.Review, error)
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.Review, error)
	ListRevealedByRatee(ctx context.Context, rateeID int32, page, pageSize int32) ([]domain.Review, int32, error)
	GetSummary(ctx context.Context, userID int32) (*domain.RatingSummary, error)
}

type KYCRepository interface {
	Upsert(ctx context.Context, profile *domain.KYCProfile) error
	GetByUserID(ctx context.Context, userID int32) (*domain.KYCProfile, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
