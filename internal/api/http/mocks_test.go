package http

import (
	"context"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
	"reelgear-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, string, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockKYCService struct{ mock.Mock }

func (m *MockKYCService) Submit(ctx context.Context, userID int32, sub service.KYCSubmission) (*domain.KYCProfile, error) {
	args := m.Called(ctx, userID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KYCProfile), args.Error(1)
}

func (m *MockKYCService) Get(ctx context.Context, userID int32) (*domain.KYCProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KYCProfile), args.Error(1)
}

type MockEquipmentService struct{ mock.Mock }

func (m *MockEquipmentService) AddEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error {
	args := m.Called(ctx, vendorID, eq)
	return args.Error(0)
}

func (m *MockEquipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentService) UpdateEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error {
	args := m.Called(ctx, vendorID, eq)
	return args.Error(0)
}

func (m *MockEquipmentService) RetireEquipment(ctx context.Context, vendorID, id int32) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

func (m *MockEquipmentService) ListMyEquipment(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, vendorID, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

func (m *MockEquipmentService) SearchEquipment(ctx context.Context, filter repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) CreateBooking(ctx context.Context, customerID int32, req service.BookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListForUser(ctx context.Context, user *domain.User, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, user, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

func (m *MockBookingService) AcceptBooking(ctx context.Context, vendorID, bookingID, version int32) (*domain.Booking, error) {
	args := m.Called(ctx, vendorID, bookingID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) RejectBooking(ctx context.Context, vendorID, bookingID, version int32, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, vendorID, bookingID, version, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, customerID, bookingID, version int32, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, customerID, bookingID, version, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CompleteBooking(ctx context.Context, userID, bookingID, version int32) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockReviewService struct{ mock.Mock }

func (m *MockReviewService) SubmitReview(ctx context.Context, reviewerID, bookingID int32, scores map[string]int32, comment string) (*domain.Review, error) {
	args := m.Called(ctx, reviewerID, bookingID, scores, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) BookingReviews(ctx context.Context, userID, bookingID int32) ([]domain.Review, error) {
	args := m.Called(ctx, userID, bookingID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) UserReviews(ctx context.Context, rateeID, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, rateeID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}

func (m *MockReviewService) UserRating(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
