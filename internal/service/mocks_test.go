package service

import (
	"context"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) SetKYCVerified(ctx context.Context, userID int32, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepo) ListByVendor(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, vendorID, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

func (m *MockEquipmentRepo) Search(ctx context.Context, filter repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

func (m *MockBookingRepo) ListByVendor(ctx context.Context, vendorID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, vendorID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

func (m *MockBookingRepo) ListElapsedConfirmed(ctx context.Context, before string) ([]domain.Booking, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockReviewRepo struct{ mock.Mock }

func (m *MockReviewRepo) CreateWithAggregates(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByBookingAndRole(ctx context.Context, bookingID int32, role domain.ReviewerRole) (*domain.Review, error) {
	args := m.Called(ctx, bookingID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Review, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) ListRevealedByRatee(ctx context.Context, rateeID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, rateeID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}

func (m *MockReviewRepo) GetSummary(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

type MockKYCRepo struct{ mock.Mock }

func (m *MockKYCRepo) Upsert(ctx context.Context, profile *domain.KYCProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockKYCRepo) GetByUserID(ctx context.Context, userID int32) (*domain.KYCProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KYCProfile), args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendBookingRequested(ctx context.Context, vendorEmail, customerName, equipmentName string) error {
	args := m.Called(ctx, vendorEmail, customerName, equipmentName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingConfirmed(ctx context.Context, customerEmail, equipmentName, vendorName string) error {
	args := m.Called(ctx, customerEmail, equipmentName, vendorName)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingCancelled(ctx context.Context, email, equipmentName, reason string) error {
	args := m.Called(ctx, email, equipmentName, reason)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingCompleted(ctx context.Context, email, equipmentName string, totalAmount int64) error {
	args := m.Called(ctx, email, equipmentName, totalAmount)
	return args.Error(0)
}

func (m *MockEmailService) SendReviewReceived(ctx context.Context, email, reviewerName, equipmentName string) error {
	args := m.Called(ctx, email, reviewerName, equipmentName)
	return args.Error(0)
}
