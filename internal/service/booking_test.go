package service

import (
	"context"
	"testing"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingServiceForTest() (BookingService, *MockBookingRepo, *MockEquipmentRepo, *MockUserRepo, *MockNotificationRepo, *MockEmailService) {
	bookingRepo := new(MockBookingRepo)
	equipmentRepo := new(MockEquipmentRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewBookingService(bookingRepo, equipmentRepo, userRepo, noteRepo, emailSvc)
	return svc, bookingRepo, equipmentRepo, userRepo, noteRepo, emailSvc
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	customerID := int32(1)

	equipment := &domain.Equipment{
		ID:           2,
		VendorID:     10,
		Name:         "RED Komodo 6K",
		DailyRate:    400,
		WeeklyRate:   2000,
		Availability: domain.EquipmentAvailable,
	}
	customer := &domain.User{ID: customerID, Email: "renter@test.com", FirstName: "Asha", LastName: "Rao", Role: domain.UserRoleCustomer}
	vendor := &domain.User{ID: 10, Email: "vendor@test.com", FirstName: "Kiran", Role: domain.UserRoleVendor}

	t.Run("Success", func(t *testing.T) {
		svc, bookingRepo, equipmentRepo, userRepo, noteRepo, emailSvc := newBookingServiceForTest()

		equipmentRepo.On("GetByID", ctx, int32(2)).Return(equipment, nil)
		userRepo.On("GetByID", ctx, customerID).Return(customer, nil)
		userRepo.On("GetByID", ctx, int32(10)).Return(vendor, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		emailSvc.On("SendBookingRequested", ctx, "vendor@test.com", "Asha Rao", "RED Komodo 6K").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.CreateBooking(ctx, customerID, BookingRequest{
			EquipmentID:    2,
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-10",
			Quantity:       1,
			DeliveryOption: domain.DeliveryDelivery,
		})
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		assert.Equal(t, int32(1), res.Version)
		// 10 days inclusive: 1 week at 2000 + 3 days at 400, plus flat delivery fee
		assert.Equal(t, int64(3700), res.TotalAmount)
		// Rate snapshot carried on the booking
		assert.Equal(t, int64(400), res.DailyRate)
		assert.Equal(t, int64(2000), res.WeeklyRate)
	})

	t.Run("Idempotent Replay", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()

		existing := &domain.Booking{ID: 42, Status: domain.BookingStatusPending, TotalAmount: 3700}
		bookingRepo.On("GetByIdempotencyKey", ctx, "key-1").Return(existing, nil)

		res, err := svc.CreateBooking(ctx, customerID, BookingRequest{
			IdempotencyKey: "key-1",
			EquipmentID:    2,
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-10",
			DeliveryOption: domain.DeliveryPickup,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(42), res.ID)
		bookingRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Own Equipment", func(t *testing.T) {
		svc, _, equipmentRepo, _, _, _ := newBookingServiceForTest()
		equipmentRepo.On("GetByID", ctx, int32(2)).Return(equipment, nil)

		res, err := svc.CreateBooking(ctx, int32(10), BookingRequest{
			EquipmentID:    2,
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-02",
			DeliveryOption: domain.DeliveryPickup,
		})
		assert.ErrorIs(t, err, ErrOwnEquipment)
		assert.Nil(t, res)
	})

	t.Run("Unavailable Equipment", func(t *testing.T) {
		svc, _, equipmentRepo, _, _, _ := newBookingServiceForTest()
		rented := &domain.Equipment{ID: 2, VendorID: 10, Availability: domain.EquipmentRented, DailyRate: 400, WeeklyRate: 2000}
		equipmentRepo.On("GetByID", ctx, int32(2)).Return(rented, nil)

		_, err := svc.CreateBooking(ctx, customerID, BookingRequest{
			EquipmentID:    2,
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-02",
			DeliveryOption: domain.DeliveryPickup,
		})
		assert.ErrorIs(t, err, ErrEquipmentUnavailable)
	})

	t.Run("End Before Start", func(t *testing.T) {
		svc, _, _, _, _, _ := newBookingServiceForTest()

		_, err := svc.CreateBooking(ctx, customerID, BookingRequest{
			EquipmentID:    2,
			StartDate:      "2025-06-10",
			EndDate:        "2025-06-01",
			DeliveryOption: domain.DeliveryPickup,
		})
		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("Invalid Delivery Option", func(t *testing.T) {
		svc, _, _, _, _, _ := newBookingServiceForTest()

		_, err := svc.CreateBooking(ctx, customerID, BookingRequest{
			EquipmentID:    2,
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-02",
			DeliveryOption: "courier",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		EquipmentName: "RED Komodo 6K",
		CustomerID:    1,
		CustomerName:  "Asha Rao",
		CustomerEmail: "renter@test.com",
		VendorID:      10,
		VendorName:    "Kiran",
		Status:        domain.BookingStatusPending,
		TotalAmount:   3700,
		Version:       1,
	}
}

func TestBookingService_AcceptBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, bookingRepo, _, _, noteRepo, emailSvc := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		emailSvc.On("SendBookingConfirmed", ctx, "renter@test.com", "RED Komodo 6K", "Kiran").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.AcceptBooking(ctx, 10, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	})

	t.Run("Not The Vendor", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)

		_, err := svc.AcceptBooking(ctx, 99, 1, 1)
		assert.ErrorIs(t, err, ErrNotParty)
		bookingRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Customer Cannot Accept", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)

		_, err := svc.AcceptBooking(ctx, 1, 1, 1)
		assert.ErrorIs(t, err, ErrNotParty)
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		b := pendingBooking()
		b.Status = domain.BookingStatusCancelled
		bookingRepo.On("GetByID", ctx, int32(1)).Return(b, nil)

		_, err := svc.AcceptBooking(ctx, 10, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Booking")).Return(repository.ErrVersionConflict)

		_, err := svc.AcceptBooking(ctx, 10, 1, 1)
		assert.ErrorIs(t, err, repository.ErrVersionConflict)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer Cancels Pending", func(t *testing.T) {
		svc, bookingRepo, _, userRepo, noteRepo, emailSvc := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Email: "vendor@test.com"}, nil)
		emailSvc.On("SendBookingCancelled", ctx, "vendor@test.com", "RED Komodo 6K", "plans changed").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.CancelBooking(ctx, 1, 1, 1, "plans changed")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, res.Status)
		assert.Equal(t, "plans changed", res.CancelReason)
	})

	t.Run("Cannot Cancel Confirmed", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		b := pendingBooking()
		b.Status = domain.BookingStatusConfirmed
		bookingRepo.On("GetByID", ctx, int32(1)).Return(b, nil)

		_, err := svc.CancelBooking(ctx, 1, 1, 1, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Vendor Cannot Use Customer Cancel", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)

		_, err := svc.CancelBooking(ctx, 10, 1, 1, "")
		assert.ErrorIs(t, err, ErrNotParty)
	})
}

func TestBookingService_CompleteBooking(t *testing.T) {
	ctx := context.Background()

	confirmed := func() *domain.Booking {
		b := pendingBooking()
		b.Status = domain.BookingStatusConfirmed
		return b
	}

	t.Run("Vendor Marks Returned", func(t *testing.T) {
		svc, bookingRepo, _, userRepo, noteRepo, emailSvc := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(confirmed(), nil)
		bookingRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Email: "vendor@test.com"}, nil)
		emailSvc.On("SendBookingCompleted", ctx, mock.Anything, "RED Komodo 6K", int64(3700)).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.CompleteBooking(ctx, 10, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, res.Status)
		if assert.NotNil(t, res.CompletedBy) {
			assert.Equal(t, int32(10), *res.CompletedBy)
		}
		noteRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Customer Marks Returned", func(t *testing.T) {
		svc, bookingRepo, _, userRepo, noteRepo, emailSvc := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(confirmed(), nil)
		bookingRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Email: "vendor@test.com"}, nil)
		emailSvc.On("SendBookingCompleted", ctx, mock.Anything, "RED Komodo 6K", int64(3700)).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		res, err := svc.CompleteBooking(ctx, 1, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, res.Status)
	})

	t.Run("Pending Cannot Complete", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)

		_, err := svc.CompleteBooking(ctx, 10, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Stranger", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
		bookingRepo.On("GetByID", ctx, int32(1)).Return(confirmed(), nil)

		_, err := svc.CompleteBooking(ctx, 99, 1, 1)
		assert.ErrorIs(t, err, ErrNotParty)
	})
}

func TestBookingService_GetBooking(t *testing.T) {
	ctx := context.Background()
	svc, bookingRepo, _, _, _, _ := newBookingServiceForTest()
	bookingRepo.On("GetByID", ctx, int32(1)).Return(pendingBooking(), nil)

	t.Run("Party Sees It", func(t *testing.T) {
		res, err := svc.GetBooking(ctx, 1, 1)
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})

	t.Run("Stranger Does Not", func(t *testing.T) {
		_, err := svc.GetBooking(ctx, 99, 1)
		assert.ErrorIs(t, err, ErrNotParty)
	})
}
