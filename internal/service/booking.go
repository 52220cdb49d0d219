package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/pricing"
	"reelgear-backend/internal/repository"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID int32, req BookingRequest) (*domain.Booking, error) {
	start, end, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !req.DeliveryOption.Valid() {
		return nil, fmt.Errorf("%w: invalid delivery option %q", ErrValidation, req.DeliveryOption)
	}

	// Replay of a known idempotency key returns the original booking.
	if req.IdempotencyKey != "" {
		existing, err := s.bookingRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	} else {
		req.IdempotencyKey = uuid.NewString()
	}

	eq, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq.Availability != domain.EquipmentAvailable {
		return nil, ErrEquipmentUnavailable
	}
	if eq.VendorID == customerID {
		return nil, ErrOwnEquipment
	}

	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.userRepo.GetByID(ctx, eq.VendorID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// Rate snapshot: the quote is computed from the listing as it stands
	// now and never recomputed, even if the vendor reprices later.
	quote := pricing.Compute(start, end, eq.DailyRate, eq.WeeklyRate, quantity,
		req.DeliveryOption == domain.DeliveryDelivery)

	booking := &domain.Booking{
		IdempotencyKey: req.IdempotencyKey,
		EquipmentID:    eq.ID,
		EquipmentName:  eq.Name,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name(),
		CustomerEmail:  customer.Email,
		VendorID:       vendor.ID,
		VendorName:     vendor.Name(),
		StartDate:      start.Format(bookingDateLayout),
		EndDate:        end.Format(bookingDateLayout),
		Quantity:       quantity,
		DeliveryOption: req.DeliveryOption,
		DailyRate:      eq.DailyRate,
		WeeklyRate:     eq.WeeklyRate,
		TotalAmount:    quote.Total,
		Status:         domain.BookingStatusPending,
		Version:        1,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendBookingRequested(ctx, vendor.Email, customer.Name(), eq.Name)
	s.notify(ctx, vendor.ID, "New Booking Request",
		fmt.Sprintf("%s requested to book %s", customer.Name(), eq.Name), booking, "BOOKING_REQUESTED")

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Party(userID) == "" {
		return nil, ErrNotParty
	}
	return b, nil
}

func (s *bookingService) ListForUser(ctx context.Context, user *domain.User, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	if user.Role == domain.UserRoleVendor {
		return s.bookingRepo.ListByVendor(ctx, user.ID, status, page, pageSize)
	}
	return s.bookingRepo.ListByCustomer(ctx, user.ID, status, page, pageSize)
}

func (s *bookingService) AcceptBooking(ctx context.Context, vendorID, bookingID, version int32) (*domain.Booking, error) {
	b, err := s.transition(ctx, bookingID, version, domain.BookingStatusConfirmed, func(b *domain.Booking) error {
		if b.VendorID != vendorID {
			return ErrNotParty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendBookingConfirmed(ctx, b.CustomerEmail, b.EquipmentName, b.VendorName)
	s.notify(ctx, b.CustomerID, "Booking Confirmed",
		fmt.Sprintf("Your booking for %s was confirmed by %s", b.EquipmentName, b.VendorName), b, "BOOKING_CONFIRMED")
	return b, nil
}

func (s *bookingService) RejectBooking(ctx context.Context, vendorID, bookingID, version int32, reason string) (*domain.Booking, error) {
	b, err := s.transition(ctx, bookingID, version, domain.BookingStatusCancelled, func(b *domain.Booking) error {
		if b.VendorID != vendorID {
			return ErrNotParty
		}
		b.CancelReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendBookingCancelled(ctx, b.CustomerEmail, b.EquipmentName, reason)
	s.notify(ctx, b.CustomerID, "Booking Rejected",
		fmt.Sprintf("Your booking for %s was rejected", b.EquipmentName), b, "BOOKING_REJECTED")
	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, customerID, bookingID, version int32, reason string) (*domain.Booking, error) {
	b, err := s.transition(ctx, bookingID, version, domain.BookingStatusCancelled, func(b *domain.Booking) error {
		if b.CustomerID != customerID {
			return ErrNotParty
		}
		b.CancelReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	vendor, vendorErr := s.userRepo.GetByID(ctx, b.VendorID)
	if vendorErr == nil {
		_ = s.emailSvc.SendBookingCancelled(ctx, vendor.Email, b.EquipmentName, reason)
	}
	s.notify(ctx, b.VendorID, "Booking Cancelled",
		fmt.Sprintf("%s cancelled the booking for %s", b.CustomerName, b.EquipmentName), b, "BOOKING_CANCELLED")
	return b, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, userID, bookingID, version int32) (*domain.Booking, error) {
	b, err := s.transition(ctx, bookingID, version, domain.BookingStatusCompleted, func(b *domain.Booking) error {
		// Either party may mark the rental returned.
		if b.Party(userID) == "" {
			return ErrNotParty
		}
		b.CompletedBy = &userID
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendBookingCompleted(ctx, b.CustomerEmail, b.EquipmentName, b.TotalAmount)
	if vendor, vendorErr := s.userRepo.GetByID(ctx, b.VendorID); vendorErr == nil {
		_ = s.emailSvc.SendBookingCompleted(ctx, vendor.Email, b.EquipmentName, b.TotalAmount)
	}
	s.notify(ctx, b.CustomerID, "Booking Completed",
		fmt.Sprintf("Your booking for %s is complete. You can now leave a review.", b.EquipmentName), b, "BOOKING_COMPLETED")
	s.notify(ctx, b.VendorID, "Booking Completed",
		fmt.Sprintf("The booking for %s is complete. You can now review the renter.", b.EquipmentName), b, "BOOKING_COMPLETED")
	return b, nil
}

// transition loads the booking, runs the caller's guard, checks the state
// machine and writes the version-checked update.
func (s *bookingService) transition(ctx context.Context, bookingID, version int32, to domain.BookingStatus, guard func(*domain.Booking) error) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := guard(b); err != nil {
		return nil, err
	}
	if !domain.CanTransition(b.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}

	b.Status = to
	b.Version = version
	if err := s.bookingRepo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) notify(ctx context.Context, userID int32, title, message string, b *domain.Booking, event string) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       event,
			"booking_id": fmt.Sprintf("%d", b.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, note)
}

func parseBookingDates(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	start, err := time.Parse(bookingDateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	end, err := time.Parse(bookingDateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	return start, end, nil
}
