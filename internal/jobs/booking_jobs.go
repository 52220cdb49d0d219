package jobs

import (
	"context"
	"fmt"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/logger"
)

// CompleteElapsedBookings moves confirmed bookings whose end date has passed
// to completed, so neither party has to remember to mark the return.
func (jr *JobRunner) CompleteElapsedBookings() {
	jr.runWithRecovery("CompleteElapsedBookings", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		elapsed, err := jr.store.ListElapsedConfirmed(ctx, today)
		if err != nil {
			logger.Error("Failed to list elapsed bookings", "error", err)
			return
		}

		count := 0
		for i := range elapsed {
			b := &elapsed[i]
			b.Status = domain.BookingStatusCompleted
			if err := jr.store.UpdateStatus(ctx, b); err != nil {
				// A concurrent manual completion loses nothing; skip it.
				logger.Warn("Skipped elapsed booking", "booking_id", b.ID, "error", err)
				continue
			}
			count++

			_ = jr.services.Email.SendBookingCompleted(ctx, b.CustomerEmail, b.EquipmentName, b.TotalAmount)
			jr.notifyCompleted(ctx, b.CustomerID, b, "You can now leave a review.")
			jr.notifyCompleted(ctx, b.VendorID, b, "You can now review the renter.")

			logger.Debug("Completed elapsed booking",
				"booking_id", b.ID,
				"customer_id", b.CustomerID,
				"vendor_id", b.VendorID,
				"end_date", b.EndDate)
		}

		logger.Info("Completed elapsed bookings", "count", count)
	})
}

func (jr *JobRunner) notifyCompleted(ctx context.Context, userID int32, b *domain.Booking, hint string) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   "Booking Completed",
		Message: fmt.Sprintf("The booking for %s is complete. %s", b.EquipmentName, hint),
		Attributes: map[string]string{
			"type":       "BOOKING_COMPLETED",
			"booking_id": fmt.Sprintf("%d", b.ID),
		},
	}
	if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
		logger.Warn("Failed to create completion notification", "user_id", userID, "error", err)
	}
}
