package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, idempotency_key, equipment_id, equipment_name, customer_id, customer_name,
	customer_email, vendor_id, vendor_name, start_date, end_date, quantity, delivery_option,
	daily_rate, weekly_rate, total_amount, status, cancel_reason, completed_by, version, created_on, updated_on`

func scanBooking(row interface{ Scan(...interface{}) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(
		&b.ID, &b.IdempotencyKey, &b.EquipmentID, &b.EquipmentName, &b.CustomerID, &b.CustomerName,
		&b.CustomerEmail, &b.VendorID, &b.VendorName, &b.StartDate, &b.EndDate, &b.Quantity,
		&b.DeliveryOption, &b.DailyRate, &b.WeeklyRate, &b.TotalAmount, &b.Status,
		&b.CancelReason, &b.CompletedBy, &b.Version, &b.CreatedOn, &b.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (idempotency_key, equipment_id, equipment_name, customer_id, customer_name,
	              customer_email, vendor_id, vendor_name, start_date, end_date, quantity, delivery_option,
	              daily_rate, weekly_rate, total_amount, status, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		b.IdempotencyKey, b.EquipmentID, b.EquipmentName, b.CustomerID, b.CustomerName,
		b.CustomerEmail, b.VendorID, b.VendorName, b.StartDate, b.EndDate, b.Quantity,
		b.DeliveryOption, b.DailyRate, b.WeeklyRate, b.TotalAmount, b.Status, b.Version, now, now,
	).Scan(&b.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		// Idempotent replay: hand back the booking created by the first
		// submission instead of a second row.
		existing, getErr := r.GetByIdempotencyKey(ctx, b.IdempotencyKey)
		if getErr != nil {
			return getErr
		}
		*b = *existing
		return nil
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE idempotency_key = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, key))
}

// UpdateStatus is the single write path for status transitions. The WHERE
// clause carries the version the caller read; zero rows means another writer
// got there first.
func (r *bookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
	          SET status = $1, cancel_reason = $2, completed_by = $3, version = version + 1, updated_on = $4
	          WHERE id = $5 AND version = $6`
	res, err := r.db.ExecContext(ctx, query,
		b.Status, b.CancelReason, b.CompletedBy, time.Now(), b.ID, b.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	b.Version++
	return nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "customer_id", customerID, status, page, pageSize)
}

func (r *bookingRepository) ListByVendor(ctx context.Context, vendorID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "vendor_id", vendorID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, userID int32, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	where := column + ` = $1`
	args := []interface{}{userID}
	if status != "" {
		where += ` AND status = $2`
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) ListElapsedConfirmed(ctx context.Context, before string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND end_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
