package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/lib/pq"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, booking_id, reviewer_id, ratee_id, role, scores, comment, overall, revealed, created_on`

func scanReview(row interface{ Scan(...interface{}) error }) (*domain.Review, error) {
	rv := &domain.Review{}
	var scores []byte
	err := row.Scan(
		&rv.ID, &rv.BookingID, &rv.ReviewerID, &rv.RateeID, &rv.Role,
		&scores, &rv.Comment, &rv.Overall, &rv.Revealed, &rv.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(scores, &rv.Scores); err != nil {
		return nil, err
	}
	return rv, nil
}

// CreateWithAggregates inserts the review and keeps the derived state
// consistent in one transaction: the ratee's running rating summary is
// recomputed under a row lock, and when the counterpart review for the same
// booking already exists both rows flip to revealed.
func (r *reviewRepository) CreateWithAggregates(ctx context.Context, review *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	scores, err := json.Marshal(review.Scores)
	if err != nil {
		return err
	}

	insert := `INSERT INTO reviews (booking_id, reviewer_id, ratee_id, role, scores, comment, overall, revealed, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		review.BookingID, review.ReviewerID, review.RateeID, review.Role,
		scores, review.Comment, review.Overall, time.Now(),
	).Scan(&review.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return repository.ErrDuplicate
	}
	if err != nil {
		return err
	}

	// Running aggregate for the ratee, locked for the recompute.
	summary := &domain.RatingSummary{UserID: review.RateeID}
	err = tx.QueryRowContext(ctx,
		`SELECT average, count, star_5, star_4, star_3, star_2, star_1 FROM rating_summaries WHERE user_id = $1 FOR UPDATE`,
		review.RateeID,
	).Scan(&summary.Average, &summary.Count, &summary.Star5, &summary.Star4, &summary.Star3, &summary.Star2, &summary.Star1)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	summary.Add(review.Overall)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rating_summaries (user_id, average, count, star_5, star_4, star_3, star_2, star_1)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET average = $2, count = $3, star_5 = $4, star_4 = $5, star_3 = $6, star_2 = $7, star_1 = $8`,
		summary.UserID, summary.Average, summary.Count,
		summary.Star5, summary.Star4, summary.Star3, summary.Star2, summary.Star1,
	)
	if err != nil {
		return err
	}

	// Mutual-blind reveal: both sides become visible only once both exist.
	var counterpart int32
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM reviews WHERE booking_id = $1 AND role = $2`,
		review.BookingID, review.Role.Other(),
	).Scan(&counterpart)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First side in; stays hidden.
	case err != nil:
		return err
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE reviews SET revealed = true WHERE booking_id = $1`, review.BookingID); err != nil {
			return err
		}
		review.Revealed = true
	}

	return tx.Commit()
}

func (r *reviewRepository) GetByBookingAndRole(ctx context.Context, bookingID int32, role domain.ReviewerRole) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1 AND role = $2`
	return scanReview(r.db.QueryRowContext(ctx, query, bookingID, role))
}

func (r *reviewRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) ListRevealedByRatee(ctx context.Context, rateeID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM reviews WHERE ratee_id = $1 AND revealed = true`, rateeID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ratee_id = $1 AND revealed = true ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, rateeID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, count, rows.Err()
}

func (r *reviewRepository) GetSummary(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	s := &domain.RatingSummary{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT average, count, star_5, star_4, star_3, star_2, star_1 FROM rating_summaries WHERE user_id = $1`,
		userID,
	).Scan(&s.Average, &s.Count, &s.Star5, &s.Star4, &s.Star3, &s.Star2, &s.Star1)
	if errors.Is(err, sql.ErrNoRows) {
		// No reviews yet: empty summary, not an error.
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
