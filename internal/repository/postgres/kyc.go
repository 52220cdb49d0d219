package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
)

type kycRepository struct {
	db *sql.DB
}

func NewKYCRepository(db *sql.DB) repository.KYCRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) Upsert(ctx context.Context, p *domain.KYCProfile) error {
	query := `INSERT INTO kyc_profiles (user_id, aadhaar_last4, name, dob, address, is_verified, verification_timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id) DO UPDATE SET aadhaar_last4 = $2, name = $3, dob = $4, address = $5, is_verified = $6, verification_timestamp = $7
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.UserID, p.AadhaarLast4, p.Name, p.DOB, p.Address, p.IsVerified, time.Now(),
	).Scan(&p.ID)
}

func (r *kycRepository) GetByUserID(ctx context.Context, userID int32) (*domain.KYCProfile, error) {
	p := &domain.KYCProfile{}
	query := `SELECT id, user_id, aadhaar_last4, name, dob, address, is_verified, verification_timestamp
	          FROM kyc_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.AadhaarLast4, &p.Name, &p.DOB, &p.Address, &p.IsVerified, &p.VerificationTimestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
