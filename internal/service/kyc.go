package service

import (
	"context"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
)

type kycService struct {
	kycRepo  repository.KYCRepository
	userRepo repository.UserRepository
}

func NewKYCService(kycRepo repository.KYCRepository, userRepo repository.UserRepository) KYCService {
	return &kycService{kycRepo: kycRepo, userRepo: userRepo}
}

// Submit records the profile and marks it verified immediately. There is no
// external identity-verification integration; the submission itself is
// treated as verification, mirroring the upstream flow.
func (s *kycService) Submit(ctx context.Context, userID int32, sub KYCSubmission) (*domain.KYCProfile, error) {
	profile := &domain.KYCProfile{
		UserID:       userID,
		AadhaarLast4: domain.MaskAadhaar(sub.AadhaarNumber),
		Name:         sub.Name,
		DOB:          sub.DOB,
		Address:      sub.Address,
		IsVerified:   true,
	}
	if err := s.kycRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetKYCVerified(ctx, userID, true); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *kycService) Get(ctx context.Context, userID int32) (*domain.KYCProfile, error) {
	return s.kycRepo.GetByUserID(ctx, userID)
}
