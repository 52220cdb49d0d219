package service

import (
	"context"
	"fmt"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, userRepo repository.UserRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
	}
}

func (s *equipmentService) AddEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error {
	vendor, err := s.userRepo.GetByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if !vendor.IsKYCVerified {
		return ErrKYCRequired
	}

	if err := validateEquipment(eq); err != nil {
		return err
	}

	eq.VendorID = vendorID
	if eq.Availability == "" {
		eq.Availability = domain.EquipmentAvailable
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor, err := s.userRepo.GetByID(ctx, eq.VendorID); err == nil {
		eq.Vendor = vendor
	}
	return eq, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, vendorID int32, eq *domain.Equipment) error {
	current, err := s.equipmentRepo.GetByID(ctx, eq.ID)
	if err != nil {
		return err
	}
	if current.VendorID != vendorID {
		return ErrNotOwner
	}
	if err := validateEquipment(eq); err != nil {
		return err
	}
	eq.VendorID = current.VendorID
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) RetireEquipment(ctx context.Context, vendorID, id int32) error {
	current, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.VendorID != vendorID {
		return ErrNotOwner
	}
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) ListMyEquipment(ctx context.Context, vendorID, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.ListByVendor(ctx, vendorID, page, pageSize)
}

func (s *equipmentService) SearchEquipment(ctx context.Context, filter repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.Search(ctx, filter, page, pageSize)
}

// validateEquipment checks the enum fields and that both rates are positive.
// weekly_rate <= 7*daily_rate is deliberately not enforced; vendors may price
// weeks however they like.
func validateEquipment(eq *domain.Equipment) error {
	if !eq.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", ErrValidation, eq.Category)
	}
	if !eq.Condition.Valid() {
		return fmt.Errorf("%w: invalid condition %q", ErrValidation, eq.Condition)
	}
	if eq.Availability != "" && !eq.Availability.Valid() {
		return fmt.Errorf("%w: invalid availability %q", ErrValidation, eq.Availability)
	}
	if eq.DailyRate <= 0 || eq.WeeklyRate <= 0 {
		return fmt.Errorf("%w: daily and weekly rates must be positive", ErrValidation)
	}
	return nil
}
