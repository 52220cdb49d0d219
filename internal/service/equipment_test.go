package service

import (
	"context"
	"testing"

	"reelgear-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validListing() *domain.Equipment {
	return &domain.Equipment{
		Name:       "Aputure 600d",
		Category:   domain.CategoryLighting,
		Condition:  domain.ConditionExcellent,
		DailyRate:  300,
		WeeklyRate: 1500,
	}
}

func TestEquipmentService_AddEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		userRepo := new(MockUserRepo)
		svc := NewEquipmentService(equipmentRepo, userRepo)

		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Role: domain.UserRoleVendor, IsKYCVerified: true}, nil)
		equipmentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		eq := validListing()
		err := svc.AddEquipment(ctx, 10, eq)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), eq.VendorID)
		assert.Equal(t, domain.EquipmentAvailable, eq.Availability)
	})

	t.Run("KYC Required", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		userRepo := new(MockUserRepo)
		svc := NewEquipmentService(equipmentRepo, userRepo)

		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Role: domain.UserRoleVendor, IsKYCVerified: false}, nil)

		err := svc.AddEquipment(ctx, 10, validListing())
		assert.ErrorIs(t, err, ErrKYCRequired)
		equipmentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid Category", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		userRepo := new(MockUserRepo)
		svc := NewEquipmentService(equipmentRepo, userRepo)

		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, IsKYCVerified: true}, nil)

		eq := validListing()
		eq.Category = "drones"
		err := svc.AddEquipment(ctx, 10, eq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Non-Positive Rate", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		userRepo := new(MockUserRepo)
		svc := NewEquipmentService(equipmentRepo, userRepo)

		userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, IsKYCVerified: true}, nil)

		eq := validListing()
		eq.DailyRate = 0
		err := svc.AddEquipment(ctx, 10, eq)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestEquipmentService_Ownership(t *testing.T) {
	ctx := context.Background()

	stored := &domain.Equipment{ID: 5, VendorID: 10, Name: "Aputure 600d",
		Category: domain.CategoryLighting, Condition: domain.ConditionExcellent, DailyRate: 300, WeeklyRate: 1500}

	t.Run("Update By Stranger", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockUserRepo))
		equipmentRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)

		eq := validListing()
		eq.ID = 5
		err := svc.UpdateEquipment(ctx, 99, eq)
		assert.ErrorIs(t, err, ErrNotOwner)
		equipmentRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Retire By Stranger", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockUserRepo))
		equipmentRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)

		err := svc.RetireEquipment(ctx, 99, 5)
		assert.ErrorIs(t, err, ErrNotOwner)
		equipmentRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Retire By Owner", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockUserRepo))
		equipmentRepo.On("GetByID", ctx, int32(5)).Return(stored, nil)
		equipmentRepo.On("Delete", ctx, int32(5)).Return(nil)

		err := svc.RetireEquipment(ctx, 10, 5)
		assert.NoError(t, err)
	})
}
