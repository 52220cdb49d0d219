package postgres

import (
	"database/sql"

	"reelgear-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EquipmentRepository
	repository.BookingRepository
	repository.ReviewRepository
	repository.KYCRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		BookingRepository:      NewBookingRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		KYCRepository:          NewKYCRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
