package postgres

import (
	"context"
	"testing"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Email:        "asha@test.com",
		PasswordHash: "hash",
		FirstName:    "Asha",
		LastName:     "Rao",
		Role:         domain.UserRoleCustomer,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
				user.BusinessName, user.IsKYCVerified, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestUserRepository_SetKYCVerified(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET is_kyc_verified").
			WithArgs(true, sqlmock.AnyArg(), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetKYCVerified(ctx, 7, true))
	})

	t.Run("Unknown User", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET is_kyc_verified").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SetKYCVerified(ctx, 99, true), repository.ErrNotFound)
	})
}
