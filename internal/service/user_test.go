package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/service/ports/mocks"
	"github.com/07-Dili/Bike-RentalBooking-System/internal/token"
)

func newAuthService(t *testing.T) (*mocks.MockUserRepo, *AuthService) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	return repo, NewAuthService(repo, "jwt-secret", time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo, svc := newAuthService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, tok, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

	claims, err := token.Parse(tok, "jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestAuthService_Register_Validation(t *testing.T) {
	_, svc := newAuthService(t)

	tests := []struct {
		name  string
		input domain.RegisterInput
	}{
		{"empty name", domain.RegisterInput{Email: "a@b.c", Password: "longenough"}},
		{"empty email", domain.RegisterInput{Name: "a", Password: "longenough"}},
		{"short password", domain.RegisterInput{Name: "a", Email: "a@b.c", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo, svc := newAuthService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "taken@example.com",
		Password: "correct horse",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	user, tok, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	claims, err := token.Parse(tok, "jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo, svc := newAuthService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	// unknown email and wrong password look the same to the caller
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
