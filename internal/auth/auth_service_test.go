package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/aman52kwah/kaynetartsphere/internal/auth"
	autherrors "github.com/aman52kwah/kaynetartsphere/internal/auth/errors"
	authMock "github.com/aman52kwah/kaynetartsphere/internal/mock/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ama@example.com").
			Return(auth.User{}, sql.ErrNoRows)

		mockRepo.EXPECT().
			Create(ctx, "Ama Serwaa", "ama@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, name, email, hashed string) (auth.User, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("password123")))
				return auth.User{
					ID:       uuid.New(),
					Name:     name,
					Email:    email,
					Password: hashed,
					Role:     "customer",
				}, nil
			})

		token, resp, err := service.Register(ctx, "Ama Serwaa", "Ama@Example.com ", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ama@example.com", resp.Email)
		assert.Equal(t, "customer", resp.Role)
	})

	t.Run("Email Already Registered", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ama@example.com").
			Return(auth.User{Email: "ama@example.com"}, nil)

		_, _, err := service.Register(ctx, "Ama Serwaa", "ama@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("Repo Lookup Error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ama@example.com").
			Return(auth.User{}, errors.New("connection refused"))

		_, _, err := service.Register(ctx, "Ama Serwaa", "ama@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	pw, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := auth.User{
		ID:       uuid.New(),
		Name:     "Ama Serwaa",
		Email:    "ama@example.com",
		Password: string(pw),
		Role:     "customer",
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ama@example.com").
			Return(user, nil)

		token, resp, err := service.Login(ctx, " Ama@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "customer", resp.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ama@example.com").
			Return(user, nil)

		_, _, err := service.Login(ctx, "ama@example.com", "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(auth.User{}, sql.ErrNoRows)

		_, _, err := service.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().
			GetByID(ctx, id).
			Return(auth.User{ID: id, Name: "Ama Serwaa", Email: "ama@example.com", Role: "customer"}, nil)

		resp, err := service.GetMe(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "ama@example.com", resp.Email)
	})

	t.Run("Invalid User ID", func(t *testing.T) {
		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("User Not Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().
			GetByID(ctx, id).
			Return(auth.User{}, sql.ErrNoRows)

		_, err := service.GetMe(ctx, id.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
