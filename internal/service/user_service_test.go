package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPassword = "password1234567"

func newUserService(t *testing.T, users *mocks.MockUserStore, verifier *mocks.MockPasswordVerifier) service.UserService {
	t.Helper()
	svc, err := service.NewUserService(users, &mocks.MockTransactor{}, verifier, nil)
	require.NoError(t, err)
	return svc
}

func TestRegister(t *testing.T) {
	users := mocks.NewMockUserStore()
	svc := newUserService(t, users, &mocks.MockPasswordVerifier{ShouldSucceed: true})

	user, err := svc.Register(context.Background(), "  Student@Example.com ", validPassword)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", user.Email)
	assert.Contains(t, users.Users, "student@example.com")

	_, err = svc.Register(context.Background(), "student@example.com", validPassword)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := newUserService(t, mocks.NewMockUserStore(), &mocks.MockPasswordVerifier{})

	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
		wantErr   error
	}{
		{"invalid email", "not-an-email", validPassword, "email", domain.ErrInvalidEmail},
		{"short password", "a@example.com", "short", "password", domain.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	dbErr := errors.New("db down")
	users := &mocks.MockUserStore{
		CreateFn: func(ctx context.Context, user *domain.User) error { return dbErr },
	}
	svc := newUserService(t, users, &mocks.MockPasswordVerifier{})

	_, err := svc.Register(context.Background(), "a@example.com", validPassword)
	assert.ErrorIs(t, err, dbErr)

	var svcErr *service.ServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestAuthenticate(t *testing.T) {
	users := mocks.NewMockUserStore()
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	svc := newUserService(t, users, verifier)

	registered, err := svc.Register(context.Background(), "a@example.com", validPassword)
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "a@example.com", validPassword)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, validPassword, verifier.CompareCalledWith.Password)

	verifier.ShouldSucceed = false
	_, err = svc.Authenticate(context.Background(), "a@example.com", "wrong-password-123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", validPassword)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
