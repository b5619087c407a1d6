package service_test

import (
	"context"
	"testing"

	"advocate-backend/service"
	"advocate-backend/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() *service.AuthService {
	return service.NewAuthService(
		service.AuthWithUserStore(servicetest.NewUserStore()),
		service.AuthWithSessionStore(servicetest.NewSessionStore()),
		service.AuthWithBcryptCost(bcrypt.MinCost),
	)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterRequest{Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrInvalidRegistration)

	_, err = svc.Register(ctx, service.RegisterRequest{Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, service.ErrInvalidRegistration)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, service.RegisterRequest{Email: "Asha@Example.com", Password: "password123", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.User.Email)
	assert.NotEqual(t, "password123", result.User.PasswordHash)

	_, err = svc.Register(ctx, service.RegisterRequest{Email: "asha@example.com", Password: "password456"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginAuthenticateLogout(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterRequest{Email: "asha@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, service.LoginRequest{Email: "asha@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, service.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	login, err := svc.Login(ctx, service.LoginRequest{Email: "ASHA@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	user, err := svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)

	require.NoError(t, svc.Logout(ctx, login.Token))

	_, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
