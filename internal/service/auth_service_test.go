package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   5,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
			MinPasswordLength:       8,
		},
	}
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, events.Dispatcher) {
	t.Helper()
	users := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users, Dispatcher: dispatcher})
	return svc, users, dispatcher
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestRegister_CreatesCustomerWithToken(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	user, token, exp, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "long enough"))
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Other", "ana@example.com", "different pw")
	assert.Equal(t, "CONFLICT", errCode(t, err))
	all, _ := users.List(context.Background(), 0, 0)
	assert.Len(t, all, 1, "no duplicate row created")
}

func TestRegister_EmailSendFailureDoesNotFailSignup(t *testing.T) {
	users := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		return errors.New("smtp unreachable")
	})
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users, Dispatcher: dispatcher})

	user, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestLogin_UniformFailureForUnknownAndWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	_, _, _, wrongErr := svc.Login(context.Background(), "ana@example.com", "not the pw")
	assert.Equal(t, "UNAUTHORIZED", errCode(t, unknownErr))
	assert.Equal(t, "UNAUTHORIZED", errCode(t, wrongErr))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_Succeeds(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "ana@example.com", "long enough")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", user.Email)
}

func registeredUserWithResetToken(t *testing.T, svc *AuthService, users *fakeUserRepo) string {
	t.Helper()
	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough")
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ana@example.com"))

	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetToken)
	return *stored.ResetToken
}

func TestValidateResetToken_LiveToken(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	token := registeredUserWithResetToken(t, svc, users)
	assert.NoError(t, svc.ValidateResetToken(context.Background(), token))
}

func TestValidateResetToken_WrongAndExpiredIndistinguishable(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	token := registeredUserWithResetToken(t, svc, users)

	wrongErr := svc.ValidateResetToken(context.Background(), "never-issued")

	// force expiry and retry with the real token
	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, users.SetResetToken(context.Background(), stored.ID, token, time.Now().Add(-time.Minute)))
	expiredErr := svc.ValidateResetToken(context.Background(), token)

	assert.Equal(t, "INVALID_RESET_TOKEN", errCode(t, wrongErr))
	assert.Equal(t, "INVALID_RESET_TOKEN", errCode(t, expiredErr))
	assert.Equal(t, wrongErr.Error(), expiredErr.Error())
}

func TestResetPassword_OneTimeUse(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	token := registeredUserWithResetToken(t, svc, users)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "brand new password"))

	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetExpiresAt)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "brand new password"))

	err = svc.ResetPassword(context.Background(), token, "another password")
	assert.Equal(t, "INVALID_RESET_TOKEN", errCode(t, err))
}

func TestResetPassword_WeakPasswordLeavesStateUntouched(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	token := registeredUserWithResetToken(t, svc, users)

	before, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "short1")
	assert.Equal(t, "WEAK_PASSWORD", errCode(t, err))

	after, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	require.NotNil(t, after.ResetToken)
	assert.Equal(t, token, *after.ResetToken)
}

func TestResetPassword_SameHashAlgorithmAsSignup(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	token := registeredUserWithResetToken(t, svc, users)
	require.NoError(t, svc.ResetPassword(context.Background(), token, "brand new password"))

	// the reset hash must verify through the same bcrypt path login uses
	_, _, _, err := svc.Login(context.Background(), "ana@example.com", "brand new password")
	assert.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.Equal(t, "NOT_FOUND", errCode(t, err))
}
