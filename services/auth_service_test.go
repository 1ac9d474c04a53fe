package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) authService() *AuthService {
	return NewAuthService(h.users, "test-secret", time.Hour)
}

func TestRegisterCreatesUserRole(t *testing.T) {
	h := newHarness(t)
	svc := h.authService()

	user, err := svc.Register(context.Background(), RegisterInput{Email: "Fan@X.com", Password: "secret1", Name: "Fan"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "fan@x.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "fan@x.com", Password: "secret1", Name: "Fan"})
	assert.True(t, utils.IsConflictError(err))

	_, err = svc.Register(context.Background(), RegisterInput{Email: "b@x.com", Password: "123", Name: "B"})
	require.Error(t, err)
	assert.Contains(t, utils.GetAppError(err).Fields, "password")
}

func TestLoginAndAuthenticate(t *testing.T) {
	h := newHarness(t)
	svc := h.authService()
	_, err := svc.CreateStaff(context.Background(), "mod@x.com", "secret1", "Mod", models.RoleModerator)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{Email: "mod@x.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))

	_, err = svc.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "secret1"})
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))

	result, err := svc.Login(context.Background(), LoginInput{Email: "MOD@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	user, claims, err := svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)
	assert.Equal(t, models.RoleModerator, claims.Role)
	assert.True(t, user.Role.IsStaff())
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	h := newHarness(t)
	svc := h.authService()
	user, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(context.Background(), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))

	other := NewAuthService(h.users, "another-secret", time.Hour)
	forged, _, err := other.GenerateToken(user)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(context.Background(), forged)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))

	expired := h.authService()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.GenerateToken(user)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(context.Background(), stale)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusOf(err))
}

func TestLogoutRevokesToken(t *testing.T) {
	h := newHarness(t)
	svc := h.authService()
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), first.Token))
	require.NoError(t, svc.Logout(context.Background(), first.Token))

	_, _, err = svc.Authenticate(context.Background(), first.Token)
	assert.Equal(t, utils.ErrInvalidToken, utils.GetAppError(err).Message)

	_, _, err = svc.Authenticate(context.Background(), second.Token)
	assert.NoError(t, err)
}

func TestSeedAdmin(t *testing.T) {
	h := newHarness(t)
	svc := h.authService()

	require.NoError(t, svc.SeedAdmin(context.Background(), "", "", "Admin"))
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@x.com", "secret1", "Admin"))
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@x.com", "other-pass", "Admin"))

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	_, err = svc.Login(context.Background(), LoginInput{Email: "admin@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	h := newHarness(t)

	_, err := h.authService().CreateStaff(context.Background(), "a@x.com", "secret1", "A", models.Role("owner"))
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
}
