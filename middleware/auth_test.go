package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthenticator struct {
	users map[string]*models.User
}

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*models.User, *services.TokenClaims, error) {
	user, ok := f.users[token]
	if !ok {
		return nil, nil, utils.UnauthorizedError(utils.ErrInvalidToken, nil)
	}
	return user, &services.TokenClaims{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := fakeAuthenticator{users: map[string]*models.User{
		"admin-token": {Base: models.Base{ID: "u1"}, Email: "admin@x.com", Role: models.RoleAdmin},
		"mod-token":   {Base: models.Base{ID: "u2"}, Email: "mod@x.com", Role: models.RoleModerator},
		"user-token":  {Base: models.Base{ID: "u3"}, Email: "user@x.com", Role: models.RoleUser},
		"odd-token":   {Base: models.Base{ID: "u4"}, Email: "odd@x.com", Role: models.Role("superuser")},
	}}

	r := gin.New()
	ok := func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "token": CurrentToken(c)})
	}
	r.GET("/me", Authenticate(auth), ok)
	r.GET("/staff", Authenticate(auth), RequireStaff(), ok)
	r.GET("/admin", Authenticate(auth), RequireAdmin(), ok)
	r.GET("/unauthenticated-admin", RequireAdmin(), ok)
	r.GET("/unauthenticated-staff", RequireStaff(), ok)
	return r
}

func request(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthenticate(t *testing.T) {
	r := setupRouter()

	assert.Equal(t, http.StatusUnauthorized, request(r, "/me", ""))
	assert.Equal(t, http.StatusUnauthorized, request(r, "/me", "forged"))
	assert.Equal(t, http.StatusOK, request(r, "/me", "user-token"))
}

func TestRequireRoles(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		path   string
		token  string
		status int
	}{
		{"/staff", "admin-token", http.StatusOK},
		{"/staff", "mod-token", http.StatusOK},
		{"/staff", "user-token", http.StatusForbidden},
		{"/staff", "odd-token", http.StatusForbidden},
		{"/unauthenticated-staff", "", http.StatusUnauthorized},
		{"/admin", "admin-token", http.StatusOK},
		{"/admin", "mod-token", http.StatusForbidden},
		{"/admin", "user-token", http.StatusForbidden},
		{"/admin", "odd-token", http.StatusForbidden},
		{"/unauthenticated-admin", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.status, request(r, tt.path, tt.token))
		})
	}
}
