package middleware

import (
	"context"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// AuthUser is the signed-in account as seen by handlers
type AuthUser struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// Authenticator resolves bearer tokens to accounts
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, *services.TokenClaims, error)
}

// Authenticate rejects requests without a valid, non-revoked bearer token
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			utils.LogDebug("Missing bearer token on %s %s", c.Request.Method, c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrAuthenticationRequired)
			c.Abort()
			return
		}

		user, _, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(userContextKey, AuthUser{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Set(tokenContextKey, token)
		utils.LogDebug("User %s authenticated as %s", user.Email, user.Role)
		c.Next()
	}
}

// RequireRoles allows only the listed roles. It must run after Authenticate.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return requireRole(func(role models.Role) bool { return allowed[role] })
}

// RequireStaff allows the roles models.Role.IsStaff accepts
func RequireStaff() gin.HandlerFunc {
	return requireRole(models.Role.IsStaff)
}

// RequireAdmin allows admins only
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}

func requireRole(allow func(models.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.Unauthorized(c, utils.ErrAuthenticationRequired)
			c.Abort()
			return
		}
		if !allow(user.Role) {
			utils.LogInfo("User %s with role %s denied %s %s", user.Email, user.Role, c.Request.Method, c.Request.URL.Path)
			utils.Forbidden(c, utils.ErrPermissionDenied)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account set by Authenticate
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return AuthUser{}, false
	}
	user, ok := v.(AuthUser)
	return user, ok
}

// CurrentToken returns the bearer token accepted by Authenticate
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
