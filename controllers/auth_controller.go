package controllers

import (
	"github.com/Govind-619/TurboLeague/middleware"
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// AuthController serves sign-up, sign-in and account endpoints
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates an AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid register request: %v", err)
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, expiresAt, err := ac.auth.GenerateToken(user)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate token", err))
		return
	}
	utils.Created(c, utils.MsgUserRegistered, services.LoginResult{Token: token, ExpiresAt: expiresAt, User: user})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req services.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	result, err := ac.auth.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgLoginSuccess, result)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	utils.LogInfo("Logout called")

	if err := ac.auth.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}

// GET /api/users/me
func (ac *AuthController) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrAuthenticationRequired)
		return
	}
	utils.LogInfo("GetCurrentUser called for %s", current.Email)

	user, err := ac.auth.GetUser(c.Request.Context(), current.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgUserRetrieved, gin.H{
		"user":    user,
		"isStaff": user.Role.IsStaff(),
	})
}

// GET /api/users
func (ac *AuthController) ListUsers(c *gin.Context) {
	utils.LogInfo("ListUsers called")

	users, err := ac.auth.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgUsersRetrieved, users)
}
