package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// DefaultTokenTTL is used when no token lifetime is configured
const DefaultTokenTTL = 7 * 24 * time.Hour

// RegisterInput is the public account signup form. Accounts created this way
// always get the user role.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// LoginInput is the sign-in form
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the issued token and the signed-in account
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// TokenClaims is the decoded content of an access token
type TokenClaims struct {
	UserID    string
	Email     string
	Role      models.Role
	ExpiresAt time.Time
}

// AuthService issues and checks access tokens
type AuthService struct {
	users  *repository.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates an AuthService signing tokens with secret
func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Register creates a user-role account
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.createUser(ctx, in.Email, in.Password, in.Name, models.RoleUser)
}

// CreateStaff creates an account with any role. Only reachable from the CLI.
func (s *AuthService) CreateStaff(ctx context.Context, email, password, name string, role models.Role) (*models.User, error) {
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, utils.BadRequestError(err.Error(), nil)
	}
	return s.createUser(ctx, email, password, name, role)
}

func (s *AuthService) createUser(ctx context.Context, email, password, name string, role models.Role) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	fields := map[string]string{}
	if !utils.ValidateEmail(email) {
		fields["email"] = "Please provide a valid email"
	}
	if len(password) < utils.MinPasswordLength {
		fields["password"] = fmt.Sprintf("Password must be at least %d characters", utils.MinPasswordLength)
	}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if len(fields) > 0 {
		return nil, utils.ValidationFailed(utils.ErrValidation, fields)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.InternalError("Failed to hash password", err)
	}

	user := &models.User{Email: email, Password: hash, Name: name, Role: role}
	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ConflictError(utils.ErrUserAlreadyExists, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to create user", err)
	}
	utils.LogInfo("Created %s account %s", user.Role, user.Email)
	return user, nil
}

// SeedAdmin creates the bootstrap admin once. An existing account with the
// same e-mail is left as it is.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err == nil {
		utils.LogDebug("Admin %s already exists", email)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	_, err = s.CreateStaff(ctx, email, password, name, models.RoleAdmin)
	if utils.IsConflictError(err) {
		return nil
	}
	return err
}

// Login checks credentials and issues a token
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.UnauthorizedError(utils.ErrInvalidCredentials, nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to login", err)
	}
	if !utils.CheckPassword(in.Password, user.Password) {
		utils.LogInfo("Failed login for %s", user.Email)
		return nil, utils.UnauthorizedError(utils.ErrInvalidCredentials, nil)
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, utils.InternalError("Failed to generate token", err)
	}
	utils.LogInfo("User %s logged in", user.Email)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// GenerateToken signs an HS256 token for user
func (s *AuthService) GenerateToken(user *models.User) (string, time.Time, error) {
	expiresAt := s.now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
		"jti":     uuid.NewString(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates the signature and expiry of a token
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("invalid user ID in token")
	}
	exp, _ := claims["exp"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &TokenClaims{
		UserID:    userID,
		Email:     email,
		Role:      models.Role(role),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

// Authenticate resolves a bearer token to its account. The role is read from
// the stored account, not from the token.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, *TokenClaims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		utils.LogDebug("Rejected token: %v", err)
		return nil, nil, utils.UnauthorizedError(utils.ErrInvalidToken, nil)
	}

	revoked, err := s.users.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, nil, utils.InternalError("Failed to check token", err)
	}
	if revoked {
		return nil, nil, utils.UnauthorizedError(utils.ErrInvalidToken, nil)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, utils.UnauthorizedError(utils.ErrTokenUserNotFound, nil)
	}
	if err != nil {
		return nil, nil, utils.InternalError("Failed to load user", err)
	}
	return user, claims, nil
}

// Logout revokes a token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return utils.UnauthorizedError(utils.ErrInvalidToken, nil)
	}
	if err := s.users.BlacklistToken(ctx, tokenString, claims.ExpiresAt); err != nil {
		return utils.InternalError("Failed to logout", err)
	}
	if _, err := s.users.PurgeExpiredTokens(ctx, s.now()); err != nil {
		utils.LogError("Failed to purge expired tokens: %v", err)
	}
	utils.LogInfo("User %s logged out", claims.Email)
	return nil
}

// GetUser returns an account by id
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFoundError("User not found", nil)
	}
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve user", err)
	}
	return user, nil
}

// ListUsers returns every account
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve users", err)
	}
	return users, nil
}
