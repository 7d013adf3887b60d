package service

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// oauthPlaceholderPhone is stored for accounts created via OAuth, which never
// supply a phone number.
const oauthPlaceholderPhone = "0000000000"

// AuthService issues and verifies credentials: password login, token refresh,
// registration and OAuth account linking.
type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

// RegisterInput is the payload for credential registration.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Picture  *string
}

// OAuthProfile is the identity returned by an external provider.
type OAuthProfile struct {
	Provider  string
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// IssueTokens signs an access and a refresh token for the user, each with its
// own secret and lifetime.
func (s *AuthService) IssueTokens(user *models.User) (*TokenPair, error) {
	access, err := signToken(user, s.cfg.JWTAccessSecret, time.Duration(s.cfg.JWTAccessExpiresHrs)*time.Hour)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	refresh, err := signToken(user, s.cfg.JWTRefreshSecret, time.Duration(s.cfg.JWTRefreshExpiresHrs)*time.Hour)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess validates an access token and returns its claims.
func (s *AuthService) VerifyAccess(tokenString string) (*Claims, error) {
	return verifyToken(tokenString, s.cfg.JWTAccessSecret)
}

// Login authenticates an email/password pair and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, models.NewNotFoundError("User", email)
	}
	if user.Password == "" {
		return nil, nil, models.NewBadRequestError("Account has no password; use your OAuth provider to sign in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, models.NewBadRequestError("Password Incorrect")
	}

	tokens, err := s.IssueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh validates a refresh token and issues a new access token. The
// refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := verifyToken(refreshToken, s.cfg.JWTRefreshSecret)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewBadRequestError("User does not exist")
	}
	if user.Status == models.UserStatusBlocked || user.Status == models.UserStatusInactive {
		return "", models.NewBadRequestError(fmt.Sprintf("User is %s", user.Status))
	}

	access, err := signToken(user, s.cfg.JWTAccessSecret, time.Duration(s.cfg.JWTAccessExpiresHrs)*time.Hour)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return access, nil
}

// Register creates a credentials user: unique email, bcrypt hash with the
// configured cost, and a linked credentials AuthProvider row.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Picture:  in.Picture,
		Password: string(hashed),
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
		Auths: []models.AuthProvider{{
			Provider:   models.ProviderCredentials,
			ProviderID: in.Email,
		}},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// OAuthLogin finds or creates the user for an external identity. An existing
// user with the same email is returned unchanged; no second provider row is
// linked to it.
func (s *AuthService) OAuthLogin(ctx context.Context, profile OAuthProfile) (*models.User, error) {
	if profile.Email == "" {
		return nil, models.NewBadRequestError("No email found in OAuth profile")
	}

	user, err := s.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &models.User{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      oauthPlaceholderPhone,
		Role:       models.RoleUser,
		Status:     models.UserStatusActive,
		IsVerified: true,
		Auths: []models.AuthProvider{{
			Provider:   profile.Provider,
			ProviderID: profile.SubjectID,
		}},
	}
	if profile.Picture != "" {
		user.Picture = &profile.Picture
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
