package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserAlreadyExists   = apperrors.NewDomainError(apperrors.AuthEmailTaken)
)

// AuthService handles registration, login with lockout and token rotation
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	refreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	auditor              AuditServiceInterface
	metrics              MetricsRecorderInterface
	security             config.SecurityConfig
	logger               *slog.Logger
	clock                func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	security config.SecurityConfig,
	logger *slog.Logger,
) AuthServiceInterface {
	if security.MaxFailedAttempts <= 0 {
		security.MaxFailedAttempts = 5
	}
	if security.LockoutDuration <= 0 {
		security.LockoutDuration = 15 * time.Minute
	}
	return &AuthService{
		userRepo:             userRepo,
		refreshTokenRepo:     refreshTokenRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		auditor:              audit,
		metrics:              metrics,
		security:             security,
		logger:               logger,
		clock:                time.Now,
	}
}

// Register creates a user after checking the email is free and the password
// meets the policy.
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	from := client{ip: ipAddress, userAgent: userAgent}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		s.audit(models.AuditActionRegister, nil, from, reason(req.Email, "email_already_exists"))
		return nil, ErrUserAlreadyExists
	}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.Domainf(apperrors.AuthWeakPassword, "%s", err.Error())
	}

	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PhoneNumber:  req.PhoneNumber,
		Age:          req.Age,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit(models.AuditActionRegister, &user.ID, from, nil)
	s.count("register", "success")
	return user, nil
}

// Login checks the credentials, applies the lockout policy and issues a
// token pair. Unknown emails and wrong passwords return the same error.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	from := client{ip: ipAddress, userAgent: userAgent}
	now := s.clock().UTC()

	user, err := s.userRepo.GetByEmail(req.Email)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		s.audit(models.AuditActionFailedLogin, nil, from, reason(req.Email, "user_not_found"))
		s.count("login", "failure")
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked(now) {
		s.audit(models.AuditActionFailedLogin, nil, from, reason(req.Email, "account_locked"))
		s.count("login", "locked")
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		locked := user.RegisterFailedLogin(s.security.MaxFailedAttempts, s.security.LockoutDuration, now)
		if err := s.userRepo.UpdateLoginState(user); err != nil {
			s.logger.Error("failed to update login attempts", "error", err, "user_id", user.ID)
		}
		if locked {
			s.audit(models.AuditActionAccountLocked, &user.ID, from, nil)
		}
		s.audit(models.AuditActionFailedLogin, nil, from, reason(req.Email, "invalid_password"))
		s.count("login", "failure")
		return nil, ErrInvalidCredentials
	}

	user.ResetFailedAttempts()
	user.UpdateLastLogin(now)
	if err := s.userRepo.UpdateLoginState(user); err != nil {
		s.logger.Warn("failed to reset login attempts", "error", err, "user_id", user.ID)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(models.AuditActionLogin, &user.ID, from, nil)
	s.count("login", "success")
	s.logger.Info("user logged in", "user_id", user.ID)
	return tokens, nil
}

// RefreshTokens exchanges a stored, unrevoked refresh token for a new pair.
// The presented token is revoked so it cannot be replayed.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	from := client{ip: ipAddress, userAgent: userAgent}

	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.audit(models.AuditActionTokenRefresh, nil, from, map[string]interface{}{"reason": "invalid_token"})
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		s.audit(models.AuditActionTokenRefresh, &userID, from, map[string]interface{}{"reason": "token_not_found"})
		return nil, ErrInvalidRefreshToken
	}
	if !stored.IsUsable(s.clock()) {
		s.audit(models.AuditActionTokenRefresh, &userID, from, map[string]interface{}{"reason": "token_expired_or_revoked"})
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.refreshTokenRepo.Revoke(stored.ID); err != nil {
		s.logger.Warn("failed to revoke old token", "error", err, "user_id", user.ID, "token_id", stored.ID)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(models.AuditActionTokenRefresh, &user.ID, from, nil)
	s.count("refresh", "success")
	return tokens, nil
}

// Logout blacklists the access token and revokes every refresh token of the
// user. It never fails: the cookies are cleared regardless.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		// an expired or foreign token still gets blacklisted by its id
		if jti, _ := s.tokenService.GetJTI(accessToken); jti != "" {
			if err := s.blacklist(jti, uuid.Nil, s.clock().Add(24*time.Hour)); err != nil {
				s.logger.Error("failed to blacklist expired token", "error", err, "jti", jti)
			}
		}
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)
	expiry, _ := s.tokenService.GetTokenExpiry(accessToken)

	if err := s.blacklist(claims.ID, userID, expiry); err != nil {
		s.logger.Error("failed to blacklist token", "error", err, "jti", claims.ID, "user_id", userID)
	}
	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		s.logger.Warn("failed to revoke refresh tokens", "error", err, "user_id", userID)
	}

	s.audit(models.AuditActionLogout, &userID, client{ip: ipAddress, userAgent: userAgent}, nil)
	s.count("logout", "success")
	return nil
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// issueTokens signs a new pair and stores the hash of the refresh token
func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	access, accessExpiry, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, refreshExpiry, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: refreshExpiry,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		Access:           access,
		Refresh:          refresh,
		TokenType:        "Bearer",
		ExpiresAt:        accessExpiry,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

func (s *AuthService) blacklist(jti string, userID uuid.UUID, expiresAt time.Time) error {
	return s.blacklistedTokenRepo.Create(&models.BlacklistedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt})
}

func (s *AuthService) count(event, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event": event, "outcome": outcome})
}

// client identifies where an auth request came from
type client struct {
	ip        string
	userAgent string
}

func (s *AuthService) audit(action string, userID *uuid.UUID, from client, metadata map[string]interface{}) {
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Resource:  "user",
		IPAddress: from.ip,
		UserAgent: from.userAgent,
		Metadata:  metadata,
	}
	if userID != nil {
		entry.ResourceID = userID.String()
	}
	if action == models.AuditActionTokenRefresh {
		entry.Resource = "token"
	}
	s.auditor.Record(entry)
}

func reason(email, why string) map[string]interface{} {
	return map[string]interface{}{"email": email, "reason": why}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
