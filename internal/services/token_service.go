package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = models.TokenTypeAccess
	TokenTypeRefresh = models.TokenTypeRefresh
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService issues and verifies the RS256 tokens carried in the
// access_token and refresh_token cookies.
type TokenService struct {
	cfg    config.JWTConfig
	now    func() time.Time
	parser *jwt.Parser
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	ts := &TokenService{
		cfg: *jwtConfig,
		now: func() time.Time { return time.Now().UTC() },
	}
	ts.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(ts.cfg.Issuer),
		jwt.WithTimeFunc(func() time.Time { return ts.now() }),
	)
	return ts
}

// GenerateAccessToken signs a short-lived token identifying the user
func (ts *TokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	return ts.sign(models.CustomClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		TokenType: TokenTypeAccess,
	}, user.Email, ts.cfg.AccessTokenDuration)
}

// GenerateRefreshToken signs a long-lived token that can only be exchanged
// for a new token pair.
func (ts *TokenService) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be nil")
	}

	return ts.sign(models.CustomClaims{
		UserID:    userID.String(),
		TokenType: TokenTypeRefresh,
	}, userID.String(), ts.cfg.RefreshTokenDuration)
}

func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	return ts.parse(tokenString, TokenTypeAccess)
}

func (ts *TokenService) ValidateRefreshToken(tokenString string) (*models.CustomClaims, error) {
	return ts.parse(tokenString, TokenTypeRefresh)
}

// ExtractTokenFromHeader accepts "Bearer <token>" with any casing of the scheme
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// GetJTI reads the token id without verifying the signature. Logout uses it
// to blacklist tokens that may already be expired.
func (ts *TokenService) GetJTI(tokenString string) (string, error) {
	claims, err := ts.unverified(tokenString)
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}

func (ts *TokenService) GetTokenExpiry(tokenString string) (time.Time, error) {
	claims, err := ts.unverified(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

func (ts *TokenService) sign(claims models.CustomClaims, subject string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    ts.cfg.Issuer,
		Subject:   subject,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.cfg.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) parse(tokenString, expectedType string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.CustomClaims{}
	token, err := ts.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.cfg.PublicKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid:
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

func (ts *TokenService) unverified(tokenString string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.CustomClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}
