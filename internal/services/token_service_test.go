package services

import (
	"testing"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg     *config.JWTConfig
	service *TokenService
	now     time.Time
	user    *models.User
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "tracklytic-test",
		AccessTokenDuration:  10 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}
	s.now = time.Now().UTC().Truncate(time.Second)
	s.service = s.newService(s.cfg)
	s.user = &models.User{ID: uuid.New(), Email: "ada@example.com", Username: "ada"}
}

// newService pins the clock to s.now so expiry can be tested without sleeping
func (s *TokenServiceTestSuite) newService(cfg *config.JWTConfig) *TokenService {
	ts := NewTokenService(cfg).(*TokenService)
	ts.now = func() time.Time { return s.now }
	return ts
}

func (s *TokenServiceTestSuite) TestAccessToken_RoundTrip() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	s.Equal(s.now.Add(10*time.Minute), expiresAt)

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal(s.user.ID.String(), claims.UserID)
	s.Equal("ada@example.com", claims.Email)
	s.Equal("ada", claims.Username)
	s.Equal("ada@example.com", claims.Subject)
	s.Equal("tracklytic-test", claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestRefreshToken_RoundTrip() {
	userID := uuid.New()
	token, expiresAt, err := s.service.GenerateRefreshToken(userID)
	s.Require().NoError(err)
	s.Equal(s.now.Add(7*24*time.Hour), expiresAt)

	claims, err := s.service.ValidateRefreshToken(token)
	s.Require().NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Empty(claims.Email)
	s.Equal(TokenTypeRefresh, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestGenerate_RejectsMissingIdentity() {
	_, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)

	_, _, err = s.service.GenerateRefreshToken(uuid.Nil)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidate_TokenTypesAreNotInterchangeable() {
	access, _, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	refresh, _, err := s.service.GenerateRefreshToken(s.user.ID)
	s.Require().NoError(err)

	_, err = s.service.ValidateRefreshToken(access)
	s.ErrorIs(err, ErrInvalidTokenType)

	_, err = s.service.ValidateAccessToken(refresh)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidate_Expired() {
	token, _, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.now = s.now.Add(11 * time.Minute)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidate_WrongIssuer() {
	other := *s.cfg
	other.Issuer = "someone-else"

	token, _, err := s.newService(&other).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidate_DifferentKeyPair() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := *s.cfg
	other.PrivateKey, other.PublicKey = privateKey, publicKey

	token, _, err := s.newService(&other).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_RejectsHMACSignedToken() {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(s.now.Add(time.Hour)),
		},
		UserID:    s.user.ID.String(),
		TokenType: TokenTypeAccess,
	}).SignedString([]byte("guessable"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(forged)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_EmptyAndMalformed() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)

	for _, token := range []string{"invalid.token.format", "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature"} {
		claims, err := s.service.ValidateAccessToken(token)
		s.ErrorIs(err, ErrInvalidToken, token)
		s.Nil(claims)
	}
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "BEARER   abc.def.ghi ", want: "abc.def.ghi"},
		{header: "abc.def.ghi", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		token, err := s.service.ExtractTokenFromHeader(tt.header)
		if tt.wantErr {
			s.ErrorIs(err, ErrInvalidAuthHeader, tt.header)
			s.Empty(token)
			continue
		}
		s.NoError(err, tt.header)
		s.Equal(tt.want, token)
	}
}

func (s *TokenServiceTestSuite) TestGetJTIAndExpiry_WorkOnExpiredTokens() {
	first, expiresAt, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	second, _, err := s.service.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)

	jti, err := s.service.GetJTI(first)
	s.Require().NoError(err)
	_, err = uuid.Parse(jti)
	s.NoError(err)

	otherJTI, err := s.service.GetJTI(second)
	s.Require().NoError(err)
	s.NotEqual(jti, otherJTI)

	expiry, err := s.service.GetTokenExpiry(first)
	s.Require().NoError(err)
	s.True(expiry.Equal(expiresAt))

	_, err = s.service.GetJTI("")
	s.ErrorIs(err, ErrEmptyToken)
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	ts := NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "bench",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: time.Hour,
	})

	token, _, err := ts.GenerateAccessToken(&models.User{ID: uuid.New(), Email: "bench@example.com"})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.ValidateAccessToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
