package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/handlers"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories/repository_mocks"
	"tracklytic/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	tokenService             services.TokenServiceInterface
	mockBlacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	e                        *echo.Echo
	user                     *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.mockBlacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.e = echo.New()
	s.user = &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Username: "tester",
	}
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(accessDuration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  accessDuration,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) serve(tokenService services.TokenServiceInterface, req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	err := RequireAuth(tokenService, s.mockBlacklistedTokenRepo)(next)(c)
	// SendError writes the response and returns nil
	s.NoError(err)
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidBearerToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	s.mockBlacklistedTokenRepo.EXPECT().IsBlacklisted(gomock.Any()).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := s.serve(s.tokenService, req, func(c echo.Context) error {
		s.Equal(s.user.ID, c.Get(handlers.UserIDContextKey))
		s.Equal(s.user.Email, c.Get("user_email"))
		s.NotEmpty(c.Get("token_jti"))
		return okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_CookieTakesPrecedence() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	s.mockBlacklistedTokenRepo.EXPECT().IsBlacklisted(gomock.Any()).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: handlers.AccessTokenCookie, Value: token})
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := s.serve(s.tokenService, req, func(c echo.Context) error {
		s.Equal(s.user.ID, c.Get(handlers.UserIDContextKey))
		return okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	rec := s.serve(s.tokenService, req, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"code":"AUTH_002"`)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "InvalidToken")

	rec := s.serve(s.tokenService, req, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"code":"AUTH_004"`)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")

	rec := s.serve(s.tokenService, req, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService(time.Millisecond)
	token, _, err := shortTokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := s.serve(shortTokenService, req, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"code":"AUTH_003"`)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	token, _, err := s.createTokenService(time.Hour).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := s.serve(s.tokenService, req, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BlacklistedToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	jti, err := s.tokenService.GetJTI(token)
	s.Require().NoError(err)
	s.mockBlacklistedTokenRepo.EXPECT().IsBlacklisted(jti).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := s.serve(s.tokenService, req, func(c echo.Context) error {
		s.Fail("handler must not run for a revoked token")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Token has been revoked")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BlacklistLookupFails() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)
	s.mockBlacklistedTokenRepo.EXPECT().IsBlacklisted(gomock.Any()).Return(false, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := s.serve(s.tokenService, req, okHandler)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}
