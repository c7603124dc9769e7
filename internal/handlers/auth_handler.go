package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
	cookies      config.CookieConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, tokenService services.TokenServiceInterface, cookies config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cookies:      cookies,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or AUTH_007"
// @Failure 200 {object} errors.ErrorResponse "AUTH_006 email already registered"
// @Router /auth/users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "User registered successfully", dto.NewUserProfileResponse(user))
}

// Login authenticates the user and sets the token cookies
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /auth/jwt/create [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountLocked):
			return SendError(c, apperrors.AuthAccountLocked)
		case errors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, apperrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	h.setTokenCookies(c, tokens)
	return SendSuccess(c, http.StatusOK, "Login successful", tokens)
}

// RefreshToken rotates the refresh token. The token is read from the
// refresh_token cookie, falling back to the request body.
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 or AUTH_004"
// @Router /auth/jwt/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" {
		var req dto.RefreshTokenRequest
		if err := c.Bind(&req); err != nil {
			return invalidBody(c)
		}
		refreshToken = req.Refresh
	}

	if refreshToken == "" {
		return SendError(c, apperrors.AuthMissingToken)
	}

	tokens, err := h.authService.RefreshTokens(refreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if errors.Is(err, services.ErrInvalidRefreshToken) {
			return SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithMessage("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	h.setTokenCookies(c, tokens)
	return SendSuccess(c, http.StatusOK, "Token refreshed successfully", tokens)
}

// Logout blacklists the access token and clears the auth cookies
// @Summary Logout user
// @Tags Authentication
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 or AUTH_004"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	accessToken := ""
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		accessToken = cookie.Value
	}

	if accessToken == "" {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return SendError(c, apperrors.AuthMissingToken)
		}
		token, err := h.tokenService.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return SendError(c, apperrors.AuthInvalidTokenFormat)
		}
		accessToken = token
	}

	if err := h.authService.Logout(accessToken, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.WarnContext(c.Request().Context(), "logout failed", "trace_id", getTraceID(c), "error", err)
	}

	h.clearTokenCookies(c)
	return SendSuccess(c, http.StatusOK, "User Logged out", nil)
}

// Me returns the profile of the authenticated user
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Router /auth/users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "User retrieved successfully", dto.NewUserProfileResponse(user))
}

func (h *AuthHandler) setTokenCookies(c echo.Context, tokens *dto.TokenResponse) {
	c.SetCookie(h.cookie(AccessTokenCookie, tokens.Access, tokens.ExpiresAt))
	c.SetCookie(h.cookie(RefreshTokenCookie, tokens.Refresh, tokens.RefreshExpiresAt))
}

func (h *AuthHandler) clearTokenCookies(c echo.Context) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		cookie := h.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (h *AuthHandler) cookie(name, value string, expires time.Time) *http.Cookie {
	path := h.cookies.Path
	if path == "" {
		path = "/"
	}
	sameSite := h.cookies.SameSite
	if sameSite == 0 {
		sameSite = http.SameSiteLaxMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   h.cookies.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: sameSite,
	}
}
