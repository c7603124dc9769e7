package middleware

import (
	"errors"

	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/handlers"
	"tracklytic/internal/repositories"
	"tracklytic/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid access token and
// checks that it has not been blacklisted by a logout. The token is read from
// the access_token cookie, falling back to an Authorization: Bearer header.
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(handlers.AccessTokenCookie); err == nil {
				token = cookie.Value
			}

			if token == "" {
				authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
				if authHeader == "" {
					return handlers.SendError(c, apperrors.AuthMissingToken)
				}

				var err error
				token, err = tokenService.ExtractTokenFromHeader(authHeader)
				if err != nil {
					return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
				}
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			revoked, err := blacklistedTokenRepo.IsBlacklisted(claims.ID)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithMessage("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithMessage("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
