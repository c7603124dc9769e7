package handlers

import (
	"context"
	"net/http"
	"time"

	"tracklytic/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} SuccessResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "Database connection failed"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return databaseUnavailable(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return databaseUnavailable(c)
	}

	return SendSuccess(c, http.StatusOK, "healthy", map[string]string{
		"database": "up",
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func databaseUnavailable(c echo.Context) error {
	return SendError(c, errors.SystemServiceUnavailable,
		errors.WithDetails(map[string]string{"database": "Database connection failed"}))
}
