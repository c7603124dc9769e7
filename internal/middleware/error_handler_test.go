package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

type errorBody struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
	TraceID string            `json:"trace_id"`
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, errorBody) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/tracker/add/transaction", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)

	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_KeepsClientMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), "trace-1")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("error", body.Status)
	s.Equal("SYSTEM_005", body.Code)
	s.Equal("Resource not found", body.Message)
	s.Equal("trace-1", body.TraceID)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_HidesServerMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusInternalServerError, "pq: relation does not exist"), "trace-1")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(body.Message, "pq:")
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_StatusMapping() {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_002"},
		{http.StatusForbidden, "AUTH_005"},
		{http.StatusNotFound, "SYSTEM_005"},
		{http.StatusMethodNotAllowed, "SYSTEM_005"},
		{http.StatusRequestEntityTooLarge, "RECEIPT_003"},
		{http.StatusUnsupportedMediaType, "RECEIPT_002"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_004"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(fmt.Sprint(tt.status), func() {
			rec, body := s.handle(echo.NewHTTPError(tt.status), "trace-1")

			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, body.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestDomainError_RendersAsSuccessStatus() {
	err := fmt.Errorf("create: %w", apperrors.Domainf(apperrors.CategoryNotFound, "Category does not exist"))

	rec, body := s.handle(err, "trace-1")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("error", body.Status)
	s.Equal("Category does not exist", body.Message)
	s.Equal(string(apperrors.CategoryNotFound), body.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericError_IsHidden() {
	rec, body := s.handle(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "trace-1")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Code)
	s.NotContains(body.Message, "10.0.0.5")
	s.Equal("trace-1", body.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestMissingTraceID() {
	_, body := s.handle(errors.New("boom"), "")

	s.Equal("unknown", body.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.JSON(http.StatusCreated, map[string]string{"status": "success"}))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	s.Equal(http.StatusCreated, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	err := validation.GetValidator().GetValidate().Struct(dto.CreateTransactionRequest{
		PartyName: "   ",
		Amount:    decimal.RequireFromString("10.005"),
		Type:      "Refund",
	})
	s.Require().Error(err)

	rec, body := s.handle(fmt.Errorf("bind: %w", err), "trace-1")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Code)
	s.Equal("must not be blank", body.Details["party_name"])
	s.Equal("must be a valid amount with at most 2 decimal places", body.Details["amount"])
	s.Equal("must be one of: Debit Credit", body.Details["type"])
}
