package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// newUserContext builds a context as the auth middleware leaves it
func newUserContext(e *echo.Echo, req *http.Request, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserIDContextKey, userID)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func httptestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
	TraceID string            `json:"trace_id"`
	Data    json.RawMessage   `json:"data"`
}

func decodeEnvelope(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}
