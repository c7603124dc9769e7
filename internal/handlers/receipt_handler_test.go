package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestReceiptHandler(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerSuite))
}

type ReceiptHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockReceiptServiceInterface
	handler *ReceiptHandler
	e       *echo.Echo
	userID  uuid.UUID
}

func (s *ReceiptHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockReceiptServiceInterface(s.ctrl)
	s.handler = NewReceiptHandler(s.service)
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *ReceiptHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReceiptHandlerSuite) uploadRequest(filename string, content []byte, fields map[string]string) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile(ReceiptFormField, filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/tracker/transaction/upload/receipt", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func (s *ReceiptHandlerSuite) TestUpload_PreviewOnly() {
	content := []byte("%PDF-1.4 receipt")
	s.service.EXPECT().Scan(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upload *dto.ReceiptUpload) (*dto.ReceiptScanResponse, error) {
			s.Equal("receipt.pdf", upload.Filename)
			s.Equal(int64(len(content)), upload.Size)
			s.False(upload.Create)
			got, err := io.ReadAll(upload.Content)
			s.NoError(err)
			s.Equal(content, got)
			return &dto.ReceiptScanResponse{Extraction: map[string]string{"bank": "opay"}}, nil
		})

	c, rec := newUserContext(s.e, s.uploadRequest("receipt.pdf", content, nil), s.userID)

	s.NoError(s.handler.Upload(c))
	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("Receipt processed successfully", env.Message)
	s.Contains(string(env.Data), "opay")
}

func (s *ReceiptHandlerSuite) TestUpload_CreatesTransaction() {
	tx := &models.Transaction{ID: uuid.New(), PartyName: "Jane Doe", Type: models.TransactionTypeCredit}
	s.service.EXPECT().Scan(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upload *dto.ReceiptUpload) (*dto.ReceiptScanResponse, error) {
			s.True(upload.Create)
			return &dto.ReceiptScanResponse{Transaction: tx, Created: true}, nil
		})

	c, rec := newUserContext(s.e, s.uploadRequest("receipt.png", []byte{0x89, 'P', 'N', 'G'},
		map[string]string{"create": "true"}), s.userID)

	s.NoError(s.handler.Upload(c))
	s.Equal(http.StatusCreated, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("Transaction was successfully added from receipt", env.Message)
	s.Contains(string(env.Data), tx.ID.String())
}

func (s *ReceiptHandlerSuite) TestUpload_MissingFile() {
	c, rec := newUserContext(s.e, s.uploadRequest("", nil, map[string]string{"create": "true"}), s.userID)

	s.NoError(s.handler.Upload(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ReceiptMissingFile), decodeEnvelope(rec).Code)
}

func (s *ReceiptHandlerSuite) TestUpload_BadCreateFlag() {
	c, rec := newUserContext(s.e, s.uploadRequest("receipt.pdf", []byte("x"),
		map[string]string{"create": "maybe"}), s.userID)

	s.NoError(s.handler.Upload(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal(string(apperrors.ValidationInvalidFormat), env.Code)
	s.Equal("must be true or false", env.Details["create"])
}

func (s *ReceiptHandlerSuite) TestUpload_UnsupportedType() {
	s.service.EXPECT().Scan(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, apperrors.NewDomainError(apperrors.ReceiptUnsupportedType))

	c, rec := newUserContext(s.e, s.uploadRequest("receipt.gif", []byte("GIF89a"), nil), s.userID)

	s.NoError(s.handler.Upload(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ReceiptUnsupportedType), decodeEnvelope(rec).Code)
}
