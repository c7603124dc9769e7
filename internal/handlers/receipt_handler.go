package handlers

import (
	"net/http"
	"strconv"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptFormField is the multipart field carrying the receipt file
const ReceiptFormField = "receipt"

// ReceiptHandler turns uploaded bank receipts into transactions
type ReceiptHandler struct {
	receiptService services.ReceiptServiceInterface
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService services.ReceiptServiceInterface) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Upload reads a receipt image or PDF and returns the extracted fields with a
// suggested category. With create=true, as a form value or query parameter,
// the transaction is stored too.
// @Summary Scan receipt
// @Tags Receipts
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file true "Receipt (.pdf, .png, .jpg, .jpeg)"
// @Param create formData bool false "Store the transaction"
// @Success 200 {object} SuccessResponse{data=dto.ReceiptScanResponse}
// @Success 201 {object} SuccessResponse{data=dto.ReceiptScanResponse}
// @Failure 400 {object} errors.ErrorResponse "RECEIPT_001 or RECEIPT_002"
// @Failure 413 {object} errors.ErrorResponse "RECEIPT_003"
// @Router /tracker/transaction/upload/receipt [post]
func (h *ReceiptHandler) Upload(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	fileHeader, err := c.FormFile(ReceiptFormField)
	if err != nil {
		return SendError(c, apperrors.ReceiptMissingFile)
	}

	create := false
	raw := c.FormValue("create")
	if raw == "" {
		raw = c.QueryParam("create")
	}
	if raw != "" {
		create, err = strconv.ParseBool(raw)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidFormat,
				apperrors.WithDetails(map[string]string{"create": "must be true or false"}))
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	resp, err := h.receiptService.Scan(c.Request().Context(), userID, &dto.ReceiptUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
		Create:   create,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	if resp.Created {
		return SendSuccess(c, http.StatusCreated, "Transaction was successfully added from receipt", resp)
	}
	return SendSuccess(c, http.StatusOK, "Receipt processed successfully", resp)
}
