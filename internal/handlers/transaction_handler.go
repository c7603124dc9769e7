package handlers

import (
	"net/http"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultPageLimit = 20

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	now                func() time.Time
}

// NewTransactionHandler creates a new transaction handler. clock reads the
// current time in the calendar timezone; nil means time.Now.
func NewTransactionHandler(transactionService services.TransactionServiceInterface, clock func() time.Time) *TransactionHandler {
	if clock == nil {
		clock = time.Now
	}
	return &TransactionHandler{
		transactionService: transactionService,
		now:                clock,
	}
}

// Create records a transaction and reports its effect on limits, savings and recurrence
// @Summary Add transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionCreatedResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error"
// @Failure 200 {object} errors.ErrorResponse "Category or saving plan does not exist"
// @Router /tracker/add/transaction [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.transactionService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionCreatedResponse{
		Status:           apperrors.StatusSuccess,
		Message:          "Transaction was successfully added",
		Data:             result.Transaction,
		Limit:            result.LimitMessage,
		SavingsMessage:   result.SavingsMessage,
		RecurringMessage: result.RecurringMessage,
	})
}

// List returns a page of transactions, newest first
//
// Query parameters:
//   - type: Debit or Credit
//   - category_id: category UUID
//   - from, to: inclusive YYYY-MM-DD bounds on the transaction date
//   - limit: page size (default: 20, max: 100)
//   - cursor: next_cursor of the previous page
//
// @Router /tracker/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails(map[string]string{"query": "Invalid query parameters"}))
	}
	if query.Limit == 0 {
		query.Limit = defaultPageLimit
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	resp, err := h.transactionService.List(userID, &query)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transactions retrieved successfully", resp)
}

// Summary totals debits, credits and savings. Without bounds it covers the
// current calendar month up to today.
// @Router /tracker/transactions/summary [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var query dto.SummaryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat,
			apperrors.WithDetails(map[string]string{"query": "Invalid query parameters"}))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	today := h.now()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today
	if query.From != "" {
		from, _ = time.Parse(time.DateOnly, query.From)
	}
	if query.To != "" {
		to, _ = time.Parse(time.DateOnly, query.To)
	}

	summary, err := h.transactionService.Summary(userID, from, to)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// Get returns one transaction
// @Router /tracker/transactions/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	transactionID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	tx, err := h.transactionService.Get(userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// Delete removes a transaction and gives back any savings it funded
// @Router /tracker/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	transactionID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction Deleted", nil)
}
