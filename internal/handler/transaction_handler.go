package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/mbrell/centsible/centsible-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService *service.LedgerService
	exportService *service.ExportService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *service.LedgerService, exportService *service.ExportService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		exportService: exportService,
	}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// TransactionListResponse wraps the transaction collection
type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        t.Date.Format(time.RFC3339),
	}
}

// CreateTransaction creates a new income or expense transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	transaction, err := h.ledgerService.AddTransaction(c.Request().Context(), service.CreateTransactionInput{
		Description: req.Description,
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		Category:    req.Category,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return NewValidationError(c, "Validation failed", validationFields(err))
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions lists transactions, optionally filtered by the q query
// parameter (substring match on description or category).
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	transactions := h.ledgerService.Transactions(c.QueryParam("q"))

	resp := TransactionListResponse{Data: make([]TransactionResponse, len(transactions))}
	for i, t := range transactions {
		resp.Data[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteTransaction removes a transaction; deleting an unknown id succeeds.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	if err := h.ledgerService.DeleteTransaction(c.Request().Context(), id); err != nil {
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportTransactions streams the transaction collection as a CSV attachment.
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	csvBytes, err := h.exportService.TransactionsCSV(h.ledgerService.Transactions(""))
	if err != nil {
		log.Error().Err(err).Msg("Failed to export transactions")
		return NewInternalError(c, "Failed to export transactions")
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", csvBytes)
}

// validationFields maps a domain validation error to the field it concerns.
func validationFields(err error) []ValidationError {
	field := ""
	switch {
	case errors.Is(err, domain.ErrDescriptionRequired) || errors.Is(err, domain.ErrDescriptionTooLong):
		field = "description"
	case errors.Is(err, domain.ErrInvalidAmount):
		field = "amount"
	case errors.Is(err, domain.ErrInvalidTransactionType):
		field = "type"
	case errors.Is(err, domain.ErrInvalidCategory):
		field = "category"
	case errors.Is(err, domain.ErrGoalNameRequired) || errors.Is(err, domain.ErrGoalNameTooLong):
		field = "name"
	case errors.Is(err, domain.ErrInvalidTarget):
		field = "target"
	}
	if field == "" {
		return nil
	}
	return []ValidationError{{Field: field, Message: err.Error()}}
}
