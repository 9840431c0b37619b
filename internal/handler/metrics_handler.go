package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/mbrell/centsible/centsible-backend/internal/service"
	"github.com/shopspring/decimal"
)

// MaxWindowDays caps the daily series window a client can request.
const MaxWindowDays = 90

// MetricsHandler handles derived-metrics HTTP requests
type MetricsHandler struct {
	ledgerService  *service.LedgerService
	metricsService *service.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(ledgerService *service.LedgerService, metricsService *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		ledgerService:  ledgerService,
		metricsService: metricsService,
	}
}

// TotalsResponse represents the headline figures
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// DailySeriesResponse represents the fixed-window daily series
type DailySeriesResponse struct {
	Labels  []string `json:"labels"`
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// CategoryTotalResponse represents one category of a breakdown
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// CategoryBreakdownResponse wraps a category breakdown
type CategoryBreakdownResponse struct {
	Data []CategoryTotalResponse `json:"data"`
}

// GetTotals returns total income, total expense and the balance.
func (h *MetricsHandler) GetTotals(c echo.Context) error {
	totals := h.metricsService.Totals(h.ledgerService.Transactions(""))
	return c.JSON(http.StatusOK, TotalsResponse{
		Income:  totals.Income.StringFixed(2),
		Expense: totals.Expense.StringFixed(2),
		Balance: totals.Balance.StringFixed(2),
	})
}

// GetDailySeries returns per-day income and expense sums for a window of
// consecutive UTC calendar days ending at the reference date (today by
// default). Query parameters: days (1-90, default 7) and reference
// (YYYY-MM-DD).
func (h *MetricsHandler) GetDailySeries(c echo.Context) error {
	days := service.DefaultWindowDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxWindowDays {
			return NewValidationError(c, "Invalid days", []ValidationError{
				{Field: "days", Message: "Must be an integer between 1 and 90"},
			})
		}
		days = parsed
	}

	reference := time.Now().UTC()
	if raw := c.QueryParam("reference"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return NewValidationError(c, "Invalid reference", []ValidationError{
				{Field: "reference", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		reference = parsed
	}

	series := h.metricsService.DailySeries(h.ledgerService.Transactions(""), reference, days)
	return c.JSON(http.StatusOK, DailySeriesResponse{
		Labels:  series.Labels,
		Income:  decimalStrings(series.Income),
		Expense: decimalStrings(series.Expense),
	})
}

// GetCategoryBreakdown returns per-category sums for the given transaction
// type, ordered by first appearance.
func (h *MetricsHandler) GetCategoryBreakdown(c echo.Context) error {
	kind := domain.TransactionType(c.QueryParam("type"))
	if !domain.ValidTransactionType(kind) {
		return NewValidationError(c, "Invalid type", []ValidationError{
			{Field: "type", Message: "Must be either income or expense"},
		})
	}

	breakdown := h.metricsService.CategoryBreakdown(h.ledgerService.Transactions(""), kind)
	resp := CategoryBreakdownResponse{Data: make([]CategoryTotalResponse, len(breakdown))}
	for i, entry := range breakdown {
		resp.Data[i] = CategoryTotalResponse{
			Category: entry.Category,
			Amount:   entry.Amount.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func decimalStrings(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.StringFixed(2)
	}
	return out
}
