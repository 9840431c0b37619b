package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func seedTransactions(t *testing.T, e *echo.Echo, handler *TransactionHandler) {
	t.Helper()
	for _, body := range []string{
		`{"description": "Salary", "amount": "1000", "type": "income", "category": "Salary"}`,
		`{"description": "Groceries", "amount": "40", "type": "expense", "category": "Food"}`,
		`{"description": "Bus pass", "amount": "60", "type": "expense", "category": "Transport"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if err := handler.CreateTransaction(e.NewContext(req, httptest.NewRecorder())); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}
}

func TestGetTotals(t *testing.T) {
	e := echo.New()
	txHandler, _, handler, _ := newTestHandlers(t)
	seedTransactions(t, e, txHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/totals", nil)
	rec := httptest.NewRecorder()
	if err := handler.GetTotals(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response TotalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Income != "1000.00" {
		t.Errorf("Expected income '1000.00', got %s", response.Income)
	}
	if response.Expense != "100.00" {
		t.Errorf("Expected expense '100.00', got %s", response.Expense)
	}
	if response.Balance != "900.00" {
		t.Errorf("Expected balance '900.00', got %s", response.Balance)
	}
}

func TestGetDailySeries(t *testing.T) {
	e := echo.New()
	txHandler, _, handler, _ := newTestHandlers(t)
	seedTransactions(t, e, txHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/daily?days=7", nil)
	rec := httptest.NewRecorder()
	if err := handler.GetDailySeries(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response DailySeriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Labels) != 7 {
		t.Fatalf("Expected 7 labels, got %d", len(response.Labels))
	}
	if len(response.Income) != 7 || len(response.Expense) != 7 {
		t.Fatalf("Expected 7 values per series, got %d/%d", len(response.Income), len(response.Expense))
	}
	// all three transactions were created just now, so they land in the last bucket
	last := len(response.Labels) - 1
	if response.Income[last] != "1000.00" {
		t.Errorf("Expected income '1000.00' on the last day, got %s", response.Income[last])
	}
	if response.Expense[last] != "100.00" {
		t.Errorf("Expected expense '100.00' on the last day, got %s", response.Expense[last])
	}
	if response.Income[0] != "0.00" {
		t.Errorf("Expected empty days to be zero-filled, got %s", response.Income[0])
	}
}

func TestGetDailySeries_InvalidParams(t *testing.T) {
	e := echo.New()
	_, _, handler, _ := newTestHandlers(t)

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric days", "days=week"},
		{"zero days", "days=0"},
		{"too many days", "days=91"},
		{"bad reference", "reference=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/daily?"+tt.query, nil)
			rec := httptest.NewRecorder()
			if err := handler.GetDailySeries(e.NewContext(req, rec)); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestGetCategoryBreakdown(t *testing.T) {
	e := echo.New()
	txHandler, _, handler, _ := newTestHandlers(t)
	seedTransactions(t, e, txHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/categories?type=expense", nil)
	rec := httptest.NewRecorder()
	if err := handler.GetCategoryBreakdown(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response CategoryBreakdownResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Data) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(response.Data))
	}
	totals := map[string]string{}
	for _, entry := range response.Data {
		totals[entry.Category] = entry.Amount
	}
	if totals["Food"] != "40.00" {
		t.Errorf("Expected Food '40.00', got %s", totals["Food"])
	}
	if totals["Transport"] != "60.00" {
		t.Errorf("Expected Transport '60.00', got %s", totals["Transport"])
	}
}

func TestGetCategoryBreakdown_InvalidType(t *testing.T) {
	e := echo.New()
	_, _, handler, _ := newTestHandlers(t)

	for _, kind := range []string{"", "transfer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics/categories?type="+kind, nil)
		rec := httptest.NewRecorder()
		if err := handler.GetCategoryBreakdown(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for type %q, got %d", kind, rec.Code)
		}
	}
}
