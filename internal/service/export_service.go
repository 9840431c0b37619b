package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

// exportHeader is the fixed CSV header row.
var exportHeader = []string{"date", "description", "category", "type", "amount"}

// ExportService renders the transaction collection as CSV.
type ExportService struct{}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// TransactionsCSV encodes the transactions as comma-separated text: a header
// row followed by one row per transaction, in the order given (the caller's
// in-memory order, no re-sort).
func (s *ExportService) TransactionsCSV(transactions []*domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		row := []string{
			t.Date.Format(time.RFC3339),
			t.Description,
			t.Category,
			string(t.Type),
			t.Amount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
