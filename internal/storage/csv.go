package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/web3hub/hub-engine/internal/models"
)

// leadCSVHeader is the fixed export column order.
var leadCSVHeader = []string{"id", "name", "email", "phone", "captured_at"}

// LeadsToCSV serializes the lead collection as RFC 4180 CSV with a header
// row. Free-text fields containing quotes, commas or newlines are quoted
// with doubled internal quotes by the encoder.
func LeadsToCSV(leads []*models.Lead) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(leadCSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, lead := range leads {
		record := []string{
			lead.ID,
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.CapturedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}
