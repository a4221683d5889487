// services/registry_csv.go
package services

import (
	"io"

	"github.com/gocarina/gocsv"
)

type customerCSVRow struct {
	CustomerID string  `csv:"customer_id"`
	Name       string  `csv:"name"`
	Phone      string  `csv:"phone"`
	Email      string  `csv:"email"`
	Address    string  `csv:"address"`
	Category   string  `csv:"category"`
	TotalSpent float64 `csv:"total_amount_spent"`
	VisitCount int     `csv:"visit_count"`
}

// ExportCSV writes the whole registry as CSV and returns the row count.
func (r *Registry) ExportCSV(w io.Writer) (int, error) {
	customers, err := r.All()
	if err != nil {
		return 0, err
	}

	rows := make([]customerCSVRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, customerCSVRow{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
			Address:    c.Address,
			Category:   c.Category,
			TotalSpent: c.TotalSpent,
			VisitCount: c.VisitCount,
		})
	}
	return len(rows), gocsv.Marshal(&rows, w)
}

// ImportCSV adds customers from a CSV file. Rows with invalid or already
// registered phones are skipped, not errors: imports are best-effort.
func (r *Registry) ImportCSV(reader io.Reader) (added, skipped int, err error) {
	var rows []customerCSVRow
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = "Unknown"
		}
		_, addErr := r.Add(AddCustomerInput{
			Name:     name,
			Phone:    row.Phone,
			Email:    row.Email,
			Address:  row.Address,
			Category: row.Category,
		})
		if addErr != nil {
			skipped++
			continue
		}
		added++
	}
	return added, skipped, nil
}
