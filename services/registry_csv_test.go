package services

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestRegistry(t)
	mustAdd(t, src, AddCustomerInput{Name: "Ramesh", Phone: "9876543210", Category: "VIP", Email: "ramesh@example.com"})
	mustAdd(t, src, AddCustomerInput{Name: "Suresh", Phone: "9876543211", Address: "12 MG Road"})

	var buf bytes.Buffer
	count, err := src.ExportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("exported %d rows, want 2", count)
	}

	dst := newTestRegistry(t)
	added, skipped, err := dst.ImportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if added != 2 || skipped != 0 {
		t.Errorf("import = %d added, %d skipped", added, skipped)
	}

	ramesh, err := dst.ByPhone("+919876543210")
	if err != nil {
		t.Fatal(err)
	}
	if ramesh.Name != "Ramesh" || ramesh.Category != "VIP" || ramesh.Email != "ramesh@example.com" {
		t.Errorf("round-tripped customer = %+v", ramesh)
	}
}

func TestImportSkipsBadRows(t *testing.T) {
	r := newTestRegistry(t)
	mustAdd(t, r, AddCustomerInput{Name: "Existing", Phone: "9876543210"})

	csv := strings.Join([]string{
		"customer_id,name,phone,email,address,category,total_amount_spent,visit_count",
		",Dup,09876543210,,,,0,0",   // same number as the existing customer
		",Bad,12345,,,,0,0",         // not a valid phone
		",,9876543211,,,,0,0",       // no name, still imported
		",Fresh,9876543212,,,,0,0",
	}, "\n")

	added, skipped, err := r.ImportCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if added != 2 || skipped != 2 {
		t.Errorf("import = %d added, %d skipped; want 2 and 2", added, skipped)
	}

	unnamed, err := r.ByPhone("+919876543211")
	if err != nil {
		t.Fatal(err)
	}
	if unnamed.Name != "Unknown" {
		t.Errorf("nameless row imported as %q, want Unknown", unnamed.Name)
	}
}
