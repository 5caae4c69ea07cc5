package suppliers

import (
	"bufio"
	"io"
	"strings"
)

const exportBufferSize = 32 * 1024

// csvHeader is the fixed 7-column export header. The header row itself is
// unquoted; every data field below it is double-quoted.
var csvHeader = []string{
	"Vendor Name",
	"Company Name",
	"Mobile Number",
	"Email",
	"GSTIN Number",
	"PAN Number",
	"Status",
}

// WriteCSV serialises every supplier into the export format: one quoted
// row per record, embedded quotes doubled, missing fields rendered empty
// and status defaulting to Active.
func WriteCSV(w io.Writer, items []Supplier) error {
	buf := bufio.NewWriterSize(w, exportBufferSize)

	if _, err := buf.WriteString(strings.Join(csvHeader, ",") + "\n"); err != nil {
		return err
	}

	for _, s := range items {
		status := s.Status
		if status == "" {
			status = StatusActive
		}
		row := []string{
			s.VendorName,
			s.CompanyName,
			s.PrimaryPhone,
			s.PrimaryEmail,
			s.GSTNumber,
			s.PAN,
			status,
		}
		for i, field := range row {
			row[i] = quoteField(field)
		}
		if _, err := buf.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// quoteField wraps a value in double quotes, doubling embedded quotes.
// encoding/csv quotes only when necessary, so the always-quoted wire
// format is produced by hand.
func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
