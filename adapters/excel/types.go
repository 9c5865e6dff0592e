package excel

import (
	"strings"
)

// RawRowData represents a row of raw cell text keyed by column header
type RawRowData map[string]string

// ExcelData represents a tabular file read into memory
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// HasColumn reports whether name is one of the headers, ignoring case
func (d *ExcelData) HasColumn(name string) bool {
	_, ok := d.header(name)
	return ok
}

func (d *ExcelData) header(name string) (string, bool) {
	for _, h := range d.Headers {
		if strings.EqualFold(h, strings.TrimSpace(name)) {
			return h, true
		}
	}
	return "", false
}
