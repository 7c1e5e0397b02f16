// Package csvimport converts raw delimited text into row records consumable
// by the catalog store.
//
// The format is naive by contract: newline-separated rows, comma-separated
// fields, no quoted-comma or escaped-delimiter support, at most one
// surrounding quote pair stripped per field. A row whose field count does
// not match the header is skipped, not fatal.
package csvimport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront-catalog-service/internal/domain"
)

// RequiredColumns are the header names every import must carry.
var RequiredColumns = []string{"name", "category", "price", "image", "description"}

// MissingColumnsError aborts the whole parse when required headers are
// absent. Columns lists every missing header, not just the first.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csvimport: missing required columns: %s", strings.Join(e.Columns, ", "))
}

// InvalidPriceError aborts the whole parse when a price field does not parse
// as a number. Line is the 1-based line number in the input, counting the
// header line as line 1; Raw is the offending field text.
//
// Note the asymmetry with wrong-width rows, which are merely skipped. That
// is the documented contract, not an oversight.
type InvalidPriceError struct {
	Line int
	Raw  string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("csvimport: invalid price in row %d: %q", e.Line, e.Raw)
}

// Result is a successful parse: the admissible rows in source order, plus a
// count of rows skipped for a field-count mismatch.
type Result struct {
	Rows    []domain.Row
	Skipped int
}

// Parse converts a CSV text blob into row records. The first line is the
// header row, trimmed and lowercased; all of RequiredColumns must be
// present or the parse aborts with *MissingColumnsError. Each data field is
// trimmed and has at most one surrounding pair of double quotes stripped.
// Rows whose field count differs from the header count are skipped and
// counted; an unparseable price aborts with *InvalidPriceError.
func Parse(text string) (*Result, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	var missing []string
	for _, req := range RequiredColumns {
		if !containsString(headers, req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	result := &Result{Rows: make([]domain.Row, 0, len(lines)-1)}
	for i, line := range lines[1:] {
		values := strings.Split(line, ",")
		if len(values) != len(headers) {
			result.Skipped++
			continue
		}

		var row domain.Row
		for j, header := range headers {
			value := stripQuotes(strings.TrimSpace(values[j]))
			switch header {
			case "name":
				row.Name = value
			case "category":
				row.Category = value
			case "subcategory":
				row.Subcategory = value
			case "price":
				price, err := strconv.ParseFloat(value, 64)
				if err != nil || math.IsNaN(price) {
					return nil, &InvalidPriceError{Line: i + 2, Raw: value}
				}
				row.Price = price
			case "image":
				row.Image = value
			case "description":
				row.Description = value
			}
			// unknown columns are ignored
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// stripQuotes removes at most one leading and one trailing double-quote
// character. This is a naive strip, not RFC-4180 unescaping.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
