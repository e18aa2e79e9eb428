// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/recommend"
)

// CSVHeader is the column order read and written by CSV sources.
var CSVHeader = []string{"customer_id", "product_name", "category", "quantity", "purchase_date"}

// CSVFile reads a headered CSV file of purchase records.
type CSVFile struct {
	Path string
}

// Name implements Source.
func (f *CSVFile) Name() string { return config.SourceCSV }

// Load implements Source.
func (f *CSVFile) Load(ctx context.Context) ([]recommend.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses and validates CSV purchase records. Columns are located
// by header name, so their order in the file does not matter.
func ReadCSV(r io.Reader) ([]recommend.PurchaseRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header")
		}
		return nil, fmt.Errorf("csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range CSVHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("csv: missing column %q", name)
		}
	}

	var records []recommend.PurchaseRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}

		rec, err := parseCSVRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func parseCSVRow(row []string, cols map[string]int) (recommend.PurchaseRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	customerID, err := strconv.Atoi(field("customer_id"))
	if err != nil {
		return recommend.PurchaseRecord{}, fmt.Errorf("invalid customer_id %q", field("customer_id"))
	}
	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return recommend.PurchaseRecord{}, fmt.Errorf("invalid quantity %q", field("quantity"))
	}
	date, err := parseDate(field("purchase_date"))
	if err != nil {
		return recommend.PurchaseRecord{}, err
	}

	return recommend.PurchaseRecord{
		CustomerID:   customerID,
		ProductName:  field("product_name"),
		Category:     field("category"),
		Quantity:     quantity,
		PurchaseDate: date,
	}, nil
}

// WriteCSV writes records with a header row in CSVHeader order.
func WriteCSV(w io.Writer, records []recommend.PurchaseRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write([]string{
			strconv.Itoa(r.CustomerID),
			r.ProductName,
			r.Category,
			strconv.Itoa(r.Quantity),
			r.PurchaseDate.Format(DateLayout),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
