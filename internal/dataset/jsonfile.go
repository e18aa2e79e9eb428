// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/recommend"
)

// jsonRecord is the on-disk JSON shape. Dates are plain calendar days.
type jsonRecord struct {
	CustomerID   int    `json:"customer_id"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	PurchaseDate string `json:"purchase_date"`
}

// JSONFile reads a JSON array of purchase records.
type JSONFile struct {
	Path string
}

// Name implements Source.
func (f *JSONFile) Name() string { return config.SourceJSON }

// Load implements Source.
func (f *JSONFile) Load(ctx context.Context) ([]recommend.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer file.Close()

	return ReadJSON(file)
}

// ReadJSON decodes and validates a JSON array of purchase records.
func ReadJSON(r io.Reader) ([]recommend.PurchaseRecord, error) {
	var rows []jsonRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}

	records := make([]recommend.PurchaseRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, recommend.PurchaseRecord{
			CustomerID:   row.CustomerID,
			ProductName:  row.ProductName,
			Category:     row.Category,
			Quantity:     row.Quantity,
			PurchaseDate: date,
		})
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteJSON encodes records as an indented JSON array.
func WriteJSON(w io.Writer, records []recommend.PurchaseRecord) error {
	rows := make([]jsonRecord, len(records))
	for i, r := range records {
		rows[i] = jsonRecord{
			CustomerID:   r.CustomerID,
			ProductName:  r.ProductName,
			Category:     r.Category,
			Quantity:     r.Quantity,
			PurchaseDate: r.PurchaseDate.Format(DateLayout),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid purchase_date %q", s)
	}
	return recommend.Date(t), nil
}
