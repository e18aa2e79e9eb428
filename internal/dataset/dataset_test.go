// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/metrics"
	"github.com/tomtom215/basketwise/internal/recommend"
)

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewGenerator(DefaultGeneratorConfig()).Generate()
	b := NewGenerator(DefaultGeneratorConfig()).Generate()
	assert.Equal(t, a, b)

	other := DefaultGeneratorConfig()
	other.Seed = 7
	assert.NotEqual(t, a, NewGenerator(other).Generate())
}

func TestGenerator_Bounds(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	records := NewGenerator(cfg).Generate()
	require.NotEmpty(t, records)
	require.NoError(t, Validate(records))

	known := make(map[string]string)
	for _, p := range Catalog() {
		known[p.Name] = p.Category
	}

	perCustomer := make(map[int]int)
	earliest := cfg.ReferenceDate.AddDate(0, 0, -(cfg.Days - 1))
	for _, r := range records {
		perCustomer[r.CustomerID]++

		assert.Equal(t, known[r.ProductName], r.Category, "category for %s", r.ProductName)
		assert.GreaterOrEqual(t, r.Quantity, 1)
		assert.LessOrEqual(t, r.Quantity, 5)
		assert.False(t, r.PurchaseDate.After(cfg.ReferenceDate))
		assert.False(t, r.PurchaseDate.Before(earliest))
	}

	assert.Len(t, perCustomer, cfg.Customers)
	for id, n := range perCustomer {
		assert.GreaterOrEqual(t, n, cfg.MinPurchases, "customer %d", id)
		assert.LessOrEqual(t, n, cfg.MaxPurchases, "customer %d", id)
	}
}

func TestGenerator_FallbackDefaults(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GeneratorConfig{Seed: 1, MinPurchases: 3, MaxPurchases: 1})
	assert.Equal(t, 50, g.cfg.Customers)
	assert.Equal(t, 90, g.cfg.Days)
	assert.Equal(t, 3, g.cfg.MaxPurchases)
	assert.Equal(t, DefaultReferenceDate, g.cfg.ReferenceDate)
}

func TestGenerator_LoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(DefaultGeneratorConfig()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Catalog()
	require.Len(t, c, 10)
	c[0].Name = "Changed"
	assert.Equal(t, "Milk", Catalog()[0].Name)
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.Customers = 5
	records := NewGenerator(cfg).Generate()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, records))
	assert.Contains(t, buf.String(), `"purchase_date": "2024-`)

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", `[{"customer_id": 1,`, "decode purchases"},
		{"bad date", `[{"customer_id":1,"product_name":"Milk","category":"Dairy","quantity":1,"purchase_date":"yesterday"}]`, "invalid purchase_date"},
		{"zero quantity", `[{"customer_id":1,"product_name":"Milk","category":"Dairy","quantity":0,"purchase_date":"2024-01-01"}]`, "record 1"},
		{"blank product", `[{"customer_id":1,"product_name":"  ","category":"Dairy","quantity":1,"purchase_date":"2024-01-01"}]`, "product_name"},
		{"zero customer", `[{"customer_id":0,"product_name":"Milk","category":"Dairy","quantity":1,"purchase_date":"2024-01-01"}]`, "customer_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadJSON(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadJSON_AcceptsTimestamps(t *testing.T) {
	t.Parallel()

	got, err := ReadJSON(strings.NewReader(
		`[{"customer_id":1,"product_name":"Milk","category":"Dairy","quantity":2,"purchase_date":"2024-01-05T18:30:00Z"}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got[0].PurchaseDate)
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.Customers = 5
	records := NewGenerator(cfg).Generate()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))
	assert.True(t, strings.HasPrefix(buf.String(), "customer_id,product_name,category,quantity,purchase_date\n"))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadCSV_ColumnOrder(t *testing.T) {
	t.Parallel()

	input := "purchase_date, quantity, category, product_name, customer_id\n2024-02-01, 3, Dairy, Milk, 7\n"
	got, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recommend.PurchaseRecord{
		CustomerID:   7,
		ProductName:  "Milk",
		Category:     "Dairy",
		Quantity:     3,
		PurchaseDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}, got[0])
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	const header = "customer_id,product_name,category,quantity,purchase_date\n"
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "missing header"},
		{"missing column", "customer_id,product_name,quantity,purchase_date\n", `missing column "category"`},
		{"bad customer", header + "abc,Milk,Dairy,1,2024-01-01\n", "csv line 2: invalid customer_id"},
		{"bad quantity", header + "1,Milk,Dairy,x,2024-01-01\n", "invalid quantity"},
		{"bad date", header + "1,Milk,Dairy,1,01/02/2024\n", "invalid purchase_date"},
		{"short row", header + "1,Milk\n", "csv line 2"},
		{"negative quantity", header + "1,Milk,Dairy,-2,2024-01-01\n", "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	records := []recommend.PurchaseRecord{
		{CustomerID: 1, ProductName: "Milk", Category: "Dairy", Quantity: 2, PurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CustomerID: 2, ProductName: "Bread", Category: "Bakery", Quantity: 1, PurchaseDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	jsonPath := filepath.Join(dir, "purchases.json")
	csvPath := filepath.Join(dir, "purchases.csv")

	var jsonBuf, csvBuf bytes.Buffer
	require.NoError(t, WriteJSON(&jsonBuf, records))
	require.NoError(t, WriteCSV(&csvBuf, records))
	require.NoError(t, os.WriteFile(jsonPath, jsonBuf.Bytes(), 0o600))
	require.NoError(t, os.WriteFile(csvPath, csvBuf.Bytes(), 0o600))

	for _, src := range []Source{&JSONFile{Path: jsonPath}, &CSVFile{Path: csvPath}} {
		got, err := src.Load(context.Background())
		require.NoError(t, err, src.Name())
		assert.Equal(t, records, got, src.Name())
	}

	_, err := (&CSVFile{Path: filepath.Join(dir, "missing.csv")}).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type fakeStore struct {
	records []recommend.PurchaseRecord
	err     error
	pingErr error
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeStore) LoadPurchases(context.Context) ([]recommend.PurchaseRecord, error) {
	return f.records, f.err
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	newCfg := func(source string) *config.Config {
		cfg := config.Default()
		cfg.Data.Source = source
		cfg.Data.Path = "data.file"
		return cfg
	}

	src, err := NewSource(newCfg(config.SourceSynthetic), nil)
	require.NoError(t, err)
	assert.IsType(t, &Generator{}, src)

	src, err = NewSource(newCfg(config.SourceJSON), nil)
	require.NoError(t, err)
	assert.Equal(t, &JSONFile{Path: "data.file"}, src)

	src, err = NewSource(newCfg(config.SourceCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, &CSVFile{Path: "data.file"}, src)

	_, err = NewSource(newCfg(config.SourceDuckDB), nil)
	assert.Error(t, err)

	src, err = NewSource(newCfg(config.SourceDuckDB), &fakeStore{})
	require.NoError(t, err)
	assert.Equal(t, config.SourceDuckDB, src.Name())

	_, err = NewSource(newCfg("parquet"), nil)
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestStoreSource_Validates(t *testing.T) {
	t.Parallel()

	store := &fakeStore{records: []recommend.PurchaseRecord{
		{CustomerID: 1, ProductName: "Milk", Category: "", Quantity: 1, PurchaseDate: time.Now()},
	}}
	src := &storeSource{store: store}
	_, err := src.Load(context.Background())
	assert.Error(t, err)

	store.records = nil
	store.err = errors.New("connection lost")
	_, err = src.Load(context.Background())
	assert.EqualError(t, err, "connection lost")

	store.pingErr = errors.New("database closed")
	_, err = src.Load(context.Background())
	assert.EqualError(t, err, "store unreachable: database closed")
}

func TestLoad_RecordsMetrics(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewTestLogger(&logs)

	cfg := DefaultGeneratorConfig()
	cfg.Customers = 3
	gen := NewGenerator(cfg)

	records, err := Load(context.Background(), gen, logger)
	require.NoError(t, err)
	assert.InDelta(t, float64(len(records)),
		testutil.ToFloat64(metrics.DatasetRecords.WithLabelValues(config.SourceSynthetic)), 0)
	assert.Contains(t, logs.String(), "dataset loaded")

	before := testutil.ToFloat64(metrics.DatasetLoadErrors.WithLabelValues(config.SourceDuckDB))
	_, err = Load(context.Background(), &storeSource{store: &fakeStore{err: errors.New("boom")}}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load duckdb dataset")
	assert.InDelta(t, before+1,
		testutil.ToFloat64(metrics.DatasetLoadErrors.WithLabelValues(config.SourceDuckDB)), 0)
}
