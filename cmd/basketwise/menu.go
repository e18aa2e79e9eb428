// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tomtom215/basketwise/internal/dataset"
	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/metrics"
	"github.com/tomtom215/basketwise/internal/recommend"
)

const (
	menuRule          = "=================================================="
	sampleRecordCount = 10
)

func runMenu(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("menu", stderr)
	configPath := fs.String("config", "", "path to config file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}
	logger := logging.WithComponent("menu")

	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		return err
	}
	engine.SetObserver(metrics.EngineObserver{})

	fmt.Fprintln(stdout, "Basketwise Purchase Recommendations")
	fmt.Fprintln(stdout, menuRule)
	fmt.Fprintf(stdout, "\nLoading %s purchase data...\n", source.Name())

	ctx := context.Background()
	records, err := dataset.Load(ctx, source, logger)
	if err != nil {
		return err
	}
	if err := engine.Fit(ctx, records); err != nil {
		return err
	}
	status := engine.Status()
	fmt.Fprintf(stdout, "Loaded %d purchase records for %d customers\n", status.Records, status.Customers)

	m := &menu{
		engine:  engine,
		records: records,
		catalog: dataset.Catalog(),
		in:      bufio.NewScanner(stdin),
		out:     stdout,
	}
	return m.loop()
}

// menu is the interactive loop over a fitted engine.
type menu struct {
	engine  *recommend.Engine
	records []recommend.PurchaseRecord
	catalog []dataset.Product
	in      *bufio.Scanner
	out     io.Writer
}

// loop reads choices until the user exits or input ends.
func (m *menu) loop() error {
	for {
		fmt.Fprintf(m.out, "\n%s\n", menuRule)
		fmt.Fprintln(m.out, "MENU:")
		fmt.Fprintln(m.out, "1. Get recommendations for customer")
		fmt.Fprintln(m.out, "2. View customer insights")
		fmt.Fprintln(m.out, "3. Show sample data")
		fmt.Fprintln(m.out, "4. Exit")

		choice, ok := m.prompt("\nEnter your choice (1-4): ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			if err := m.recommendations(); err != nil {
				return err
			}
		case "2":
			if err := m.insights(); err != nil {
				return err
			}
		case "3":
			m.sample()
		case "4":
			fmt.Fprintln(m.out, "Thank you for using Basketwise!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please enter 1-4.")
		}
	}
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// customerID prompts for an id. ok is false when the input was invalid
// (already reported) or ended.
func (m *menu) customerID() (id int, ok bool, err error) {
	label := "Enter customer ID: "
	if n := m.engine.Status().Customers; n > 0 {
		label = fmt.Sprintf("Enter customer ID (1-%d): ", n)
	}

	line, more := m.prompt(label)
	if !more {
		return 0, false, m.in.Err()
	}
	id, convErr := strconv.Atoi(line)
	if convErr != nil {
		fmt.Fprintln(m.out, "Please enter a valid customer ID!")
		return 0, false, nil
	}
	return id, true, nil
}

func (m *menu) recommendations() error {
	id, ok, err := m.customerID()
	if !ok {
		return err
	}

	served := m.engine.Serve(id, 0)
	recs := served.Products
	fmt.Fprintf(m.out, "\nRecommendations for Customer %d:\n", id)
	if served.ColdStart {
		fmt.Fprintln(m.out, "  (no purchase history, showing popular products)")
	}
	if len(recs) == 0 {
		fmt.Fprintln(m.out, "  No new products to recommend.")
	}
	for i, product := range recs {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, product)
	}
	return nil
}

func (m *menu) insights() error {
	id, ok, err := m.customerID()
	if !ok {
		return err
	}

	insights, _, found := m.engine.Insights(id)
	if !found {
		fmt.Fprintf(m.out, "\nCustomer %d not found\n", id)
		return nil
	}

	fmt.Fprintf(m.out, "\nInsights for Customer %d:\n", id)
	fmt.Fprintf(m.out, "  Total Purchases: %d\n", insights.TotalPurchases)
	fmt.Fprintf(m.out, "  Unique Products: %d\n", insights.UniqueProducts)
	fmt.Fprintf(m.out, "  Favorite Category: %s\n", insights.FavoriteCategory)
	fmt.Fprintf(m.out, "  Avg Quantity: %.2f\n", insights.AvgQuantity)
	fmt.Fprintf(m.out, "  Purchase Frequency: %s\n", insights.PurchaseFrequency)
	return nil
}

func (m *menu) sample() {
	fmt.Fprintf(m.out, "\nSample Purchase Data (first %d records):\n", sampleRecordCount)

	tw := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "customer_id\tproduct_name\tcategory\tquantity\t")
	for i := range min(sampleRecordCount, len(m.records)) {
		r := &m.records[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t\n", r.CustomerID, r.ProductName, r.Category, r.Quantity)
	}
	_ = tw.Flush()

	fmt.Fprintln(m.out, "\nAvailable Products:")
	for _, p := range m.catalog {
		fmt.Fprintf(m.out, "  %d. %s (%s)\n", p.ID, p.Name, p.Category)
	}
}
