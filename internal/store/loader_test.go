//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-shopdata/internal/datagen"
	"github.com/pgEdge/pgedge-shopdata/internal/shop"
	"github.com/pgEdge/pgedge-shopdata/internal/tabular"
)

func TestTablesMatchGeneratorColumns(t *testing.T) {
	want := map[string][]string{
		shop.TableCustomers:  shop.CustomerColumns,
		shop.TableProducts:   shop.ProductColumns,
		shop.TableOrders:     shop.OrderColumns,
		shop.TableOrderItems: shop.OrderItemColumns,
		shop.TablePayments:   shop.PaymentColumns,
		shop.TableShipments:  shop.ShipmentColumns,
	}

	if len(Tables) != len(shop.TableNames) {
		t.Fatalf("Expected %d tables, got %d", len(shop.TableNames), len(Tables))
	}
	for i, table := range Tables {
		if table.Name != shop.TableNames[i] {
			t.Errorf("Table %d: expected %s, got %s", i, shop.TableNames[i], table.Name)
		}
		cols := table.ColumnNames()
		if len(cols) != len(want[table.Name]) {
			t.Fatalf("%s: expected %d columns, got %d", table.Name, len(want[table.Name]), len(cols))
		}
		for j, c := range cols {
			if c != want[table.Name][j] {
				t.Errorf("%s column %d: expected %s, got %s", table.Name, j, want[table.Name][j], c)
			}
		}
	}
}

func TestConvertRow(t *testing.T) {
	products := Tables[1]
	row := tabular.Row{
		"product_id": "7",
		"name":       "Teal Toys Item 7",
		"category":   "Toys",
		"price":      "19.99",
		"stock_qty":  "40",
		"is_active":  "1",
		"extra":      "ignored",
	}

	values, err := ConvertRow(products, row)
	if err != nil {
		t.Fatalf("ConvertRow failed: %v", err)
	}
	if len(values) != 6 {
		t.Fatalf("Expected 6 values, got %d", len(values))
	}
	if values[0] != int32(7) {
		t.Errorf("Expected product_id int32(7), got %#v", values[0])
	}
	if values[1] != "Teal Toys Item 7" {
		t.Errorf("Unexpected name %#v", values[1])
	}
	if values[3] != 19.99 {
		t.Errorf("Expected price 19.99, got %#v", values[3])
	}
	if values[5] != int32(1) {
		t.Errorf("Expected is_active int32(1), got %#v", values[5])
	}
}

func TestConvertRowErrors(t *testing.T) {
	products := Tables[1]
	base := func() tabular.Row {
		return tabular.Row{
			"product_id": "1", "name": "x", "category": "Toys",
			"price": "1.00", "stock_qty": "1", "is_active": "0",
		}
	}

	tests := []struct {
		name   string
		mutate func(r tabular.Row)
	}{
		{"missing column", func(r tabular.Row) { delete(r, "price") }},
		{"bad integer", func(r tabular.Row) { r["stock_qty"] = "many" }},
		{"bad real", func(r tabular.Row) { r["price"] = "$1" }},
		{"integer overflow", func(r tabular.Row) { r["product_id"] = "99999999999" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := base()
			tt.mutate(row)
			_, err := ConvertRow(products, row)
			if !errors.Is(err, tabular.ErrMalformedRecord) {
				t.Errorf("Expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

func TestCheckDataDir(t *testing.T) {
	dir := t.TempDir()
	if err := CheckDataDir(dir); err != nil {
		t.Errorf("Existing directory should pass: %v", err)
	}

	err := CheckDataDir(filepath.Join(dir, "missing"))
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Errorf("Expected ErrPrerequisiteMissing, got %v", err)
	}

	file := filepath.Join(dir, "file.csv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckDataDir(file); !errors.Is(err, ErrPrerequisiteMissing) {
		t.Errorf("Expected ErrPrerequisiteMissing for a file, got %v", err)
	}
}

func TestReadTableFromGeneratedData(t *testing.T) {
	dir := t.TempDir()
	gen := shop.NewGenerator(datagen.NewFakerWithSeed(3), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ds, err := gen.Generate(shop.DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := shop.WriteDir(dir, ds); err != nil {
		t.Fatalf("WriteDir failed: %v", err)
	}

	counts := map[string]int{}
	for _, info := range ds.Tables() {
		counts[info.Name] = info.Len
	}

	for _, table := range Tables {
		rows, err := ReadTable(dir, table)
		if err != nil {
			t.Fatalf("ReadTable(%s) failed: %v", table.Name, err)
		}
		if len(rows) != counts[table.Name] {
			t.Errorf("%s: expected %d rows, got %d", table.Name, counts[table.Name], len(rows))
		}
	}
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(t.TempDir(), Tables[0])
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Errorf("Expected ErrPrerequisiteMissing, got %v", err)
	}
}

func TestLoadMissingDataDir(t *testing.T) {
	// The directory check happens before the database is touched.
	l := NewLoader(nil, filepath.Join(t.TempDir(), "nope"))
	_, err := l.Load(context.Background())
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Errorf("Expected ErrPrerequisiteMissing, got %v", err)
	}
}

func TestLoadInfoMetadata(t *testing.T) {
	info := LoadInfo{
		RunID:     "abc",
		DataDir:   "data",
		LoadedAt:  time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		RowCounts: map[string]int64{"orders": 300},
	}

	m := info.Metadata()
	if m["run_id"] != "abc" {
		t.Errorf("run_id mismatch: %s", m["run_id"])
	}
	if m["loaded_at"] != "2026-02-03T04:05:06Z" {
		t.Errorf("loaded_at mismatch: %s", m["loaded_at"])
	}
	if m["rows_orders"] != "300" {
		t.Errorf("rows_orders mismatch: %s", m["rows_orders"])
	}
	if m["version"] == "" {
		t.Error("version should be recorded")
	}
}
