//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestQueriesOrder(t *testing.T) {
	want := []string{
		"orders_with_customers",
		"top_products_by_revenue",
		"customer_lifetime_value",
		"shipments_status",
	}
	if len(Queries) != len(want) {
		t.Fatalf("len(Queries) = %d, want %d", len(Queries), len(want))
	}
	for i, q := range Queries {
		if q.Name != want[i] {
			t.Errorf("Queries[%d].Name = %q, want %q", i, q.Name, want[i])
		}
		if q.Description == "" {
			t.Errorf("query %s has no description", q.Name)
		}
		if !strings.Contains(q.SQL, "SELECT") {
			t.Errorf("query %s has no SELECT", q.Name)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{"all", nil, []string{"orders_with_customers", "top_products_by_revenue",
			"customer_lifetime_value", "shipments_status"}, false},
		{"subset keeps report order", []string{"shipments_status", "orders_with_customers"},
			[]string{"orders_with_customers", "shipments_status"}, false},
		{"duplicates", []string{"top_products_by_revenue", "top_products_by_revenue"},
			[]string{"top_products_by_revenue"}, false},
		{"unknown", []string{"orders_with_customers", "nope"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.names)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Select() should fail")
				}
				if !strings.Contains(err.Error(), "nope") {
					t.Errorf("error %q should name the unknown query", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Name != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestPrint(t *testing.T) {
	res := &Result{
		Name:    "orders_with_customers",
		Columns: []string{"order_id", "customer_name", "total_amount", "payment_method"},
		Rows: [][]any{
			{int32(7), "Ada Lovelace", 42.5, "paypal"},
			{int32(3), "Alan Turing", 10.0, nil},
		},
	}

	var buf bytes.Buffer
	if err := Print(&buf, res); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "\n---- orders_with_customers ----\n" +
		"order_id | customer_name | total_amount | payment_method\n" +
		"7 | Ada Lovelace | 42.5 | paypal\n" +
		"3 | Alan Turing | 10 | None\n"
	if buf.String() != want {
		t.Errorf("Print() output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{Name: "shipments_status", Columns: []string{"order_id"}}
	if err := Print(&buf, res); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "\n---- shipments_status ----\nNo results.\n"
	if buf.String() != want {
		t.Errorf("Print() = %q, want %q", buf.String(), want)
	}
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{"text", "text"},
		{[]byte("raw"), "raw"},
		{int64(12), "12"},
		{int32(-3), "-3"},
		{19.99, "19.99"},
		{true, "true"},
		{ts, ts.String()},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
