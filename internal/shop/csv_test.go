//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package shop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-shopdata/internal/tabular"
)

func valuesOf[T tabular.Record](records []T) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = r.Values()
	}
	return out
}

func TestWriteReadDirRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	ds := generateDefault(t, 21)

	require.NoError(t, WriteDir(dir, ds))
	for _, name := range TableNames {
		assert.FileExists(t, filepath.Join(dir, FileName(name)))
	}

	back, err := ReadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, valuesOf(ds.Customers), valuesOf(back.Customers))
	assert.Equal(t, valuesOf(ds.Products), valuesOf(back.Products))
	assert.Equal(t, valuesOf(ds.Orders), valuesOf(back.Orders))
	assert.Equal(t, valuesOf(ds.OrderItems), valuesOf(back.OrderItems))
	assert.Equal(t, valuesOf(ds.Payments), valuesOf(back.Payments))
	assert.Equal(t, valuesOf(ds.Shipments), valuesOf(back.Shipments))

	for i, o := range back.Orders {
		assert.InDelta(t, ds.Orders[i].TotalAmount, o.TotalAmount, 0.005)
		assert.True(t, ds.Orders[i].OrderDate.Equal(o.OrderDate))
	}
	for i, p := range back.Products {
		assert.InDelta(t, ds.Products[i].Price, p.Price, 0.005)
		assert.Equal(t, ds.Products[i].IsActive, p.IsActive)
	}

	require.NoError(t, back.Validate())
}

func TestWriteDirHeaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, fixture()))

	raw, err := os.ReadFile(filepath.Join(dir, "customers.csv"))
	require.NoError(t, err)
	firstLine := strings.SplitN(string(raw), "\n", 2)[0]
	assert.Equal(t, strings.Join(CustomerColumns, ","), firstLine)

	raw, err = os.ReadFile(filepath.Join(dir, "products.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1,Red Toys Item 1,Toys,10.00,20,1\n")
	assert.Contains(t, string(raw), "2,Blue Beauty Item 2,Beauty,20.00,30,0\n")

	raw, err = os.ReadFile(filepath.Join(dir, "payments.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1,1,2026-03-01T10:00:00.000000,paypal,40.00,captured,TXN-00001\n")
}

func TestWriteDirFailsOnEmptyCollection(t *testing.T) {
	d := fixture()
	d.Shipments = nil

	err := WriteDir(t.TempDir(), d)
	assert.ErrorIs(t, err, tabular.ErrNoRecords)
}

func TestReadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, fixture()))
	require.NoError(t, os.Remove(filepath.Join(dir, "payments.csv")))

	_, err := ReadDir(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDirMalformedValues(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "non-numeric price",
			file:    "products.csv",
			content: "product_id,name,category,price,stock_qty,is_active\n1,x,Toys,cheap,3,1\n",
		},
		{
			name:    "bad active flag",
			file:    "products.csv",
			content: "product_id,name,category,price,stock_qty,is_active\n1,x,Toys,1.00,3,2\n",
		},
		{
			name:    "missing column",
			file:    "orders.csv",
			content: "order_id,customer_id,order_date,status,total_amount\n1,1,2026-03-01T09:00:00.000000,completed,40.00\n",
		},
		{
			name:    "bad timestamp",
			file:    "customers.csv",
			content: "customer_id,first_name,last_name,email,phone,created_at,loyalty_status\n1,a,b,c,d,yesterday,gold\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, WriteDir(dir, fixture()))
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.content), 0o644))

			_, err := ReadDir(dir)
			assert.ErrorIs(t, err, tabular.ErrMalformedRecord)
		})
	}
}
