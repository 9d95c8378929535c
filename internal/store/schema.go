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
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgEdge/pgedge-shopdata/internal/shop"
)

// ColumnType is the storage class of a column.
type ColumnType int

const (
	Text ColumnType = iota
	Integer
	Real
)

// Column is one column of a table, named exactly like the CSV header.
type Column struct {
	Name string
	Type ColumnType
}

// Table describes one table of the schema and the CSV file it is loaded
// from.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the table's column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Tables lists the schema in load order; parents precede children so that
// foreign keys resolve while copying.
var Tables = []Table{
	{
		Name: shop.TableCustomers,
		Columns: []Column{
			{"customer_id", Integer},
			{"first_name", Text},
			{"last_name", Text},
			{"email", Text},
			{"phone", Text},
			{"created_at", Text},
			{"loyalty_status", Text},
		},
	},
	{
		Name: shop.TableProducts,
		Columns: []Column{
			{"product_id", Integer},
			{"name", Text},
			{"category", Text},
			{"price", Real},
			{"stock_qty", Integer},
			{"is_active", Integer},
		},
	},
	{
		Name: shop.TableOrders,
		Columns: []Column{
			{"order_id", Integer},
			{"customer_id", Integer},
			{"order_date", Text},
			{"status", Text},
			{"total_amount", Real},
			{"shipping_address", Text},
		},
	},
	{
		Name: shop.TableOrderItems,
		Columns: []Column{
			{"order_item_id", Integer},
			{"order_id", Integer},
			{"product_id", Integer},
			{"quantity", Integer},
			{"unit_price", Real},
			{"line_total", Real},
		},
	},
	{
		Name: shop.TablePayments,
		Columns: []Column{
			{"payment_id", Integer},
			{"order_id", Integer},
			{"payment_date", Text},
			{"payment_method", Text},
			{"amount", Real},
			{"status", Text},
			{"transaction_ref", Text},
		},
	},
	{
		Name: shop.TableShipments,
		Columns: []Column{
			{"shipment_id", Integer},
			{"order_id", Integer},
			{"carrier", Text},
			{"tracking_number", Text},
			{"shipped_date", Text},
			{"delivery_estimate", Text},
			{"status", Text},
		},
	},
}

const createSchemaSQL = `
-- Customers: registered shoppers
CREATE TABLE customers (
    customer_id    INTEGER PRIMARY KEY,
    first_name     TEXT NOT NULL,
    last_name      TEXT NOT NULL,
    email          TEXT UNIQUE NOT NULL,
    phone          TEXT,
    created_at     TEXT NOT NULL,
    loyalty_status TEXT NOT NULL
);

-- Products: catalog
CREATE TABLE products (
    product_id INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    category   TEXT NOT NULL,
    price      DOUBLE PRECISION NOT NULL,
    stock_qty  INTEGER NOT NULL,
    is_active  INTEGER NOT NULL CHECK (is_active IN (0, 1))
);

-- Orders: order headers
CREATE TABLE orders (
    order_id         INTEGER PRIMARY KEY,
    customer_id      INTEGER NOT NULL REFERENCES customers(customer_id),
    order_date       TEXT NOT NULL,
    status           TEXT NOT NULL,
    total_amount     DOUBLE PRECISION NOT NULL,
    shipping_address TEXT NOT NULL
);

-- Order items: line items
CREATE TABLE order_items (
    order_item_id INTEGER PRIMARY KEY,
    order_id      INTEGER NOT NULL REFERENCES orders(order_id),
    product_id    INTEGER NOT NULL REFERENCES products(product_id),
    quantity      INTEGER NOT NULL,
    unit_price    DOUBLE PRECISION NOT NULL,
    line_total    DOUBLE PRECISION NOT NULL
);

-- Payments: one per order
CREATE TABLE payments (
    payment_id      INTEGER PRIMARY KEY,
    order_id        INTEGER NOT NULL REFERENCES orders(order_id),
    payment_date    TEXT NOT NULL,
    payment_method  TEXT NOT NULL,
    amount          DOUBLE PRECISION NOT NULL,
    status          TEXT NOT NULL,
    transaction_ref TEXT NOT NULL
);

-- Shipments: at most one per order
CREATE TABLE shipments (
    shipment_id       INTEGER PRIMARY KEY,
    order_id          INTEGER NOT NULL REFERENCES orders(order_id),
    carrier           TEXT NOT NULL,
    tracking_number   TEXT NOT NULL,
    shipped_date      TEXT NOT NULL,
    delivery_estimate TEXT NOT NULL,
    status            TEXT NOT NULL
);

CREATE INDEX idx_orders_customer ON orders(customer_id);
CREATE INDEX idx_order_items_order ON order_items(order_id);
CREATE INDEX idx_order_items_product ON order_items(product_id);
CREATE INDEX idx_payments_order ON payments(order_id);
CREATE INDEX idx_shipments_order ON shipments(order_id);
`

// Drop schema SQL, children first.
const dropSchemaSQL = `
DROP TABLE IF EXISTS shipments CASCADE;
DROP TABLE IF EXISTS payments CASCADE;
DROP TABLE IF EXISTS order_items CASCADE;
DROP TABLE IF EXISTS orders CASCADE;
DROP TABLE IF EXISTS products CASCADE;
DROP TABLE IF EXISTS customers CASCADE;
`

// Execer is the subset of DB and pgx.Tx used for DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// RecreateSchema drops the six shop tables if they exist and creates them
// again, empty.
func RecreateSchema(ctx context.Context, db Execer) error {
	if err := DropSchema(ctx, db); err != nil {
		return err
	}
	if _, err := db.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema drops the six shop tables.
func DropSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}
