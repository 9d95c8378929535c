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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pgEdge/pgedge-shopdata/internal/logging"
	"github.com/pgEdge/pgedge-shopdata/internal/tabular"
)

// FileName returns the CSV file name for a table.
func FileName(table string) string {
	return table + ".csv"
}

// WriteDir writes every collection of the dataset to <dir>/<table>.csv,
// creating dir if needed.
func WriteDir(dir string, d *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	writers := []struct {
		table string
		write func(path string) error
		rows  int
	}{
		{TableCustomers, func(p string) error { return tabular.WriteFile(p, d.Customers) }, len(d.Customers)},
		{TableProducts, func(p string) error { return tabular.WriteFile(p, d.Products) }, len(d.Products)},
		{TableOrders, func(p string) error { return tabular.WriteFile(p, d.Orders) }, len(d.Orders)},
		{TableOrderItems, func(p string) error { return tabular.WriteFile(p, d.OrderItems) }, len(d.OrderItems)},
		{TablePayments, func(p string) error { return tabular.WriteFile(p, d.Payments) }, len(d.Payments)},
		{TableShipments, func(p string) error { return tabular.WriteFile(p, d.Shipments) }, len(d.Shipments)},
	}

	for _, w := range writers {
		path := filepath.Join(dir, FileName(w.table))
		if err := w.write(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", w.table, err)
		}
		logging.Info().
			Str("table", w.table).
			Int("rows", w.rows).
			Str("path", path).
			Msg("Wrote CSV file")
	}
	return nil
}

// ReadDir reads a dataset previously written by WriteDir.
func ReadDir(dir string) (*Dataset, error) {
	d := &Dataset{}
	var err error

	if d.Customers, err = readTable(dir, TableCustomers, parseCustomer); err != nil {
		return nil, err
	}
	if d.Products, err = readTable(dir, TableProducts, parseProduct); err != nil {
		return nil, err
	}
	if d.Orders, err = readTable(dir, TableOrders, parseOrder); err != nil {
		return nil, err
	}
	if d.OrderItems, err = readTable(dir, TableOrderItems, parseOrderItem); err != nil {
		return nil, err
	}
	if d.Payments, err = readTable(dir, TablePayments, parsePayment); err != nil {
		return nil, err
	}
	if d.Shipments, err = readTable(dir, TableShipments, parseShipment); err != nil {
		return nil, err
	}
	return d, nil
}

func readTable[T any](dir, table string, parse func(*rowParser) T) ([]T, error) {
	_, rows, err := tabular.ReadFile(filepath.Join(dir, FileName(table)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		p := &rowParser{row: row}
		v := parse(p)
		if p.err != nil {
			return nil, fmt.Errorf("%s row %d: %w", table, i+1, p.err)
		}
		out = append(out, v)
	}
	return out, nil
}

// rowParser converts columns of one row, remembering the first failure.
type rowParser struct {
	row tabular.Row
	err error
}

func (p *rowParser) asString(col string) string {
	if p.err != nil {
		return ""
	}
	v, err := p.row.Require(col)
	p.err = err
	return v
}

func (p *rowParser) asInt(col string) int {
	s := p.asString(col)
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = fmt.Errorf("%w: column %s: %v", tabular.ErrMalformedRecord, col, err)
	}
	return v
}

func (p *rowParser) asFloat(col string) float64 {
	s := p.asString(col)
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: column %s: %v", tabular.ErrMalformedRecord, col, err)
	}
	return v
}

func (p *rowParser) asBool(col string) bool {
	switch v := p.asInt(col); {
	case p.err != nil:
		return false
	case v == 0 || v == 1:
		return v == 1
	default:
		p.err = fmt.Errorf("%w: column %s must be 0 or 1, got %d", tabular.ErrMalformedRecord, col, v)
		return false
	}
}

func (p *rowParser) asTime(col string) time.Time {
	s := p.asString(col)
	if p.err != nil {
		return time.Time{}
	}
	v, err := time.Parse(TimestampLayout, s)
	if err != nil {
		p.err = fmt.Errorf("%w: column %s: %v", tabular.ErrMalformedRecord, col, err)
	}
	return v
}

func parseCustomer(p *rowParser) Customer {
	return Customer{
		ID:            p.asInt("customer_id"),
		FirstName:     p.asString("first_name"),
		LastName:      p.asString("last_name"),
		Email:         p.asString("email"),
		Phone:         p.asString("phone"),
		CreatedAt:     p.asTime("created_at"),
		LoyaltyStatus: p.asString("loyalty_status"),
	}
}

func parseProduct(p *rowParser) Product {
	return Product{
		ID:       p.asInt("product_id"),
		Name:     p.asString("name"),
		Category: p.asString("category"),
		Price:    p.asFloat("price"),
		StockQty: p.asInt("stock_qty"),
		IsActive: p.asBool("is_active"),
	}
}

func parseOrder(p *rowParser) Order {
	return Order{
		ID:              p.asInt("order_id"),
		CustomerID:      p.asInt("customer_id"),
		OrderDate:       p.asTime("order_date"),
		Status:          p.asString("status"),
		TotalAmount:     p.asFloat("total_amount"),
		ShippingAddress: p.asString("shipping_address"),
	}
}

func parseOrderItem(p *rowParser) OrderItem {
	return OrderItem{
		ID:        p.asInt("order_item_id"),
		OrderID:   p.asInt("order_id"),
		ProductID: p.asInt("product_id"),
		Quantity:  p.asInt("quantity"),
		UnitPrice: p.asFloat("unit_price"),
		LineTotal: p.asFloat("line_total"),
	}
}

func parsePayment(p *rowParser) Payment {
	return Payment{
		ID:             p.asInt("payment_id"),
		OrderID:        p.asInt("order_id"),
		PaymentDate:    p.asTime("payment_date"),
		PaymentMethod:  p.asString("payment_method"),
		Amount:         p.asFloat("amount"),
		Status:         p.asString("status"),
		TransactionRef: p.asString("transaction_ref"),
	}
}

func parseShipment(p *rowParser) Shipment {
	return Shipment{
		ID:               p.asInt("shipment_id"),
		OrderID:          p.asInt("order_id"),
		Carrier:          p.asString("carrier"),
		TrackingNumber:   p.asString("tracking_number"),
		ShippedDate:      p.asTime("shipped_date"),
		DeliveryEstimate: p.asTime("delivery_estimate"),
		Status:           p.asString("status"),
	}
}
