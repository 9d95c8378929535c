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
	"errors"
	"fmt"
)

// Dataset holds the six generated entity collections.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
	Shipments  []Shipment
}

// TableInfo names one entity collection and its size.
type TableInfo struct {
	Name string
	Len  int
}

// Table names, in load order.
const (
	TableCustomers  = "customers"
	TableProducts   = "products"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TablePayments   = "payments"
	TableShipments  = "shipments"
)

// TableNames lists the tables in dependency order.
var TableNames = []string{
	TableCustomers, TableProducts, TableOrders, TableOrderItems, TablePayments, TableShipments,
}

// Tables returns the name and row count of every collection in
// dependency order.
func (d *Dataset) Tables() []TableInfo {
	return []TableInfo{
		{TableCustomers, len(d.Customers)},
		{TableProducts, len(d.Products)},
		{TableOrders, len(d.Orders)},
		{TableOrderItems, len(d.OrderItems)},
		{TablePayments, len(d.Payments)},
		{TableShipments, len(d.Shipments)},
	}
}

// ItemsByOrder groups order items by order ID.
func (d *Dataset) ItemsByOrder() map[int][]OrderItem {
	byOrder := make(map[int][]OrderItem, len(d.Orders))
	for _, item := range d.OrderItems {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	return byOrder
}

// Validate checks referential integrity and the derived-field rules of the
// dataset. All violations found are returned joined into one error.
func (d *Dataset) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	customers := make(map[int]bool, len(d.Customers))
	emails := make(map[string]int, len(d.Customers))
	for _, c := range d.Customers {
		customers[c.ID] = true
		if other, dup := emails[c.Email]; dup {
			fail("customer %d: email %q already used by customer %d", c.ID, c.Email, other)
		}
		emails[c.Email] = c.ID
	}

	products := make(map[int]bool, len(d.Products))
	for _, p := range d.Products {
		products[p.ID] = true
	}

	orders := make(map[int]Order, len(d.Orders))
	for _, o := range d.Orders {
		orders[o.ID] = o
		if !customers[o.CustomerID] {
			fail("order %d: unknown customer %d", o.ID, o.CustomerID)
		}
	}

	for orderID, items := range d.ItemsByOrder() {
		order, ok := orders[orderID]
		if !ok {
			fail("order items reference unknown order %d", orderID)
			continue
		}
		seen := make(map[int]bool, len(items))
		lineTotals := make([]float64, 0, len(items))
		for _, item := range items {
			if !products[item.ProductID] {
				fail("order item %d: unknown product %d", item.ID, item.ProductID)
			}
			if seen[item.ProductID] {
				fail("order %d: product %d appears more than once", orderID, item.ProductID)
			}
			seen[item.ProductID] = true
			lineTotals = append(lineTotals, item.LineTotal)
		}
		if want := SumRounded(lineTotals); !moneyEqual(order.TotalAmount, want) {
			fail("order %d: total_amount %.2f, items sum to %.2f", orderID, order.TotalAmount, want)
		}
	}

	itemCounts := make(map[int]int, len(d.Orders))
	for _, item := range d.OrderItems {
		itemCounts[item.OrderID]++
	}
	for _, o := range d.Orders {
		if itemCounts[o.ID] == 0 {
			fail("order %d: no order items", o.ID)
		}
	}

	payments := make(map[int]Payment, len(d.Payments))
	for _, p := range d.Payments {
		order, ok := orders[p.OrderID]
		if !ok {
			fail("payment %d: unknown order %d", p.ID, p.OrderID)
			continue
		}
		if _, dup := payments[p.OrderID]; dup {
			fail("order %d: more than one payment", p.OrderID)
		}
		payments[p.OrderID] = p
		if p.ID != p.OrderID {
			fail("payment %d: id differs from order id %d", p.ID, p.OrderID)
		}
		if !moneyEqual(p.Amount, order.TotalAmount) {
			fail("payment %d: amount %.2f, order total %.2f", p.ID, p.Amount, order.TotalAmount)
		}
		if order.Status == OrderRefunded && p.Status != PaymentRefunded {
			fail("payment %d: status %q for refunded order", p.ID, p.Status)
		}
		if p.PaymentDate.Before(order.OrderDate) {
			fail("payment %d: paid before order %d was placed", p.ID, order.ID)
		}
	}
	if len(d.Payments) != len(d.Orders) {
		fail("%d payments for %d orders", len(d.Payments), len(d.Orders))
	}

	shipped := make(map[int]bool, len(d.Shipments))
	for i, s := range d.Shipments {
		if s.ID != i+1 {
			fail("shipment at position %d has id %d, ids must be dense", i+1, s.ID)
		}
		order, ok := orders[s.OrderID]
		if !ok {
			fail("shipment %d: unknown order %d", s.ID, s.OrderID)
			continue
		}
		if shipped[s.OrderID] {
			fail("order %d: more than one shipment", s.OrderID)
		}
		shipped[s.OrderID] = true
		if !Ships(order.Status) {
			fail("shipment %d: order %d is %s", s.ID, order.ID, order.Status)
		}
		if s.ShippedDate.Before(order.OrderDate) || s.DeliveryEstimate.Before(s.ShippedDate) {
			fail("shipment %d: dates out of order", s.ID)
		}
	}
	for _, o := range d.Orders {
		if Ships(o.Status) && !shipped[o.ID] {
			fail("order %d: %s order has no shipment", o.ID, o.Status)
		}
	}

	return errors.Join(errs...)
}

func moneyEqual(a, b float64) bool {
	return Round2(a) == Round2(b)
}
