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
	"fmt"
)

// Query is a named, parameterless, read-only report query.
type Query struct {
	// Name is the query identifier printed above its results.
	Name string

	// Description describes what the query reports.
	Description string

	// SQL is the statement to run.
	SQL string
}

// Queries is the fixed report, in output order.
var Queries = []Query{
	{
		Name:        "orders_with_customers",
		Description: "10 most recent orders with customer and payment status",
		SQL: `
        SELECT o.order_id,
               c.first_name || ' ' || c.last_name AS customer_name,
               o.order_date,
               o.status,
               o.total_amount,
               p.payment_method,
               p.status AS payment_status
        FROM orders o
        JOIN customers c ON o.customer_id = c.customer_id
        LEFT JOIN payments p ON o.order_id = p.order_id
        ORDER BY o.order_date DESC
        LIMIT 10`,
	},
	{
		Name:        "top_products_by_revenue",
		Description: "5 products with the highest item revenue",
		SQL: `
        SELECT pr.name,
               pr.category,
               SUM(oi.line_total) AS revenue,
               SUM(oi.quantity) AS units_sold
        FROM order_items oi
        JOIN products pr ON oi.product_id = pr.product_id
        GROUP BY pr.product_id
        ORDER BY revenue DESC
        LIMIT 5`,
	},
	{
		Name:        "customer_lifetime_value",
		Description: "10 customers with the highest total order value",
		SQL: `
        SELECT c.customer_id,
               c.first_name || ' ' || c.last_name AS customer_name,
               COUNT(o.order_id) AS total_orders,
               SUM(o.total_amount) AS lifetime_value
        FROM customers c
        JOIN orders o ON o.customer_id = c.customer_id
        GROUP BY c.customer_id
        ORDER BY lifetime_value DESC
        LIMIT 10`,
	},
	{
		Name:        "shipments_status",
		Description: "10 most recently shipped orders with carrier and tracking",
		SQL: `
        SELECT o.order_id,
               c.first_name || ' ' || c.last_name AS customer_name,
               s.carrier,
               s.tracking_number,
               s.status
        FROM shipments s
        JOIN orders o ON s.order_id = o.order_id
        JOIN customers c ON o.customer_id = c.customer_id
        ORDER BY s.shipped_date DESC
        LIMIT 10`,
	},
}

// Select returns the queries named in names, in report order. An empty
// list selects every query.
func Select(names []string) ([]Query, error) {
	if len(names) == 0 {
		return Queries, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := lookup(n); !ok {
			return nil, fmt.Errorf("unknown report query: %s", n)
		}
		wanted[n] = true
	}

	selected := make([]Query, 0, len(wanted))
	for _, q := range Queries {
		if wanted[q.Name] {
			selected = append(selected, q)
		}
	}
	return selected, nil
}

func lookup(name string) (Query, bool) {
	for _, q := range Queries {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}
