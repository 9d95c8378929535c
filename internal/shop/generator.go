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
	"strings"
	"time"

	"github.com/pgEdge/pgedge-shopdata/internal/datagen"
	"github.com/pgEdge/pgedge-shopdata/internal/logging"
)

// Counts sizes a generated dataset.
type Counts struct {
	Customers        int
	Products         int
	Orders           int
	MaxItemsPerOrder int
}

// DefaultCounts returns the default dataset size.
func DefaultCounts() Counts {
	return Counts{
		Customers:        120,
		Products:         60,
		Orders:           300,
		MaxItemsPerOrder: 5,
	}
}

// Validate checks that a dataset of this size can be generated.
func (c Counts) Validate() error {
	switch {
	case c.Customers < 1:
		return fmt.Errorf("customer count must be at least 1, got %d", c.Customers)
	case c.Products < 1:
		return fmt.Errorf("product count must be at least 1, got %d", c.Products)
	case c.Orders < 1:
		return fmt.Errorf("order count must be at least 1, got %d", c.Orders)
	case c.MaxItemsPerOrder < 1:
		return fmt.Errorf("max items per order must be at least 1, got %d", c.MaxItemsPerOrder)
	case c.MaxItemsPerOrder > c.Products:
		return fmt.Errorf("max items per order (%d) exceeds product count (%d)",
			c.MaxItemsPerOrder, c.Products)
	}
	return nil
}

// Generator generates the shop dataset. All randomness comes from its
// faker, and all relative dates are measured back from now, so two
// generators with the same seed and reference time produce the same data.
type Generator struct {
	faker *datagen.Faker
	now   time.Time
}

// NewGenerator creates a generator drawing from faker with dates relative
// to now.
func NewGenerator(faker *datagen.Faker, now time.Time) *Generator {
	return &Generator{
		faker: faker,
		now:   now.UTC(),
	}
}

// timeBetween draws a time in [start, end] at the precision timestamps are
// written with, so values survive a CSV round trip unchanged.
func (g *Generator) timeBetween(start, end time.Time) time.Time {
	return g.faker.DateRange(start, end).UTC().Truncate(time.Microsecond)
}

// Generate builds a complete dataset in dependency order:
// customers, products, orders, order items (which finalize order totals),
// payments, shipments.
func (g *Generator) Generate(counts Counts) (*Dataset, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	logging.Info().
		Int("customers", counts.Customers).
		Int("products", counts.Products).
		Int("orders", counts.Orders).
		Int("max_items_per_order", counts.MaxItemsPerOrder).
		Msg("Generating shop dataset")

	ds := &Dataset{}
	ds.Customers = g.GenerateCustomers(counts.Customers)
	ds.Products = g.GenerateProducts(counts.Products)

	pending := g.GenerateOrders(ds.Customers, counts.Orders)
	ds.OrderItems, ds.Orders = g.GenerateOrderItems(pending, ds.Products, counts.MaxItemsPerOrder)

	ds.Payments = g.GeneratePayments(ds.Orders)
	ds.Shipments = g.GenerateShipments(ds.Orders)

	for _, t := range ds.Tables() {
		logging.Debug().Str("table", t.Name).Int("rows", t.Len).Msg("Generated table")
	}
	return ds, nil
}

// GenerateCustomers returns count customers with IDs 1..count. The ID
// suffix keeps emails unique even when names repeat.
func (g *Generator) GenerateCustomers(count int) []Customer {
	customers := make([]Customer, 0, count)
	start := g.now.AddDate(-2, 0, 0)

	for id := 1; id <= count; id++ {
		first := g.faker.FirstName()
		last := g.faker.LastName()
		customers = append(customers, Customer{
			ID:            id,
			FirstName:     first,
			LastName:      last,
			Email:         fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id),
			Phone:         g.faker.Phone(),
			CreatedAt:     g.timeBetween(start, g.now),
			LoyaltyStatus: datagen.ChooseWeighted(g.faker, loyaltyTiers, loyaltyWeights),
		})
	}
	return customers
}

// GenerateProducts returns count products with IDs 1..count.
func (g *Generator) GenerateProducts(count int) []Product {
	products := make([]Product, 0, count)

	for id := 1; id <= count; id++ {
		category := datagen.Choose(g.faker, productCategories)
		products = append(products, Product{
			ID:       id,
			Name:     fmt.Sprintf("%s %s Item %d", g.faker.Color(), category, id),
			Category: category,
			Price:    Round2(g.faker.Float64(5, 500)),
			StockQty: g.faker.Int(10, 500),
			IsActive: g.faker.Bool(),
		})
	}
	return products
}

// GenerateOrders returns count orders with IDs 1..count, each owned by a
// customer drawn uniformly with replacement. Totals are left at zero until
// GenerateOrderItems computes them.
func (g *Generator) GenerateOrders(customers []Customer, count int) []Order {
	orders := make([]Order, 0, count)
	start := g.now.AddDate(-1, 0, 0)

	for id := 1; id <= count; id++ {
		customer := datagen.Choose(g.faker, customers)
		orders = append(orders, Order{
			ID:              id,
			CustomerID:      customer.ID,
			OrderDate:       g.timeBetween(start, g.now),
			Status:          datagen.ChooseWeighted(g.faker, orderStatuses, orderStatusWeights),
			TotalAmount:     0,
			ShippingAddress: g.faker.Address(),
		})
	}
	return orders
}

// GenerateOrderItems draws between 1 and maxItemsPerOrder distinct products
// for every order and returns the items, with IDs dense across the whole
// run, together with a copy of orders whose TotalAmount holds the rounded
// sum of its line totals. The orders passed in are not modified.
func (g *Generator) GenerateOrderItems(orders []Order, products []Product, maxItemsPerOrder int) ([]OrderItem, []Order) {
	items := make([]OrderItem, 0, len(orders)*(maxItemsPerOrder+1)/2)
	finalized := make([]Order, len(orders))
	progress := datagen.NewProgressReporter("Generating", "order_items", int64(len(orders)), int64(max(1, len(orders)/10)))

	nextID := 1
	for i, order := range orders {
		k := g.faker.Int(1, maxItemsPerOrder)
		lineTotals := make([]float64, 0, k)

		for _, product := range datagen.Sample(g.faker, products, k) {
			quantity := g.faker.Int(1, 4)
			unitPrice := product.Price * g.faker.Float64(0.9, 1.1)
			lineTotal := Round2(float64(quantity) * unitPrice)
			lineTotals = append(lineTotals, lineTotal)

			items = append(items, OrderItem{
				ID:        nextID,
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: Round2(unitPrice),
				LineTotal: lineTotal,
			})
			nextID++
		}

		order.TotalAmount = SumRounded(lineTotals)
		finalized[i] = order
		progress.Update(1)
	}

	progress.Done()
	return items, finalized
}

// GeneratePayments returns one payment per order. Payment IDs equal order
// IDs and amounts mirror the finalized order totals, so the orders must
// already have been through GenerateOrderItems.
func (g *Generator) GeneratePayments(orders []Order) []Payment {
	payments := make([]Payment, 0, len(orders))

	for _, order := range orders {
		status := PaymentRefunded
		if order.Status != OrderRefunded {
			status = datagen.ChooseWeighted(g.faker, paymentStatuses, paymentStatusWeights)
		}
		payments = append(payments, Payment{
			ID:             order.ID,
			OrderID:        order.ID,
			PaymentDate:    order.OrderDate.Add(time.Duration(g.faker.Int(1, 72)) * time.Hour),
			PaymentMethod:  datagen.Choose(g.faker, paymentMethods),
			Amount:         order.TotalAmount,
			Status:         status,
			TransactionRef: fmt.Sprintf("TXN-%05d", order.ID),
		})
	}
	return payments
}

// GenerateShipments returns one shipment for every order that ships;
// cancelled and refunded orders get none. Shipment IDs are assigned 1, 2,
// 3... in emission order, so skipped orders leave no gaps and a shipment ID
// says nothing about its order ID.
func (g *Generator) GenerateShipments(orders []Order) []Shipment {
	shipments := make([]Shipment, 0, len(orders))

	for _, order := range orders {
		if !Ships(order.Status) {
			continue
		}
		shipped := order.OrderDate.AddDate(0, 0, g.faker.Int(1, 5))
		shipments = append(shipments, Shipment{
			ID:               len(shipments) + 1,
			OrderID:          order.ID,
			Carrier:          datagen.Choose(g.faker, carriers),
			TrackingNumber:   g.faker.Bothify("??########"),
			ShippedDate:      shipped,
			DeliveryEstimate: shipped.AddDate(0, 0, g.faker.Int(2, 7)),
			Status:           datagen.Choose(g.faker, shipmentStatuses),
		})
	}
	return shipments
}
