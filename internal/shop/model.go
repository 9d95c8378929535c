//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package shop generates a referentially consistent synthetic e-commerce
// dataset: customers, products, orders, order items, payments and
// shipments.
package shop

import (
	"strconv"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for every timestamp column.
// It is fixed width so that text ordering matches chronological ordering.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Order statuses.
const (
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// Payment statuses.
const (
	PaymentCaptured = "captured"
	PaymentPending  = "pending"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Reference data
var (
	loyaltyTiers   = []string{"bronze", "silver", "gold", "platinum"}
	loyaltyWeights = []int{50, 30, 15, 5}

	productCategories = []string{
		"Apparel", "Electronics", "Home & Kitchen", "Beauty", "Outdoors", "Toys",
	}

	orderStatuses      = []string{OrderProcessing, OrderCompleted, OrderCancelled, OrderRefunded}
	orderStatusWeights = []int{50, 35, 10, 5}

	paymentMethods        = []string{"credit_card", "paypal", "bank_transfer", "gift_card"}
	paymentStatuses       = []string{PaymentCaptured, PaymentPending, PaymentFailed, PaymentRefunded}
	paymentStatusWeights  = []int{70, 20, 5, 5}
	carriers              = []string{"DHL", "FedEx", "UPS", "USPS", "Royal Mail"}
	shipmentStatuses      = []string{"label_created", "in_transit", "delivered", "delayed"}
	nonShippingOrderState = map[string]bool{OrderCancelled: true, OrderRefunded: true}
)

// Ships reports whether an order in the given status gets a shipment.
func Ships(status string) bool {
	return !nonShippingOrderState[status]
}

// Customer is a registered shopper.
type Customer struct {
	ID            int
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	CreatedAt     time.Time
	LoyaltyStatus string
}

// Product is a catalog entry.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    float64
	StockQty int
	IsActive bool
}

// Order is an order header. TotalAmount is zero until the order's items
// have been generated; see Generator.GenerateOrderItems.
type Order struct {
	ID              int
	CustomerID      int
	OrderDate       time.Time
	Status          string
	TotalAmount     float64
	ShippingAddress string
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// Payment settles an order. There is exactly one per order and its ID is
// the order ID.
type Payment struct {
	ID             int
	OrderID        int
	PaymentDate    time.Time
	PaymentMethod  string
	Amount         float64
	Status         string
	TransactionRef string
}

// Shipment delivers an order. Shipment IDs are a dense running counter in
// emission order and do not correlate with order IDs.
type Shipment struct {
	ID               int
	OrderID          int
	Carrier          string
	TrackingNumber   string
	ShippedDate      time.Time
	DeliveryEstimate time.Time
	Status           string
}

// Column headers, in file order.
var (
	CustomerColumns = []string{
		"customer_id", "first_name", "last_name", "email", "phone", "created_at", "loyalty_status",
	}
	ProductColumns = []string{
		"product_id", "name", "category", "price", "stock_qty", "is_active",
	}
	OrderColumns = []string{
		"order_id", "customer_id", "order_date", "status", "total_amount", "shipping_address",
	}
	OrderItemColumns = []string{
		"order_item_id", "order_id", "product_id", "quantity", "unit_price", "line_total",
	}
	PaymentColumns = []string{
		"payment_id", "order_id", "payment_date", "payment_method", "amount", "status", "transaction_ref",
	}
	ShipmentColumns = []string{
		"shipment_id", "order_id", "carrier", "tracking_number", "shipped_date", "delivery_estimate", "status",
	}
)

// Header implements tabular.Record.
func (c Customer) Header() []string { return CustomerColumns }

// Values implements tabular.Record.
func (c Customer) Values() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		formatTime(c.CreatedAt),
		c.LoyaltyStatus,
	}
}

func (p Product) Header() []string { return ProductColumns }

func (p Product) Values() []string {
	active := "0"
	if p.IsActive {
		active = "1"
	}
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Category,
		formatMoney(p.Price),
		strconv.Itoa(p.StockQty),
		active,
	}
}

func (o Order) Header() []string { return OrderColumns }

func (o Order) Values() []string {
	return []string{
		strconv.Itoa(o.ID),
		strconv.Itoa(o.CustomerID),
		formatTime(o.OrderDate),
		o.Status,
		formatMoney(o.TotalAmount),
		o.ShippingAddress,
	}
}

func (i OrderItem) Header() []string { return OrderItemColumns }

func (i OrderItem) Values() []string {
	return []string{
		strconv.Itoa(i.ID),
		strconv.Itoa(i.OrderID),
		strconv.Itoa(i.ProductID),
		strconv.Itoa(i.Quantity),
		formatMoney(i.UnitPrice),
		formatMoney(i.LineTotal),
	}
}

func (p Payment) Header() []string { return PaymentColumns }

func (p Payment) Values() []string {
	return []string{
		strconv.Itoa(p.ID),
		strconv.Itoa(p.OrderID),
		formatTime(p.PaymentDate),
		p.PaymentMethod,
		formatMoney(p.Amount),
		p.Status,
		p.TransactionRef,
	}
}

func (s Shipment) Header() []string { return ShipmentColumns }

func (s Shipment) Values() []string {
	return []string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.OrderID),
		s.Carrier,
		s.TrackingNumber,
		formatTime(s.ShippedDate),
		formatTime(s.DeliveryEstimate),
		s.Status,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
