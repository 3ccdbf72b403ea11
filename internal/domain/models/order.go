package models

import "time"

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Belum Lunas"
	PaymentPaid   PaymentStatus = "Lunas"
)

// OrderItem is one line of an order. Quantity drives package/unit pricing,
// Width and Height (cm) drive area pricing. Items live only inside their
// order document.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Width     float64 `bson:"width" json:"width"`
	Height    float64 `bson:"height" json:"height"`
}

// Order is a customer order. TotalCost is derived from the items and
// snapshotted whenever the order is saved; payment fields are owned by the
// settlement flow and never touched by edits.
type Order struct {
	ID            string        `bson:"_id" json:"id"`
	CustomerName  string        `bson:"customer_name" json:"customerName"`
	Items         []OrderItem   `bson:"items" json:"items"`
	TotalCost     float64       `bson:"total_cost" json:"totalCost"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	PaymentMethod string        `bson:"payment_method" json:"paymentMethod"`
	PaidAmount    float64       `bson:"paid_amount" json:"paidAmount"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time    `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
