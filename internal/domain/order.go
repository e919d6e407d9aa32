package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"

	ShippingStatusPending   = "pending"
	ShippingStatusShipped   = "shipped"
	ShippingStatusDelivered = "delivered"
	ShippingStatusCancelled = "cancelled"
)

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"user_id" json:"user_id"`
	TransactionNumber string             `bson:"transaction_number" json:"transaction_number"`
	OrderItems        []OrderItem        `bson:"order_items" json:"order_items"`
	ShippingAddress   ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod     string             `bson:"payment_method" json:"payment_method"`
	PaymentStatus     string             `bson:"payment_status" json:"payment_status"`
	ShippingStatus    string             `bson:"shipping_status" json:"shipping_status"`
	TotalPrice        float64            `bson:"total_price" json:"total_price"`
	CreatedAt         int64              `bson:"created_at" json:"created_at"`
	UpdatedAt         int64              `bson:"updated_at" json:"updated_at"`
}

// OrderItem is a frozen snapshot of the product at checkout time.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Image     string  `bson:"image" json:"image"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int64   `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	FullName    string `bson:"full_name" json:"full_name"`
	Address     string `bson:"address" json:"address"`
	City        string `bson:"city" json:"city"`
	PostalCode  string `bson:"postal_code" json:"postal_code"`
	PhoneNumber string `bson:"phone_number" json:"phone_number"`
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func ValidShippingStatus(status string) bool {
	switch status {
	case ShippingStatusPending, ShippingStatusShipped, ShippingStatusDelivered, ShippingStatusCancelled:
		return true
	}
	return false
}
