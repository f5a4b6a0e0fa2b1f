package models

import "time"

// OrderStatusPending is the status every new order starts in. Status is a
// free-form string after that; the admin dashboard writes whatever label it
// wants and the server does not validate transitions.
const OrderStatusPending = "Pendente"

// Order line items and payment details are opaque bags of fields supplied by
// the storefront. No referential integrity is enforced against the catalog,
// and the total is stored verbatim from the caller without recomputation.
type Order struct {
	ID              string                   `json:"id" bson:"id"`
	CustomerName    string                   `json:"customer_name" bson:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone" bson:"customer_phone"`
	CustomerAddress string                   `json:"customer_address" bson:"customer_address"`
	Items           []map[string]interface{} `json:"items" bson:"items"`
	Subtotal        float64                  `json:"subtotal" bson:"subtotal"`
	DeliveryFee     float64                  `json:"delivery_fee" bson:"delivery_fee"`
	Total           float64                  `json:"total" bson:"total"`
	PaymentMethod   string                   `json:"payment_method" bson:"payment_method"`
	PaymentDetails  map[string]interface{}   `json:"payment_details,omitempty" bson:"payment_details,omitempty"`
	Status          string                   `json:"status" bson:"status"`
	CreatedAt       time.Time                `json:"created_at" bson:"created_at"`
}

type OrderInput struct {
	CustomerName    string                   `json:"customer_name"`
	CustomerPhone   string                   `json:"customer_phone"`
	CustomerAddress string                   `json:"customer_address"`
	Items           []map[string]interface{} `json:"items"`
	Subtotal        float64                  `json:"subtotal"`
	DeliveryFee     float64                  `json:"delivery_fee"`
	Total           float64                  `json:"total"`
	PaymentMethod   string                   `json:"payment_method"`
	PaymentDetails  map[string]interface{}   `json:"payment_details"`
}
