// internal/models/order.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem is immutable once the order is created. Price is the unit price
// snapshotted from the catalog at order-creation time; later catalog changes
// do not affect it.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

// PaymentResult is the opaque settlement outcome persisted onto the order.
type PaymentResult struct {
	ID       string           `bson:"id" json:"id"`
	Status   SettlementStatus `bson:"status" json:"status"`
	Provider string           `bson:"provider" json:"provider"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress string             `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	Status          OrderStatus        `bson:"status" json:"status"`
	Timestamps      `bson:",inline"`
}

// OrderView is an Order with its user and product references resolved for
// display. A product reference that no longer resolves is tolerated: the item
// keeps its snapshot data and the product is simply absent.
type OrderView struct {
	Order
	User  *User           `json:"user,omitempty"`
	Items []OrderItemView `json:"items"`
}

type OrderItemView struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}
