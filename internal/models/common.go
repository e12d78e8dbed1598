// internal/models/common.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamps is embedded by every persisted document.
type Timestamps struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Enums
type UserRole string

const (
	UserRoleCustomer UserRole = "user"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == UserRoleCustomer || r == UserRoleAdmin
}

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports membership in the status enumeration. Transitions between
// statuses are deliberately unguarded; the enumeration is the only constraint.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type SettlementStatus string

const (
	SettlementStatusSuccess SettlementStatus = "success"
	SettlementStatusPending SettlementStatus = "pending"
)

// NewID returns a fresh document identifier.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}
