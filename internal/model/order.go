package model

import "time"

// OrderStatus is the lifecycle state of an order. Transitions are driven by
// the backend authority; this component only validates them.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// CanTransitionTo reports whether moving from s to next is a legal status
// transition. Delivered and Cancelled are terminal; any non-terminal state
// may be cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered || next == StatusCancelled
	default:
		return false
	}
}

// DeliveryLeadTime is how far out the computed delivery date lies.
const DeliveryLeadTime = 5 * 24 * time.Hour

// Order is an immutable snapshot of the cart at submission time. The random
// five-digit ID carries no uniqueness guarantee; collisions are an accepted
// risk of this design.
type Order struct {
	ID           string      `json:"id"`
	Items        []CartItem  `json:"items"`
	Total        float64     `json:"total"`
	Customer     string      `json:"customer,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	DeliveryDate time.Time   `json:"deliveryDate"`
}

// OrderRequest is the payload for POST /orders.
type OrderRequest struct {
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Customer string     `json:"customer,omitempty"`
}
