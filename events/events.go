package events

import "time"

// Cart lifecycle event types.
const (
	CartCreated = "cart.created"
	CartUpdated = "cart.updated"
	CartDeleted = "cart.deleted"
)

// CartEvent is the payload published for every successful cart mutation.
type CartEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	VenueID    string    `json:"venueId"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}
