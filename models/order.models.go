package models

import (
	"time"
)

// OrderStatusCart marks an order that has not been checked out yet.
const OrderStatusCart = "cart"

// Order represents a user's order. While OrderStatus is "cart" it is the
// user's single open cart. Version is the optimistic-concurrency token:
// every in-place write conditions on it and bumps it by one.
type Order struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	UserEmail   string    `bson:"userEmail" json:"userEmail"`
	VenueID     string    `bson:"venueId" json:"venueId"`
	VenueEmail  string    `bson:"venueEmail" json:"venueEmail"`
	Products    []Product `bson:"products" json:"products"`
	TotalPrice  float64   `bson:"totalPrice" json:"totalPrice"`
	OrderStatus string    `bson:"orderStatus" json:"orderStatus"`
	Version     int64     `bson:"version" json:"version"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CartDetail is a cart enriched with the public view of its venue.
type CartDetail struct {
	Order
	Venue VenuePublic `json:"venue"`
}
