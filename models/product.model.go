package models

// Product belongs to a venue's catalog. Read-only here; carts hold
// denormalized snapshots of products, not references.
type Product struct {
	ID       string  `bson:"id" json:"id"`
	VenueID  string  `bson:"venueId" json:"venueId"`
	Name     string  `bson:"name,omitempty" json:"name,omitempty"`
	Price    float64 `bson:"price" json:"price"`
	IsActive bool    `bson:"isActive" json:"isActive"`
}
