package entity

import "time"

// BuyerRequest is a stored search profile: a buyer describes the car they
// want and the year/price window they accept. The numeric bounds are kept
// as plain digit strings exactly as they were submitted; they are parsed
// only at match time. Inverted ranges (min > max) are stored as-is and
// simply never match.
type BuyerRequest struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Brand     string    `bson:"brand" json:"brand"`
	Model     string    `bson:"model" json:"model"`
	MinYear   string    `bson:"minYear" json:"minYear"`
	MaxYear   string    `bson:"maxYear" json:"maxYear"`
	MinPrice  string    `bson:"minPrice" json:"minPrice"`
	MaxPrice  string    `bson:"maxPrice" json:"maxPrice"`
	Contact   string    `bson:"contact" json:"contact"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
