package entity

import "time"

// SellerListing is a published car ad. Year and Price are digit strings for
// the same reason BuyerRequest bounds are: the store keeps whatever the form
// layer submitted, and coercion happens during matching. ImageRef is an
// opaque storage key, never the image bytes.
type SellerListing struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Brand     string    `bson:"brand" json:"brand"`
	Model     string    `bson:"model" json:"model"`
	Year      string    `bson:"year" json:"year"`
	Price     string    `bson:"price" json:"price"`
	Contact   string    `bson:"contact" json:"contact"`
	ImageRef  string    `bson:"imageRef,omitempty" json:"imageRef,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
