package repository

import "context"

// PhotoStorage stores uploaded car photos and returns the opaque object key
// that becomes SellerListing.ImageRef.
type PhotoStorage interface {
	Upload(ctx context.Context, originalFileName string, data []byte) (string, error)
}
