package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/app/config"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sellerListingCollectionName = "sellerListings"

type sellerListingRepository struct {
	collection *mongo.Collection
}

func NewSellerListingRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.SellerListingRepository {
	return &sellerListingRepository{
		collection: client.Database(cfg.Database).Collection(sellerListingCollectionName),
	}
}

func (r *sellerListingRepository) Create(ctx context.Context, listing *entity.SellerListing) (string, error) {
	listing.ID = primitive.NewObjectID().Hex()
	listing.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, listing); err != nil {
		return "", fmt.Errorf("failed to create seller listing: %w", err)
	}
	return listing.ID, nil
}

func (r *sellerListingRepository) GetByID(ctx context.Context, id string) (*entity.SellerListing, error) {
	var listing entity.SellerListing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get seller listing by ID %s: %w", id, err)
	}
	return &listing, nil
}

func (r *sellerListingRepository) ListRecent(ctx context.Context, limit int) ([]entity.SellerListing, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []entity.SellerListing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode seller listings: %w", err)
	}
	return listings, nil
}
