package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/DaliGabriel/yo-compro/internal/app/config"
	"github.com/DaliGabriel/yo-compro/internal/domain/entity"
	"github.com/DaliGabriel/yo-compro/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const buyerRequestCollectionName = "buyerRequests"

type buyerRequestRepository struct {
	collection *mongo.Collection
}

func NewBuyerRequestRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.BuyerRequestRepository {
	return &buyerRequestRepository{
		collection: client.Database(cfg.Database).Collection(buyerRequestCollectionName),
	}
}

func (r *buyerRequestRepository) Create(ctx context.Context, request *entity.BuyerRequest) (string, error) {
	request.ID = primitive.NewObjectID().Hex()
	request.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, request); err != nil {
		return "", fmt.Errorf("failed to create buyer request: %w", err)
	}
	return request.ID, nil
}

// FindByBrandModel narrows by exact brand and model equality only. Year and
// price ranges are refined in memory by the caller, so the collection needs
// no index beyond brand+model.
func (r *buyerRequestRepository) FindByBrandModel(ctx context.Context, brand, model string) ([]entity.BuyerRequest, error) {
	filter := bson.M{
		"brand": brand,
		"model": model,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query buyer requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []entity.BuyerRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode buyer requests: %w", err)
	}
	return requests, nil
}
