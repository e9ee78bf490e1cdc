package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	directoryerrors "classroom/internal/directory/errors"
	"classroom/pkg/config"
	"classroom/pkg/model"
)

const BatchCollectionName = "Batches"

type BatchRepository interface {
	FindByName(ctx context.Context, name string) (*model.Batch, error)
}

type mongoBatchRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBatchRepository(cfg *config.Config) BatchRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBatchRepository{
		cfg:        cfg,
		collection: db.Collection(BatchCollectionName),
	}
}

func (r *mongoBatchRepository) FindByName(ctx context.Context, name string) (*model.Batch, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var batch model.Batch
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&batch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, directoryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}

	return &batch, nil
}
