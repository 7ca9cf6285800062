package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

// PropertyRepository serves the read-only map markers shown on the explore
// map. Writes happen only through the seeder.
type PropertyRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewPropertyRepository(db *mongo.Database, log *zap.Logger) *PropertyRepository {
	return &PropertyRepository{
		collection: db.Collection(propertiesCollection),
		logger:     log,
	}
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("property query failed", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*propertyDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	properties := make([]*domain.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, toDomainProperty(doc))
	}
	return properties, nil
}

func (r *PropertyRepository) ReplaceAll(ctx context.Context, properties []*domain.Property) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(properties))
	for _, p := range properties {
		docs = append(docs, toPropertyDocument(p))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
