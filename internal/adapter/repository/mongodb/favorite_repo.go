package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

// FavoriteRepository relies on the unique (user_id, listing_id) index created
// by EnsureIndexes. Duplicate detection happens inside the insert itself, so
// two concurrent adds for the same pair can never both succeed.
type FavoriteRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewFavoriteRepository(db *mongo.Database, log *zap.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		collection: db.Collection(favoritesCollection),
		logger:     log,
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()

	doc, err := toFavoriteDocument(favorite)
	if err != nil {
		return fmt.Errorf("failed to prepare favorite for database: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFavoriteExists
		}
		r.logger.Error("favorite insert failed",
			zap.String("user_id", favorite.UserID),
			zap.String("listing_id", favorite.ListingID),
			zap.Error(err))
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated favorite ID")
	}
	favorite.ID = oid.Hex()
	return nil
}

func (r *FavoriteRepository) FindByID(ctx context.Context, id string) (*domain.Favorite, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFavoriteNotFound
	}

	var doc favoriteDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFavoriteNotFound
		}
		r.logger.Error("favorite lookup failed", zap.String("favorite_id", id), zap.Error(err))
		return nil, err
	}
	return toDomainFavorite(&doc), nil
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		r.logger.Error("favorite query failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*favoriteDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainFavorites(docs), nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.ErrFavoriteNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("favorite delete failed", zap.String("favorite_id", id), zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) RemoveByPair(ctx context.Context, userID, listingID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "listing_id": listingID})
	if err != nil {
		r.logger.Error("favorite pair delete failed",
			zap.String("user_id", userID),
			zap.String("listing_id", listingID),
			zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// RemoveByListing deletes every favorite pointing at the listing. Called when
// a listing is deleted so the relation never dangles.
func (r *FavoriteRepository) RemoveByListing(ctx context.Context, listingID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"listing_id": listingID})
	if err != nil {
		r.logger.Error("favorite cascade delete failed", zap.String("listing_id", listingID), zap.Error(err))
	}
	return err
}
