package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zeolike/listing-service/internal/listing/domain"
)

type coordinatesDoc struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type listingDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Price        float64            `bson:"price"`
	Location     string             `bson:"location"`
	Coordinates  coordinatesDoc     `bson:"coordinates"`
	Features     []string           `bson:"features,omitempty"`
	OwnerName    string             `bson:"owner_name"`
	Phone        string             `bson:"phone"`
	Email        string             `bson:"email"`
	ImageURLs    []string           `bson:"image_urls,omitempty"`
	Beds         float64            `bson:"beds"`
	Baths        float64            `bson:"baths"`
	Sqft         float64            `bson:"sqft"`
	PropertyType string             `bson:"property_type"`
	Verified     bool               `bson:"verified"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ListingID string             `bson:"listing_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type propertyDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Lat      float64            `bson:"lat"`
	Lng      float64            `bson:"lng"`
	Type     string             `bson:"type"`
	Price    float64            `bson:"price"`
	Image    string             `bson:"image,omitempty"`
	Rating   float64            `bson:"rating,omitempty"`
	Distance string             `bson:"distance,omitempty"`
	Link     string             `bson:"link,omitempty"`
}

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid ID format %q: %w", id, err)
	}
	return oid, nil
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	if l == nil {
		return nil, nil
	}
	docID, err := objectIDFromHex(l.ID)
	if err != nil {
		return nil, err
	}
	return &listingDocument{
		ID:          docID,
		UserID:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Location:    l.Location,
		Coordinates: coordinatesDoc{
			Latitude:  l.Coordinates.Latitude,
			Longitude: l.Coordinates.Longitude,
		},
		Features:     l.Features,
		OwnerName:    l.OwnerName,
		Phone:        l.Phone,
		Email:        l.Email,
		ImageURLs:    l.ImageURLs,
		Beds:         l.Beds,
		Baths:        l.Baths,
		Sqft:         l.Sqft,
		PropertyType: string(l.PropertyType),
		Verified:     l.Verified,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}, nil
}

func toDomainListing(d *listingDocument) *domain.Listing {
	if d == nil {
		return nil
	}
	return &domain.Listing{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		Coordinates: domain.Coordinates{
			Latitude:  d.Coordinates.Latitude,
			Longitude: d.Coordinates.Longitude,
		},
		Features:     d.Features,
		OwnerName:    d.OwnerName,
		Phone:        d.Phone,
		Email:        d.Email,
		ImageURLs:    d.ImageURLs,
		Beds:         d.Beds,
		Baths:        d.Baths,
		Sqft:         d.Sqft,
		PropertyType: domain.PropertyType(d.PropertyType),
		Verified:     d.Verified,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}

func toFavoriteDocument(f *domain.Favorite) (*favoriteDocument, error) {
	if f == nil {
		return nil, nil
	}
	docID, err := objectIDFromHex(f.ID)
	if err != nil {
		return nil, err
	}
	return &favoriteDocument{
		ID:        docID,
		UserID:    f.UserID,
		ListingID: f.ListingID,
		CreatedAt: f.CreatedAt,
	}, nil
}

func toDomainFavorite(d *favoriteDocument) *domain.Favorite {
	if d == nil {
		return nil
	}
	return &domain.Favorite{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		ListingID: d.ListingID,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainFavorites(docs []*favoriteDocument) []*domain.Favorite {
	favorites := make([]*domain.Favorite, 0, len(docs))
	for _, doc := range docs {
		favorites = append(favorites, toDomainFavorite(doc))
	}
	return favorites
}

func toPropertyDocument(p *domain.Property) *propertyDocument {
	if p == nil {
		return nil
	}
	return &propertyDocument{
		Name:     p.Name,
		Lat:      p.Location.Lat,
		Lng:      p.Location.Lng,
		Type:     p.Type,
		Price:    p.Price,
		Image:    p.Image,
		Rating:   p.Rating,
		Distance: p.Distance,
		Link:     p.Link,
	}
}

func toDomainProperty(d *propertyDocument) *domain.Property {
	if d == nil {
		return nil
	}
	return &domain.Property{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Location: domain.MapLocation{Lat: d.Lat, Lng: d.Lng},
		Type:     d.Type,
		Price:    d.Price,
		Image:    d.Image,
		Rating:   d.Rating,
		Distance: d.Distance,
		Link:     d.Link,
	}
}
