package domain

import "time"

type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeCondo      PropertyType = "condo"
	TypeTownhouse  PropertyType = "townhouse"
	TypeVilla      PropertyType = "villa"
	TypePlot       PropertyType = "plot"
	TypeCommercial PropertyType = "commercial"
)

var propertyTypes = map[PropertyType]bool{
	TypeHouse:      true,
	TypeApartment:  true,
	TypeCondo:      true,
	TypeTownhouse:  true,
	TypeVilla:      true,
	TypePlot:       true,
	TypeCommercial: true,
}

func (t PropertyType) Valid() bool { return propertyTypes[t] }

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Listing is a property record available for sale or rent.
//
// UserID is the identity of the account that created the listing and is the
// basis of every authorization check. OwnerName is the display name shown on
// the card and carries no authority.
type Listing struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Location     string       `json:"location"`
	Coordinates  Coordinates  `json:"coordinates"`
	Features     []string     `json:"features"`
	OwnerName    string       `json:"owner"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	ImageURLs    []string     `json:"imageURLs"`
	Beds         float64      `json:"beds"`
	Baths        float64      `json:"baths"`
	Sqft         float64      `json:"sqft"`
	PropertyType PropertyType `json:"propertyType"`
	Verified     bool         `json:"verified"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks the invariants a listing must satisfy before it is stored.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if l.Location == "" {
		return NewValidationError("location", "location is required")
	}
	if l.Price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if l.Beds < 0 {
		return NewValidationError("beds", "beds must not be negative")
	}
	if l.Baths < 0 {
		return NewValidationError("baths", "baths must not be negative")
	}
	if l.Sqft < 0 {
		return NewValidationError("sqft", "sqft must not be negative")
	}
	if !l.PropertyType.Valid() {
		return NewValidationError("propertyType", "unknown property type: "+string(l.PropertyType))
	}
	return nil
}

type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ListingID string    `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteWithListing is the read model returned when listing a user's
// favorites: the relation joined with the listing it points at.
type FavoriteWithListing struct {
	Favorite *Favorite `json:"favorite"`
	Listing  *Listing  `json:"listing"`
}

// Filter narrows listing queries. The zero value matches everything.
type Filter struct {
	UserID string
}

// Property is a lightweight map marker shown on the explore map. It lives in
// its own collection and is read-only for clients.
type Property struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Location MapLocation `json:"location"`
	Type     string      `json:"type"`
	Price    float64     `json:"price"`
	Image    string      `json:"image,omitempty"`
	Rating   float64     `json:"rating,omitempty"`
	Distance string      `json:"distance,omitempty"`
	Link     string      `json:"link,omitempty"`
}

type MapLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
