package models

// LocationType categorizes saved pickup/dropoff places.
type LocationType string

const (
	LocationTypeCampus   LocationType = "campus"
	LocationTypeHome     LocationType = "home"
	LocationTypeTraining LocationType = "training"
	LocationTypeStadium  LocationType = "stadium"
	LocationTypeOther    LocationType = "other"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location is a saved place offered in the request form. Frequency counts
// how many rides referenced it, so the form can sort by habit.
type Location struct {
	Name        string       `bson:"name" json:"name"`
	Type        LocationType `bson:"type" json:"type"`
	Address     string       `bson:"address" json:"address"`
	Coordinates Coordinates  `bson:"coordinates" json:"coordinates"`
	IsActive    bool         `bson:"is_active" json:"isActive"`
	Frequency   int64        `bson:"frequency" json:"frequency"`
}
