package domain

import "time"

// LocationType is a closed set; anything else is rejected at write time.
type LocationType string

const (
	LocationBrewery    LocationType = "brewery"
	LocationBar        LocationType = "bar"
	LocationRetail     LocationType = "retail"
	LocationRestaurant LocationType = "restaurant"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationBrewery, LocationBar, LocationRetail, LocationRestaurant:
		return true
	}
	return false
}

// Location is a point-of-sale row. Coordinates stay textual until
// projection, same convention as Beer.ABV.
type Location struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	Lat       string       `json:"lat"`
	Lng       string       `json:"lng"`
	Type      LocationType `json:"type"`
	SortOrder int          `json:"sort_order"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Coordinates Coords       `json:"coordinates"`
	Type        LocationType `json:"type"`
}

type LocationInput struct {
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	Lat       *float64     `json:"lat"`
	Lng       *float64     `json:"lng"`
	Type      LocationType `json:"type"`
	SortOrder int          `json:"sort_order"`
}
