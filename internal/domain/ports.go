package domain

import "context"

// Store is the row store gateway. List reads return (rows, error); the
// resolver treats any error as "store unavailable" and applies fallback
// policy. Writes surface their errors verbatim — a failed write must reach
// the admin caller.
type Store interface {
	// Beers
	ListBeers(ctx context.Context) ([]Beer, error)
	GetBeer(ctx context.Context, id string) (Beer, error)
	CreateBeer(ctx context.Context, in BeerInput) (Beer, error)
	UpdateBeer(ctx context.Context, id string, in BeerInput) (Beer, error)
	DeleteBeer(ctx context.Context, id string) error
	SetBeerImage(ctx context.Context, id, url string) error

	// Locations
	ListLocations(ctx context.Context) ([]Location, error)
	GetLocation(ctx context.Context, id string) (Location, error)
	CreateLocation(ctx context.Context, in LocationInput) (Location, error)
	UpdateLocation(ctx context.Context, id string, in LocationInput) (Location, error)
	DeleteLocation(ctx context.Context, id string) error

	// Site content
	ListContent(ctx context.Context) ([]ContentEntry, error)
	UpsertContent(ctx context.Context, key, value string) error
}

// BlobStore holds uploaded images. Put returns the public URL the catalog
// row should point at.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}
