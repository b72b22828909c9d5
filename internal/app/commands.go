package app

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"gallicus_site/internal/domain"
)

// CommandService is the admin write path. Every mutation is validated
// before it reaches the store, and store failures propagate to the caller
// untouched — no retries, no masking.
type CommandService struct {
	store domain.Store
	blobs domain.BlobStore
}

func NewCommandService(store domain.Store, blobs domain.BlobStore) *CommandService {
	return &CommandService{store: store, blobs: blobs}
}

// MaxImageBytes caps uploaded label images.
const MaxImageBytes = 4 << 20 // 4 MB

// AllowedImageTypes is the raster-format allow-list for image attach.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/avif": ".avif",
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalid, err)
}

func validateBeer(in domain.BeerInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.ABV, validation.Required, validation.Min(0.0), validation.Max(25.0)),
		validation.Field(&in.SortOrder, validation.Min(0)),
	)
}

func validateLocation(in domain.LocationInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Address, validation.Required),
		validation.Field(&in.City, validation.Required),
		validation.Field(&in.Lat, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&in.Lng, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&in.Type, validation.Required,
			validation.In(domain.LocationBrewery, domain.LocationBar, domain.LocationRetail, domain.LocationRestaurant)),
		validation.Field(&in.SortOrder, validation.Min(0)),
	)
}

func (s *CommandService) requireStore() error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	return nil
}

// ---- beers ----

func (s *CommandService) CreateBeer(ctx context.Context, in domain.BeerInput) (domain.Beer, error) {
	if err := validateBeer(in); err != nil {
		return domain.Beer{}, invalid(err)
	}
	if err := s.requireStore(); err != nil {
		return domain.Beer{}, err
	}
	return s.store.CreateBeer(ctx, in)
}

func (s *CommandService) UpdateBeer(ctx context.Context, id string, in domain.BeerInput) (domain.Beer, error) {
	if err := validateBeer(in); err != nil {
		return domain.Beer{}, invalid(err)
	}
	if err := s.requireStore(); err != nil {
		return domain.Beer{}, err
	}
	return s.store.UpdateBeer(ctx, id, in)
}

// DeleteBeer removes the row and, best-effort, its stored image. A blob
// delete failure is logged but never fails the row delete.
func (s *CommandService) DeleteBeer(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	row, err := s.store.GetBeer(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBeer(ctx, id); err != nil {
		return err
	}
	if row.ImageURL != nil && s.blobs != nil {
		if err := s.blobs.Delete(ctx, *row.ImageURL); err != nil {
			log.Warn().Err(err).Str("beer", id).Msg("could not delete stored image")
		}
	}
	return nil
}

// AttachBeerImage stores the object then points the row at it. A failure
// between the two steps can orphan the object; there is no cleanup sweep.
func (s *CommandService) AttachBeerImage(ctx context.Context, id, contentType string, data []byte) (string, error) {
	ext, ok := AllowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", invalid(fmt.Errorf("file must be JPEG, PNG, WebP, or AVIF"))
	}
	if len(data) == 0 {
		return "", invalid(fmt.Errorf("no file provided"))
	}
	if len(data) > MaxImageBytes {
		return "", invalid(fmt.Errorf("file must be under 4 MB"))
	}
	if err := s.requireStore(); err != nil {
		return "", err
	}
	if s.blobs == nil {
		return "", domain.ErrStoreUnavailable
	}

	name := path.Join("beers", id, fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext))
	url, err := s.blobs.Put(ctx, name, data)
	if err != nil {
		return "", err
	}
	if err := s.store.SetBeerImage(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// ---- locations ----

func (s *CommandService) CreateLocation(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	if err := validateLocation(in); err != nil {
		return domain.Location{}, invalid(err)
	}
	if err := s.requireStore(); err != nil {
		return domain.Location{}, err
	}
	return s.store.CreateLocation(ctx, in)
}

func (s *CommandService) UpdateLocation(ctx context.Context, id string, in domain.LocationInput) (domain.Location, error) {
	if err := validateLocation(in); err != nil {
		return domain.Location{}, invalid(err)
	}
	if err := s.requireStore(); err != nil {
		return domain.Location{}, err
	}
	return s.store.UpdateLocation(ctx, id, in)
}

func (s *CommandService) DeleteLocation(ctx context.Context, id string) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	return s.store.DeleteLocation(ctx, id)
}

// ---- site content ----

// UpsertContent applies each pair independently (insert or overwrite by
// key). Pairs before an invalid one stay applied; the caller retries.
func (s *CommandService) UpsertContent(ctx context.Context, entries []domain.ContentEntry) error {
	if err := s.requireStore(); err != nil {
		return err
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Key) == "" {
			return invalid(fmt.Errorf("content key must be a non-empty string"))
		}
		if err := s.store.UpsertContent(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
