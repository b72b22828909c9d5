package app_test

import (
	"context"
	"errors"
	"testing"

	"gallicus_site/internal/app"
	"gallicus_site/internal/domain"
)

// ---- fake store ----

type fakeStore struct {
	beers     []domain.Beer
	locations []domain.Location
	content   []domain.ContentEntry

	failReads bool
	writes    int
}

var errBoom = errors.New("boom")

func (f *fakeStore) ListBeers(ctx context.Context) ([]domain.Beer, error) {
	if f.failReads {
		return nil, errBoom
	}
	return f.beers, nil
}

func (f *fakeStore) GetBeer(ctx context.Context, id string) (domain.Beer, error) {
	for _, b := range f.beers {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Beer{}, domain.ErrNotFound
}

func (f *fakeStore) CreateBeer(ctx context.Context, in domain.BeerInput) (domain.Beer, error) {
	f.writes++
	b := domain.Beer{ID: "new", Name: in.Name}
	f.beers = append(f.beers, b)
	return b, nil
}

func (f *fakeStore) UpdateBeer(ctx context.Context, id string, in domain.BeerInput) (domain.Beer, error) {
	f.writes++
	for i, b := range f.beers {
		if b.ID == id {
			f.beers[i].Name = in.Name
			return f.beers[i], nil
		}
	}
	return domain.Beer{}, domain.ErrNotFound
}

func (f *fakeStore) DeleteBeer(ctx context.Context, id string) error {
	f.writes++
	for i, b := range f.beers {
		if b.ID == id {
			f.beers = append(f.beers[:i], f.beers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) SetBeerImage(ctx context.Context, id, url string) error {
	f.writes++
	for i, b := range f.beers {
		if b.ID == id {
			u := url
			f.beers[i].ImageURL = &u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if f.failReads {
		return nil, errBoom
	}
	return f.locations, nil
}

func (f *fakeStore) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	for _, l := range f.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Location{}, domain.ErrNotFound
}

func (f *fakeStore) CreateLocation(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	f.writes++
	l := domain.Location{ID: "new", Name: in.Name, Type: in.Type}
	f.locations = append(f.locations, l)
	return l, nil
}

func (f *fakeStore) UpdateLocation(ctx context.Context, id string, in domain.LocationInput) (domain.Location, error) {
	f.writes++
	for i, l := range f.locations {
		if l.ID == id {
			f.locations[i].Name = in.Name
			return f.locations[i], nil
		}
	}
	return domain.Location{}, domain.ErrNotFound
}

func (f *fakeStore) DeleteLocation(ctx context.Context, id string) error {
	f.writes++
	for i, l := range f.locations {
		if l.ID == id {
			f.locations = append(f.locations[:i], f.locations[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) ListContent(ctx context.Context) ([]domain.ContentEntry, error) {
	if f.failReads {
		return nil, errBoom
	}
	return f.content, nil
}

func (f *fakeStore) UpsertContent(ctx context.Context, key, value string) error {
	f.writes++
	for i, e := range f.content {
		if e.Key == key {
			f.content[i].Value = value
			return nil
		}
	}
	f.content = append(f.content, domain.ContentEntry{Key: key, Value: value})
	return nil
}

// ---- tests ----

func TestContent_FallbackTotality(t *testing.T) {
	q := app.NewResolver(&fakeStore{}) // store reachable but fully empty

	got := q.Content(context.Background(), nil)
	if len(got) != len(domain.FallbackContent) {
		t.Fatalf("want %d keys, got %d", len(domain.FallbackContent), len(got))
	}
	for k, v := range domain.FallbackContent {
		if got[k] != v {
			t.Fatalf("key %s: want %q, got %q", k, v, got[k])
		}
	}
}

func TestContent_OverlayPrecedence(t *testing.T) {
	q := app.NewResolver(&fakeStore{
		content: []domain.ContentEntry{{Key: "contact.email", Value: "new@x.com"}},
	})

	got := q.Content(context.Background(), nil)
	if got["contact.email"] != "new@x.com" {
		t.Fatalf("overridden key: got %q", got["contact.email"])
	}
	if got["contact.address.line1"] != domain.FallbackContent["contact.address.line1"] {
		t.Fatalf("untouched key lost its fallback: got %q", got["contact.address.line1"])
	}
}

func TestContent_NewKeysAreInserted(t *testing.T) {
	q := app.NewResolver(&fakeStore{
		content: []domain.ContentEntry{{Key: "promo.banner.fr", Value: "Nouvelle bière!"}},
	})

	got := q.Content(context.Background(), nil)
	if got["promo.banner.fr"] != "Nouvelle bière!" {
		t.Fatalf("future content slot not inserted: %q", got["promo.banner.fr"])
	}
}

func TestBeers_WholeRowThreshold(t *testing.T) {
	ctx := context.Background()

	// Zero rows: the whole fallback collection, in fallback order.
	q := app.NewResolver(&fakeStore{})
	views, err := q.Beers(ctx, nil, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(views) != len(domain.FallbackBeers) {
		t.Fatalf("want %d fallback beers, got %d", len(domain.FallbackBeers), len(views))
	}
	for i, v := range views {
		if v.ID != domain.FallbackBeers[i].ID {
			t.Fatalf("order mismatch at %d: %s", i, v.ID)
		}
	}

	// One real row: exactly that row, no fallback rows alongside.
	q = app.NewResolver(&fakeStore{beers: []domain.Beer{{ID: "db-1", Name: "Stout", ABV: "5.5"}}})
	views, err = q.Beers(ctx, nil, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(views) != 1 || views[0].ID != "db-1" {
		t.Fatalf("want only the stored row, got %+v", views)
	}
}

func TestReads_StoreFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	q := app.NewResolver(&fakeStore{failReads: true})

	views, err := q.Beers(ctx, nil, domain.LocaleEN)
	if err != nil {
		t.Fatalf("read failure must be absorbed, got %v", err)
	}
	if len(views) != len(domain.FallbackBeers) {
		t.Fatalf("want fallback beers, got %d rows", len(views))
	}

	locs, err := q.Locations(ctx, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(locs) != len(domain.FallbackLocations) {
		t.Fatalf("want fallback locations, got %d", len(locs))
	}

	content := q.Content(ctx, nil)
	if content["contact.email"] != "info@gallicus.ca" {
		t.Fatalf("want fallback content, got %q", content["contact.email"])
	}
}

func TestReads_NilStoreServesFallback(t *testing.T) {
	q := app.NewResolver(nil)
	views, err := q.Beers(context.Background(), nil, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(views) != len(domain.FallbackBeers) {
		t.Fatalf("want fallback beers, got %d", len(views))
	}
}

func TestMemo_ReusedWithinRequestOnly(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{beers: []domain.Beer{{ID: "a", Name: "First", ABV: "5.0"}}}
	q := app.NewResolver(store)
	memo := app.NewMemo()

	first, err := q.Beers(ctx, memo, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if first[0].Name != "First" {
		t.Fatalf("unexpected: %+v", first)
	}

	// Mutate the store; a memoized read within the same pass must not see it.
	store.beers[0].Name = "Changed"
	again, err := q.Beers(ctx, memo, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if again[0].Name != "First" {
		t.Fatalf("memo bypassed: got %q", again[0].Name)
	}

	// An admin read always reflects the latest write.
	raw := q.AdminBeers(ctx)
	if raw[0].Name != "Changed" {
		t.Fatalf("admin read stale: got %q", raw[0].Name)
	}

	// A new render pass re-resolves.
	fresh, err := q.Beers(ctx, app.NewMemo(), domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fresh[0].Name != "Changed" {
		t.Fatalf("new memo stale: got %q", fresh[0].Name)
	}
}

func TestAdminBeers_EmptyCollectionStaysEmpty(t *testing.T) {
	q := app.NewResolver(&fakeStore{})
	if rows := q.AdminBeers(context.Background()); len(rows) != 0 {
		t.Fatalf("admin list of an empty store must be empty, got %d rows", len(rows))
	}
}

func TestAdminBeers_UnreachableStoreFallsBack(t *testing.T) {
	q := app.NewResolver(&fakeStore{failReads: true})
	if rows := q.AdminBeers(context.Background()); len(rows) != len(domain.FallbackBeers) {
		t.Fatalf("want fallback rows, got %d", len(rows))
	}
}

func TestSnapshot_BundlesAllCollections(t *testing.T) {
	q := app.NewResolver(nil)
	snap, err := q.Snapshot(context.Background(), app.NewMemo(), domain.LocaleEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if snap.Locale != domain.LocaleEN {
		t.Fatalf("locale: %s", snap.Locale)
	}
	if len(snap.Beers) != len(domain.FallbackBeers) ||
		len(snap.Locations) != len(domain.FallbackLocations) ||
		len(snap.Content) != len(domain.FallbackContent) {
		t.Fatalf("incomplete snapshot: %d beers, %d locations, %d content keys",
			len(snap.Beers), len(snap.Locations), len(snap.Content))
	}
}
