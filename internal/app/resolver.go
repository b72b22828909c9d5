package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gallicus_site/internal/adapters/observability"
	"gallicus_site/internal/domain"
)

// Resolver merges the row store, the fallback tables and the requested
// locale into render-ready shapes.
//
// Two policies, on purpose:
//   - beers/locations: whole-row replacement. A store error or an empty
//     collection swaps in the entire fallback collection; one real row and
//     the store is authoritative, fallback rows never mix in.
//   - site content: key-by-key overlay. Start from a full copy of the
//     fallback map, stored rows overwrite their keys, absent keys keep
//     their defaults.
//
// The store handle may be nil (DSN not configured); that branch behaves
// exactly like a failed query. Read failures are absorbed here — the
// public site never surfaces them.
type Resolver struct {
	store domain.Store
}

func NewResolver(store domain.Store) *Resolver { return &Resolver{store: store} }

// ---- public reads (memoized per render pass) ----

func (r *Resolver) Beers(ctx context.Context, memo *Memo, loc domain.Locale) ([]domain.BeerView, error) {
	rows := r.beerRows(ctx, memo)
	out := make([]domain.BeerView, 0, len(rows))
	for _, row := range rows {
		v, err := ProjectBeer(row, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Resolver) Locations(ctx context.Context, memo *Memo) ([]domain.LocationView, error) {
	rows := r.locationRows(ctx, memo)
	out := make([]domain.LocationView, 0, len(rows))
	for _, row := range rows {
		v, err := ProjectLocation(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Content returns the fully resolved key/value map. Locale selection is
// the caller's job: bilingual slots are addressed by their .fr/.en key.
func (r *Resolver) Content(ctx context.Context, memo *Memo) map[string]string {
	return r.contentMap(ctx, memo)
}

// Snapshot bundles everything one page render needs, fetched concurrently.
type Snapshot struct {
	Locale    domain.Locale         `json:"locale"`
	Beers     []domain.BeerView     `json:"beers"`
	Locations []domain.LocationView `json:"locations"`
	Content   map[string]string     `json:"content"`
}

func (r *Resolver) Snapshot(ctx context.Context, memo *Memo, loc domain.Locale) (Snapshot, error) {
	snap := Snapshot{Locale: loc}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Beers, err = r.Beers(gctx, memo, loc)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Locations, err = r.Locations(gctx, memo)
		return err
	})
	g.Go(func() error {
		snap.Content = r.Content(gctx, memo)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// ---- admin reads (always fresh, bilingual rows, no projection) ----

func (r *Resolver) AdminBeers(ctx context.Context) []domain.Beer {
	if r.store == nil {
		observability.ObserveFallback("beers", "unavailable")
		return domain.FallbackBeers
	}
	rows, err := r.store.ListBeers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("admin beers read failed; serving fallback")
		observability.ObserveFallback("beers", "unavailable")
		return domain.FallbackBeers
	}
	// An empty collection stays empty for the admin: it reflects the store.
	return rows
}

func (r *Resolver) AdminBeer(ctx context.Context, id string) (domain.Beer, error) {
	if r.store == nil {
		return domain.Beer{}, domain.ErrStoreUnavailable
	}
	return r.store.GetBeer(ctx, id)
}

func (r *Resolver) AdminLocations(ctx context.Context) []domain.Location {
	if r.store == nil {
		observability.ObserveFallback("locations", "unavailable")
		return domain.FallbackLocations
	}
	rows, err := r.store.ListLocations(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("admin locations read failed; serving fallback")
		observability.ObserveFallback("locations", "unavailable")
		return domain.FallbackLocations
	}
	return rows
}

func (r *Resolver) AdminLocation(ctx context.Context, id string) (domain.Location, error) {
	if r.store == nil {
		return domain.Location{}, domain.ErrStoreUnavailable
	}
	return r.store.GetLocation(ctx, id)
}

func (r *Resolver) AdminContent(ctx context.Context) map[string]string {
	return r.contentMap(ctx, nil)
}

// ---- resolution internals ----

func (r *Resolver) beerRows(ctx context.Context, memo *Memo) []domain.Beer {
	if rows, ok := memo.getBeers(); ok {
		observability.ObserveMemo("beers", "hit")
		return rows
	}
	observability.ObserveMemo("beers", "miss")
	rows := r.fetchBeerRows(ctx)
	memo.setBeers(rows)
	return rows
}

func (r *Resolver) fetchBeerRows(ctx context.Context) []domain.Beer {
	if r.store == nil {
		observability.ObserveFallback("beers", "unavailable")
		return domain.FallbackBeers
	}
	rows, err := r.store.ListBeers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("beers read failed; serving fallback")
		observability.ObserveFallback("beers", "unavailable")
		return domain.FallbackBeers
	}
	if len(rows) == 0 {
		observability.ObserveFallback("beers", "empty")
		return domain.FallbackBeers
	}
	return rows
}

func (r *Resolver) locationRows(ctx context.Context, memo *Memo) []domain.Location {
	if rows, ok := memo.getLocations(); ok {
		observability.ObserveMemo("locations", "hit")
		return rows
	}
	observability.ObserveMemo("locations", "miss")
	rows := r.fetchLocationRows(ctx)
	memo.setLocations(rows)
	return rows
}

func (r *Resolver) fetchLocationRows(ctx context.Context) []domain.Location {
	if r.store == nil {
		observability.ObserveFallback("locations", "unavailable")
		return domain.FallbackLocations
	}
	rows, err := r.store.ListLocations(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("locations read failed; serving fallback")
		observability.ObserveFallback("locations", "unavailable")
		return domain.FallbackLocations
	}
	if len(rows) == 0 {
		observability.ObserveFallback("locations", "empty")
		return domain.FallbackLocations
	}
	return rows
}

func (r *Resolver) contentMap(ctx context.Context, memo *Memo) map[string]string {
	if c, ok := memo.getContent(); ok {
		observability.ObserveMemo("content", "hit")
		return c
	}
	observability.ObserveMemo("content", "miss")

	out := make(map[string]string, len(domain.FallbackContent))
	for k, v := range domain.FallbackContent {
		out[k] = v
	}
	if r.store == nil {
		observability.ObserveFallback("content", "unavailable")
		memo.setContent(out)
		return out
	}
	rows, err := r.store.ListContent(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("content read failed; serving defaults")
		observability.ObserveFallback("content", "unavailable")
		memo.setContent(out)
		return out
	}
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	memo.setContent(out)
	return out
}
