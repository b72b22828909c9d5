package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"gallicus_site/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Decimal params are formatted as text; the columns are NUMERIC and come
// back as text too.
func fmtDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func notesJSON(notes []string) string {
	if notes == nil {
		notes = []string{}
	}
	b, _ := json.Marshal(notes)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- beers ----

func scanBeer(row interface{ Scan(...any) error }) (domain.Beer, error) {
	var b domain.Beer
	var abv []byte
	var notesFR, notesEN []byte
	var imageURL, untappdURL sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&b.ID, &b.Name, &b.StyleFR, &b.StyleEN, &abv,
		&b.DescriptionFR, &b.DescriptionEN,
		&notesFR, &notesEN,
		&imageURL, &b.IsCore, &b.IsFeatured,
		&untappdURL, &b.SortOrder, &createdAt, &updatedAt,
	); err != nil {
		return domain.Beer{}, err
	}

	b.ABV = string(abv)
	_ = json.Unmarshal(notesFR, &b.TastingNotesFR)
	_ = json.Unmarshal(notesEN, &b.TastingNotesEN)
	if imageURL.Valid {
		s := imageURL.String
		b.ImageURL = &s
	}
	if untappdURL.Valid {
		s := untappdURL.String
		b.UntappdURL = &s
	}
	if createdAt.Valid {
		b.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		b.UpdatedAt = updatedAt.Time
	}
	return b, nil
}

func (r *Repo) ListBeers(ctx context.Context) ([]domain.Beer, error) {
	rows, err := r.db.QueryContext(ctx, listBeersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Beer
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetBeer(ctx context.Context, id string) (domain.Beer, error) {
	b, err := scanBeer(r.db.QueryRowContext(ctx, getBeerSQL, id))
	if err == sql.ErrNoRows {
		return domain.Beer{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) CreateBeer(ctx context.Context, in domain.BeerInput) (domain.Beer, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertBeerSQL,
		id, in.Name, in.StyleFR, in.StyleEN, fmtDecimal(in.ABV),
		in.DescriptionFR, in.DescriptionEN,
		notesJSON(in.TastingNotesFR), notesJSON(in.TastingNotesEN),
		valStr(in.ImageURL), in.IsCore, in.IsFeatured,
		valStr(in.UntappdURL), in.SortOrder,
	)
	if err != nil {
		return domain.Beer{}, err
	}
	return r.GetBeer(ctx, id)
}

func (r *Repo) UpdateBeer(ctx context.Context, id string, in domain.BeerInput) (domain.Beer, error) {
	// Existence check first: MySQL reports zero affected rows for a no-op
	// update, so RowsAffected cannot distinguish "missing" from "unchanged".
	if _, err := r.GetBeer(ctx, id); err != nil {
		return domain.Beer{}, err
	}
	_, err := r.db.ExecContext(ctx, updateBeerSQL,
		in.Name, in.StyleFR, in.StyleEN, fmtDecimal(in.ABV),
		in.DescriptionFR, in.DescriptionEN,
		notesJSON(in.TastingNotesFR), notesJSON(in.TastingNotesEN),
		valStr(in.ImageURL), in.IsCore, in.IsFeatured,
		valStr(in.UntappdURL), in.SortOrder,
		id,
	)
	if err != nil {
		return domain.Beer{}, err
	}
	return r.GetBeer(ctx, id)
}

func (r *Repo) DeleteBeer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteBeerSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) SetBeerImage(ctx context.Context, id, url string) error {
	if _, err := r.GetBeer(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, setBeerImageSQL, url, id)
	return err
}

// ---- locations ----

func scanLocation(row interface{ Scan(...any) error }) (domain.Location, error) {
	var l domain.Location
	var lat, lng []byte
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&l.ID, &l.Name, &l.Address, &l.City,
		&lat, &lng, &l.Type, &l.SortOrder,
		&createdAt, &updatedAt,
	); err != nil {
		return domain.Location{}, err
	}
	l.Lat = string(lat)
	l.Lng = string(lng)
	if createdAt.Valid {
		l.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		l.UpdatedAt = updatedAt.Time
	}
	return l, nil
}

func (r *Repo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, listLocationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	l, err := scanLocation(r.db.QueryRowContext(ctx, getLocationSQL, id))
	if err == sql.ErrNoRows {
		return domain.Location{}, domain.ErrNotFound
	}
	return l, err
}

func (r *Repo) CreateLocation(ctx context.Context, in domain.LocationInput) (domain.Location, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertLocationSQL,
		id, in.Name, in.Address, in.City,
		fmtDecimal(*in.Lat), fmtDecimal(*in.Lng),
		string(in.Type), in.SortOrder,
	)
	if err != nil {
		return domain.Location{}, err
	}
	return r.GetLocation(ctx, id)
}

func (r *Repo) UpdateLocation(ctx context.Context, id string, in domain.LocationInput) (domain.Location, error) {
	if _, err := r.GetLocation(ctx, id); err != nil {
		return domain.Location{}, err
	}
	_, err := r.db.ExecContext(ctx, updateLocationSQL,
		in.Name, in.Address, in.City,
		fmtDecimal(*in.Lat), fmtDecimal(*in.Lng),
		string(in.Type), in.SortOrder,
		id,
	)
	if err != nil {
		return domain.Location{}, err
	}
	return r.GetLocation(ctx, id)
}

func (r *Repo) DeleteLocation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteLocationSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- site content ----

func (r *Repo) ListContent(ctx context.Context) ([]domain.ContentEntry, error) {
	rows, err := r.db.QueryContext(ctx, listContentSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContentEntry
	for rows.Next() {
		var e domain.ContentEntry
		var updatedAt sql.NullTime
		if err := rows.Scan(&e.Key, &e.Value, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			e.UpdatedAt = updatedAt.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertContent(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, upsertContentSQL, key, value)
	return err
}
