package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gallicus_site/internal/domain"
)

// Locale projection. Suffix-style fields are selected by locale; unsuffixed
// fields pass through. Decimal columns arrive as text from the store and
// are coerced here — a non-numeric value is a data-integrity fault and
// propagates as an error, never a silent zero.

func coerceDecimal(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: non-numeric value %q", field, raw)
	}
	return f, nil
}

func pick(loc domain.Locale, fr, en string) string {
	if loc == domain.LocaleFR {
		return fr
	}
	return en
}

func ProjectBeer(row domain.Beer, loc domain.Locale) (domain.BeerView, error) {
	abv, err := coerceDecimal("abv", row.ABV)
	if err != nil {
		return domain.BeerView{}, fmt.Errorf("beer %s: %w", row.ID, err)
	}
	notes := row.TastingNotesEN
	if loc == domain.LocaleFR {
		notes = row.TastingNotesFR
	}
	v := domain.BeerView{
		ID:           row.ID,
		Name:         row.Name,
		Style:        pick(loc, row.StyleFR, row.StyleEN),
		ABV:          abv,
		Description:  pick(loc, row.DescriptionFR, row.DescriptionEN),
		TastingNotes: notes,
		IsCore:       row.IsCore,
		IsFeatured:   row.IsFeatured,
	}
	if row.ImageURL != nil {
		v.Image = *row.ImageURL
	}
	if row.UntappdURL != nil {
		v.UntappdURL = *row.UntappdURL
	}
	return v, nil
}

func ProjectLocation(row domain.Location) (domain.LocationView, error) {
	lat, err := coerceDecimal("lat", row.Lat)
	if err != nil {
		return domain.LocationView{}, fmt.Errorf("location %s: %w", row.ID, err)
	}
	lng, err := coerceDecimal("lng", row.Lng)
	if err != nil {
		return domain.LocationView{}, fmt.Errorf("location %s: %w", row.ID, err)
	}
	return domain.LocationView{
		ID:          row.ID,
		Name:        row.Name,
		Address:     row.Address,
		City:        row.City,
		Coordinates: domain.Coords{Lat: lat, Lng: lng},
		Type:        row.Type,
	}, nil
}
