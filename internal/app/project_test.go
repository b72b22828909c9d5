package app_test

import (
	"strings"
	"testing"

	"gallicus_site/internal/app"
	"gallicus_site/internal/domain"
)

func TestProjectBeer_SelectsLocaleFields(t *testing.T) {
	row := domain.Beer{
		ID:             "b1",
		Name:           "Syn",
		StyleFR:        "IPA",
		StyleEN:        "India Pale Ale",
		ABV:            "6.5",
		DescriptionFR:  "Sèche et houblonnée.",
		DescriptionEN:  "Dry and hoppy.",
		TastingNotesFR: []string{"Résineux"},
		TastingNotesEN: []string{"Resinous"},
	}

	fr, err := app.ProjectBeer(row, domain.LocaleFR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if fr.Style != "IPA" || fr.Description != "Sèche et houblonnée." || fr.TastingNotes[0] != "Résineux" {
		t.Fatalf("fr projection wrong: %+v", fr)
	}
	if fr.Name != "Syn" {
		t.Fatalf("locale-invariant field changed: %q", fr.Name)
	}
	if fr.ABV != 6.5 {
		t.Fatalf("abv: %v", fr.ABV)
	}

	en, err := app.ProjectBeer(row, domain.LocaleEN)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if en.Style != "India Pale Ale" || en.TastingNotes[0] != "Resinous" {
		t.Fatalf("en projection wrong: %+v", en)
	}
}

func TestProjectBeer_NonNumericABVIsAnError(t *testing.T) {
	_, err := app.ProjectBeer(domain.Beer{ID: "b1", Name: "Bad", ABV: "seven"}, domain.LocaleEN)
	if err == nil {
		t.Fatal("want coercion error, got nil")
	}
	if !strings.Contains(err.Error(), "abv") {
		t.Fatalf("error should name the field: %v", err)
	}
}

func TestProjectLocation_CoercesTextualCoordinates(t *testing.T) {
	row := domain.Location{
		ID:   "l1",
		Name: "Gallicus",
		Lat:  "45.4765",
		Lng:  "-75.7134",
		Type: domain.LocationBrewery,
	}
	v, err := app.ProjectLocation(row)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Coordinates.Lat != 45.4765 || v.Coordinates.Lng != -75.7134 {
		t.Fatalf("coords: %+v", v.Coordinates)
	}
}

func TestProjectLocation_NonNumericCoordinateIsAnError(t *testing.T) {
	for _, row := range []domain.Location{
		{ID: "l1", Lat: "north", Lng: "-75.7"},
		{ID: "l2", Lat: "45.4", Lng: ""},
		{ID: "l3", Lat: "NaN", Lng: "-75.7"},
	} {
		if _, err := app.ProjectLocation(row); err == nil {
			t.Fatalf("location %s: want coercion error, got nil", row.ID)
		}
	}
}
