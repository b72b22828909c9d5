package domain

import "time"

// Beer is the bilingual catalog row as stored. Decimal columns (abv) are
// carried as text because the driver hands NUMERIC back that way; the
// projector owns the coercion.
type Beer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StyleFR        string    `json:"style_fr"`
	StyleEN        string    `json:"style_en"`
	ABV            string    `json:"abv"`
	DescriptionFR  string    `json:"description_fr"`
	DescriptionEN  string    `json:"description_en"`
	TastingNotesFR []string  `json:"tasting_notes_fr"`
	TastingNotesEN []string  `json:"tasting_notes_en"`
	ImageURL       *string   `json:"image_url"`
	IsCore         bool      `json:"is_core"`
	IsFeatured     bool      `json:"is_featured"`
	UntappdURL     *string   `json:"untappd_url"`
	SortOrder      int       `json:"sort_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeerView is the flat single-locale shape the page layer renders.
type BeerView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Style        string   `json:"style"`
	ABV          float64  `json:"abv"`
	Description  string   `json:"description"`
	TastingNotes []string `json:"tastingNotes"`
	Image        string   `json:"image"`
	IsCore       bool     `json:"isCore"`
	IsFeatured   bool     `json:"isFeatured"`
	UntappdURL   string   `json:"untappdUrl,omitempty"`
}

// BeerInput carries a validated admin write. Name and ABV are mandatory;
// everything else defaults to empty/false/null.
type BeerInput struct {
	Name           string   `json:"name"`
	StyleFR        string   `json:"style_fr"`
	StyleEN        string   `json:"style_en"`
	ABV            float64  `json:"abv"`
	DescriptionFR  string   `json:"description_fr"`
	DescriptionEN  string   `json:"description_en"`
	TastingNotesFR []string `json:"tasting_notes_fr"`
	TastingNotesEN []string `json:"tasting_notes_en"`
	ImageURL       *string  `json:"image_url"`
	IsCore         bool     `json:"is_core"`
	IsFeatured     bool     `json:"is_featured"`
	UntappdURL     *string  `json:"untappd_url"`
	SortOrder      int      `json:"sort_order"`
}
