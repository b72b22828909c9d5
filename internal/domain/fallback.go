package domain

func strPtr(s string) *string { return &s }

// FallbackBeers is the known-good catalog served whenever the store is
// empty or unreachable. Already in sort order. Never mutated at runtime.
var FallbackBeers = []Beer{
	{
		ID:            "1",
		Name:          "Double Aura",
		StyleFR:       "IPA - New England / Hazy",
		StyleEN:       "IPA - New England / Hazy",
		ABV:           "7.8",
		DescriptionFR: "Double NEIPA houblonnée avec Amarillo, Simcoe, Chinook et Idaho 7. Une belle complexité aromatique de fruits tropicaux.",
		DescriptionEN: "Double NEIPA hopped with Amarillo, Simcoe, Chinook and Idaho 7. A beautiful aromatic complexity of tropical fruits.",
		TastingNotesFR: []string{"Tropical", "Mangue", "Fruits de la passion", "Doux"},
		TastingNotesEN: []string{"Tropical", "Mango", "Passion Fruit", "Smooth"},
		ImageURL:       strPtr("https://assets.untappd.com/site/beer_logos/beer-3683191_cf7dc_sm.jpeg"),
		IsCore:         true,
		IsFeatured:     true,
		UntappdURL:     strPtr("https://untappd.com/b/brasserie-artisanale-gallicus-double-aura/3683191"),
		SortOrder:      0,
	},
	{
		ID:            "2",
		Name:          "Lucha Libre",
		StyleFR:       "Lager - Mexicaine",
		StyleEN:       "Lager - Mexican",
		ABV:           "4.0",
		DescriptionFR: "Notre lager mexicaine légère et rafraîchissante. Parfaite pour les journées chaudes ou pour accompagner vos tacos.",
		DescriptionEN: "Our light and refreshing Mexican lager. Perfect for hot days or to pair with tacos.",
		TastingNotesFR: []string{"Céréale", "Citron", "Légère", "Rafraîchissante"},
		TastingNotesEN: []string{"Grain", "Lemon", "Light", "Refreshing"},
		IsCore:         true,
		UntappdURL:     strPtr("https://untappd.com/b/brasserie-artisanale-gallicus-lucha-libre/5377460"),
		SortOrder:      1,
	},
	{
		ID:            "3",
		Name:          "Syn",
		StyleFR:       "West Coast IPA",
		StyleEN:       "West Coast IPA",
		ABV:           "6.5",
		DescriptionFR: "West Coast IPA houblonnée au Mosaic, Centennial, Columbus et Nugget. Sèche avec des arômes fruités et résineux.",
		DescriptionEN: "West Coast IPA hopped with Mosaic, Centennial, Columbus and Nugget. Dry with fruity and resinous aromas.",
		TastingNotesFR: []string{"Résineux", "Agrumes", "Pin", "Amer"},
		TastingNotesEN: []string{"Resinous", "Citrus", "Pine", "Bitter"},
		ImageURL:       strPtr("/images/labels/syn.png"),
		IsCore:         true,
		IsFeatured:     true,
		UntappdURL:     strPtr("https://untappd.com/b/brasserie-artisanale-gallicus-syn-bleue-west-coast-ipa/3953337"),
		SortOrder:      2,
	},
	{
		ID:            "4",
		Name:          "IPA",
		StyleFR:       "IPA Nord-Américaine",
		StyleEN:       "North American IPA",
		ABV:           "6.5",
		DescriptionFR: "Notre IPA signature aux notes tropicales et résineuses. Une amertume bien balancée avec une finale sèche.",
		DescriptionEN: "Our signature IPA with tropical and resinous notes. Well-balanced bitterness with a dry finish.",
		TastingNotesFR: []string{"Tropical", "Résineux", "Floral", "Amer"},
		TastingNotesEN: []string{"Tropical", "Resinous", "Floral", "Bitter"},
		ImageURL:       strPtr("/images/labels/ipa.png"),
		IsCore:         true,
		IsFeatured:     true,
		UntappdURL:     strPtr("https://untappd.com/Gallicusadmin/beer"),
		SortOrder:      3,
	},
}

// FallbackLocations mirrors the hand-authored retailer map.
var FallbackLocations = []Location{
	{
		ID:        "gallicus",
		Name:      "Gallicus — Brasserie Artisanale",
		Address:   "670 rue Auguste-Mondoux #4",
		City:      "Gatineau, QC",
		Lat:       "45.4765",
		Lng:       "-75.7134",
		Type:      LocationBrewery,
		SortOrder: 0,
	},
	{
		ID:        "l1",
		Name:      "Bières & Compagnie",
		Address:   "135 rue Eddy",
		City:      "Gatineau, QC",
		Lat:       "45.4271",
		Lng:       "-75.7008",
		Type:      LocationBar,
		SortOrder: 1,
	},
	{
		ID:        "l2",
		Name:      "La Barberie",
		Address:   "310 boul. Saint-Joseph",
		City:      "Gatineau, QC",
		Lat:       "45.4420",
		Lng:       "-75.7215",
		Type:      LocationRetail,
		SortOrder: 2,
	},
	{
		ID:        "l3",
		Name:      "Dépanneur Chez Gilles",
		Address:   "45 rue Laramée",
		City:      "Gatineau, QC",
		Lat:       "45.4610",
		Lng:       "-75.7302",
		Type:      LocationRetail,
		SortOrder: 3,
	},
	{
		ID:        "l4",
		Name:      "Le Troquet",
		Address:   "82 rue Principale",
		City:      "Gatineau, QC",
		Lat:       "45.4380",
		Lng:       "-75.6889",
		Type:      LocationRestaurant,
		SortOrder: 4,
	},
}

// FallbackContent holds one entry per known content slot. Bilingual slots
// carry the locale in the key suffix.
var FallbackContent = map[string]string{
	"about.description.fr": "Gallicus est une brasserie artisanale située à Gatineau, au Québec. Nous brassons des bières de caractère avec passion et créativité, en petits lots pour garantir la qualité et la fraîcheur de chaque produit.",
	"about.description.en": "Gallicus is a craft brewery located in Gatineau, Quebec. We brew beers with character, passion, and creativity, in small batches to ensure quality and freshness in every product.",
	"about.philosophy.fr":  "Notre philosophie est simple : créer des bières authentiques qui reflètent notre terroir et notre amour du métier. Chaque recette est développée avec soin, utilisant des ingrédients de qualité pour offrir des saveurs uniques et mémorables.",
	"about.philosophy.en":  "Our philosophy is simple: create authentic beers that reflect our terroir and our love of the craft. Each recipe is carefully developed using quality ingredients to deliver unique and memorable flavors.",
	"contact.email":         "info@gallicus.ca",
	"contact.address.line1": "670 rue Auguste-Mondoux #4",
	"contact.address.line2": "Gatineau, QC, Canada",
	"contact.phone":         "",
	"findUs.hours.fr":       "Jeudi - Dimanche",
	"findUs.hours.en":       "Thursday - Sunday",
	"social.instagram":      "https://instagram.com/brasserie_gallicus",
	"social.untappd":        "https://untappd.com/v/gallicus-brasserie-artisanale/8707258",
}
