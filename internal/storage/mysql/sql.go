package mysql

// Collection reads share the site's sort convention: ascending sort key,
// ties broken by creation order.

const beerColumns = `
  id, name, style_fr, style_en, abv,
  description_fr, description_en,
  tasting_notes_fr, tasting_notes_en,
  image_url, is_core, is_featured,
  untappd_url, sort_order, created_at, updated_at`

const listBeersSQL = `
SELECT` + beerColumns + `
FROM beers
ORDER BY sort_order ASC, created_at ASC`

const getBeerSQL = `
SELECT` + beerColumns + `
FROM beers
WHERE id = ?`

const insertBeerSQL = `
INSERT INTO beers
  (id, name, style_fr, style_en, abv,
   description_fr, description_en,
   tasting_notes_fr, tasting_notes_en,
   image_url, is_core, is_featured,
   untappd_url, sort_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updateBeerSQL = `
UPDATE beers SET
  name             = ?,
  style_fr         = ?,
  style_en         = ?,
  abv              = ?,
  description_fr   = ?,
  description_en   = ?,
  tasting_notes_fr = ?,
  tasting_notes_en = ?,
  image_url        = ?,
  is_core          = ?,
  is_featured      = ?,
  untappd_url      = ?,
  sort_order       = ?,
  updated_at       = CURRENT_TIMESTAMP
WHERE id = ?`

const deleteBeerSQL = `DELETE FROM beers WHERE id = ?`

const setBeerImageSQL = `
UPDATE beers SET image_url = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

const locationColumns = `
  id, name, address, city, lat, lng, type, sort_order, created_at, updated_at`

const listLocationsSQL = `
SELECT` + locationColumns + `
FROM locations
ORDER BY sort_order ASC, created_at ASC`

const getLocationSQL = `
SELECT` + locationColumns + `
FROM locations
WHERE id = ?`

const insertLocationSQL = `
INSERT INTO locations
  (id, name, address, city, lat, lng, type, sort_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const updateLocationSQL = `
UPDATE locations SET
  name       = ?,
  address    = ?,
  city       = ?,
  lat        = ?,
  lng        = ?,
  type       = ?,
  sort_order = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

const deleteLocationSQL = `DELETE FROM locations WHERE id = ?`

// Note: `key` is reserved; keep it quoted everywhere.
const listContentSQL = "SELECT `key`, value, updated_at FROM site_content"

const upsertContentSQL = "INSERT INTO site_content (`key`, value)\n" +
	"VALUES (?, ?)\n" +
	"ON DUPLICATE KEY UPDATE\n" +
	"  value      = VALUES(value),\n" +
	"  updated_at = CURRENT_TIMESTAMP"
