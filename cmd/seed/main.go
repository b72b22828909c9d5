// Seed: creates the tables and populates them with the built-in fallback
// content. Safe to re-run — every insert is INSERT IGNORE.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"gallicus_site/internal/adapters/observability"
	"gallicus_site/internal/domain"
	"gallicus_site/internal/shared"
)

const insertBeerSQL = `
INSERT IGNORE INTO beers
  (id, name, style_fr, style_en, abv,
   description_fr, description_en,
   tasting_notes_fr, tasting_notes_en,
   image_url, is_core, is_featured, untappd_url, sort_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertLocationSQL = `
INSERT IGNORE INTO locations
  (id, name, address, city, lat, lng, type, sort_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertContentSQL = "INSERT IGNORE INTO site_content (`key`, value) VALUES (?, ?)"

func main() {
	_ = godotenv.Load(".env.local")
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required to seed")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	applyMigrations(db)

	ctx := context.Background()
	sem := semaphore.NewWeighted(4)
	var wg sync.WaitGroup

	run := func(name string, fn func() error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := fn(); err != nil {
				log.Warn().Str("row", name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("row", name).Msg("seed ok")
		}()
	}

	for _, b := range domain.FallbackBeers {
		b := b
		run("beer:"+b.Name, func() error {
			notesFR, _ := json.Marshal(b.TastingNotesFR)
			notesEN, _ := json.Marshal(b.TastingNotesEN)
			_, err := db.ExecContext(ctx, insertBeerSQL,
				b.ID, b.Name, b.StyleFR, b.StyleEN, b.ABV,
				b.DescriptionFR, b.DescriptionEN,
				string(notesFR), string(notesEN),
				valStr(b.ImageURL), b.IsCore, b.IsFeatured, valStr(b.UntappdURL), b.SortOrder,
			)
			return err
		})
	}
	for _, l := range domain.FallbackLocations {
		l := l
		run("location:"+l.Name, func() error {
			_, err := db.ExecContext(ctx, insertLocationSQL,
				l.ID, l.Name, l.Address, l.City, l.Lat, l.Lng, string(l.Type), l.SortOrder)
			return err
		})
	}
	for k, v := range domain.FallbackContent {
		k, v := k, v
		run("content:"+k, func() error {
			_, err := db.ExecContext(ctx, insertContentSQL, k, v)
			return err
		})
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func applyMigrations(db *sql.DB) {
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = "migrations"
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("read migrations dir failed")
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("read migration failed")
		}
		if _, err := db.Exec(string(b)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("apply migration failed")
		}
		log.Info().Str("file", f).Msg("migration applied")
	}
}
