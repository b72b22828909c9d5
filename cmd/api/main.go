package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"gallicus_site/internal/adapters/blob"
	server "gallicus_site/internal/adapters/http_server"
	"gallicus_site/internal/adapters/observability"
	"gallicus_site/internal/app"
	"gallicus_site/internal/domain"
	"gallicus_site/internal/shared"
	mysqlrepo "gallicus_site/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load(".env.local")
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// The store handle is optional: the public site must come up and serve
	// fallback content even with no database at all.
	var repo domain.Store
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Warn().Err(err).Msg("sql.Open failed; serving fallback content only")
		} else {
			if err := db.Ping(); err != nil {
				log.Warn().Err(err).Msg("db.Ping failed; reads will fall back until the store recovers")
			} else {
				log.Info().Msg("database connection ok")
			}
			repo = mysqlrepo.New(db)
		}
	}

	blobs, err := blob.New(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("media store init failed")
	}

	resolver := app.NewResolver(repo)
	commands := app.NewCommandService(repo, blobs)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(blobs.Dir()))))
	srv.MountHandlers(&server.Handlers{Q: resolver})
	srv.MountAdmin(server.NewAdminHandlers(commands, resolver, cfg))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
