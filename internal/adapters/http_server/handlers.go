package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"gallicus_site/internal/app"
	"gallicus_site/internal/domain"
)

// Handlers is the public read surface: resolved, locale-projected content
// for the page renderer. Locale is validated at the route; the resolvers
// only ever see fr or en.
type Handlers struct{ Q *app.Resolver }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(WithMemo)
		r.Get("/content", h.content)
		r.Route("/{locale}", func(lr chi.Router) {
			lr.Get("/beers", h.beers)
			lr.Get("/locations", h.locations)
			lr.Get("/site", h.site)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func localeParam(w http.ResponseWriter, r *http.Request) (domain.Locale, bool) {
	loc, ok := domain.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unsupported locale")
		return "", false
	}
	return loc, true
}

func (h *Handlers) beers(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}
	views, err := h.Q.Beers(r.Context(), memoFrom(r), loc)
	if err != nil {
		// Coercion failure is a data-integrity fault, not something to mask.
		writeProblem(w, http.StatusInternalServerError, "Data Integrity Fault", err.Error())
		return
	}
	w.Header().Set("Content-Language", string(loc))
	writeCacheable(w, r, views)
}

func (h *Handlers) locations(w http.ResponseWriter, r *http.Request) {
	if _, ok := localeParam(w, r); !ok {
		return
	}
	views, err := h.Q.Locations(r.Context(), memoFrom(r))
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Data Integrity Fault", err.Error())
		return
	}
	writeCacheable(w, r, views)
}

func (h *Handlers) content(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.Content(r.Context(), memoFrom(r)))
}

func (h *Handlers) site(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}
	snap, err := h.Q.Snapshot(r.Context(), memoFrom(r), loc)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Data Integrity Fault", err.Error())
		return
	}
	w.Header().Set("Content-Language", string(loc))
	writeCacheable(w, r, snap)
}
