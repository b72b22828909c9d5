package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"gallicus_site/internal/adapters/observability"
	"gallicus_site/internal/app"
	"gallicus_site/internal/auth"
	"gallicus_site/internal/domain"
	"gallicus_site/internal/shared"
)

// AdminHandlers is the back-office surface. Everything except login/logout
// sits behind the authorization gate; reads bypass the render memo so the
// operator always sees the latest write.
type AdminHandlers struct {
	C   *app.CommandService
	Q   *app.Resolver
	cfg shared.Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewAdminHandlers(c *app.CommandService, q *app.Resolver, cfg shared.Config) *AdminHandlers {
	return &AdminHandlers{C: c, Q: q, cfg: cfg, limiters: map[string]*rate.Limiter{}}
}

func (s *Server) MountAdmin(a *AdminHandlers) {
	s.mux.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", a.login)
		r.Post("/logout", a.logout)

		r.Group(func(gr chi.Router) {
			gr.Use(RequireAdmin(a.cfg.AdminJWTSecret))

			gr.Get("/beers", a.listBeers)
			gr.Post("/beers", a.createBeer)
			gr.Get("/beers/{id}", a.getBeer)
			gr.Put("/beers/{id}", a.updateBeer)
			gr.Delete("/beers/{id}", a.deleteBeer)
			gr.Post("/beers/{id}/image", a.attachBeerImage)

			gr.Get("/locations", a.listLocations)
			gr.Post("/locations", a.createLocation)
			gr.Get("/locations/{id}", a.getLocation)
			gr.Put("/locations/{id}", a.updateLocation)
			gr.Delete("/locations/{id}", a.deleteLocation)

			gr.Get("/content", a.getContent)
			gr.Patch("/content", a.patchContent)
		})
	})
}

// writeAdminError maps the domain taxonomy onto admin responses. Write
// failures surface; the caller must not assume partial success.
func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalid):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "")
	case errors.Is(err, domain.ErrMisconfigured):
		writeProblem(w, http.StatusInternalServerError, "Server Misconfiguration", "")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "database is not configured")
	default:
		log.Error().Err(err).Msg("admin write failed")
		writeProblem(w, http.StatusInternalServerError, "Write Failed", "")
	}
}

// ---- session ----

func (a *AdminHandlers) limiterFor(ip string) *rate.Limiter {
	a.mu.Lock()
	defer a.mu.Unlock()
	l, ok := a.limiters[ip]
	if !ok {
		per := a.cfg.LoginRatePerMin
		if per <= 0 {
			per = 10
		}
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(per)), per)
		a.limiters[ip] = l
	}
	return l
}

func (a *AdminHandlers) login(w http.ResponseWriter, r *http.Request) {
	if !a.limiterFor(remoteIP(r)).Allow() {
		writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "password required")
		return
	}

	if a.cfg.AdminPasswordHash == "" || a.cfg.AdminJWTSecret == "" {
		observability.ObserveAuth("misconfigured")
		log.Error().Msg("admin secrets are not set")
		writeProblem(w, http.StatusInternalServerError, "Server Misconfiguration", "")
		return
	}

	if !auth.VerifyPassword(a.cfg.AdminPasswordHash, body.Password) {
		// Deliberate fixed delay to blunt brute-force guessing.
		time.Sleep(a.cfg.LoginFailDelay)
		observability.ObserveAuth("login_fail")
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	token, err := auth.SignToken(a.cfg.AdminJWTSecret, a.cfg.SessionTTL)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	observability.ObserveAuth("login_ok")
	http.SetCookie(w, auth.SessionCookie(token, a.cfg.SessionTTL))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// logout clears the cookie unconditionally; with or without a session it
// succeeds.
func (a *AdminHandlers) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedSessionCookie())
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ---- beers ----

func (a *AdminHandlers) listBeers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Q.AdminBeers(r.Context()))
}

func (a *AdminHandlers) getBeer(w http.ResponseWriter, r *http.Request) {
	row, err := a.Q.AdminBeer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *AdminHandlers) createBeer(w http.ResponseWriter, r *http.Request) {
	var in domain.BeerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	row, err := a.C.CreateBeer(r.Context(), in)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (a *AdminHandlers) updateBeer(w http.ResponseWriter, r *http.Request) {
	var in domain.BeerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	row, err := a.C.UpdateBeer(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *AdminHandlers) deleteBeer(w http.ResponseWriter, r *http.Request) {
	if err := a.C.DeleteBeer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *AdminHandlers) attachBeerImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxImageBytes+(1<<20))
	if err := r.ParseMultipartForm(app.MaxImageBytes); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "file must be under 4 MB")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "could not read file")
		return
	}

	url, err := a.C.AttachBeerImage(r.Context(), chi.URLParam(r, "id"), header.Header.Get("Content-Type"), data)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// ---- locations ----

func (a *AdminHandlers) listLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Q.AdminLocations(r.Context()))
}

func (a *AdminHandlers) getLocation(w http.ResponseWriter, r *http.Request) {
	row, err := a.Q.AdminLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *AdminHandlers) createLocation(w http.ResponseWriter, r *http.Request) {
	var in domain.LocationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	row, err := a.C.CreateLocation(r.Context(), in)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (a *AdminHandlers) updateLocation(w http.ResponseWriter, r *http.Request) {
	var in domain.LocationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	row, err := a.C.UpdateLocation(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *AdminHandlers) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := a.C.DeleteLocation(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ---- site content ----

func (a *AdminHandlers) getContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Q.AdminContent(r.Context()))
}

// patchContent accepts a single {key,value} pair or an array of pairs;
// each is upserted independently.
func (a *AdminHandlers) patchContent(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "could not read body")
		return
	}

	var entries []domain.ContentEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var one domain.ContentEntry
		if err := json.Unmarshal(raw, &one); err != nil {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
			return
		}
		entries = []domain.ContentEntry{one}
	}

	if err := a.C.UpsertContent(r.Context(), entries); err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
