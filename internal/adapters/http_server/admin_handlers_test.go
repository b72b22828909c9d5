package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	server "gallicus_site/internal/adapters/http_server"
	"gallicus_site/internal/app"
	"gallicus_site/internal/auth"
	"gallicus_site/internal/shared"
)

const testSecret = "unit-test-signing-secret"

func testConfig(t *testing.T) shared.Config {
	t.Helper()
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return shared.Config{
		AdminJWTSecret:    testSecret,
		AdminPasswordHash: hash,
		SessionTTL:        time.Hour,
		LoginFailDelay:    50 * time.Millisecond,
		LoginRatePerMin:   60,
	}
}

func newAdminServer(cfg shared.Config) http.Handler {
	srv := server.New()
	q := app.NewResolver(nil)
	srv.MountAdmin(server.NewAdminHandlers(app.NewCommandService(nil, nil), q, cfg))
	return srv.Mux()
}

func do(t *testing.T, h http.Handler, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGate_AllRejectionsLookAlike(t *testing.T) {
	h := newAdminServer(testConfig(t))

	expired, err := auth.SignToken(testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	wrongKey, err := auth.SignToken("some-other-secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	cases := map[string]map[string]string{
		"no credentials":  nil,
		"garbage cookie":  {"Cookie": auth.CookieName + "=not.a.token"},
		"expired session": {"Cookie": auth.CookieName + "=" + expired},
		"foreign key":     {"Authorization": "Bearer " + wrongKey},
	}
	for name, hdr := range cases {
		rec := do(t, h, http.MethodGet, "/api/admin/beers", "", hdr)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status %d, want 401", name, rec.Code)
		}
	}
}

func TestGate_ValidTokenPassesEitherCarrier(t *testing.T) {
	h := newAdminServer(testConfig(t))
	token, err := auth.SignToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	for name, hdr := range map[string]map[string]string{
		"cookie": {"Cookie": auth.CookieName + "=" + token},
		"bearer": {"Authorization": "Bearer " + token},
	} {
		rec := do(t, h, http.MethodGet, "/api/admin/content", "", hdr)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200", name, rec.Code)
		}
	}
}

func TestGate_MissingSecretIsServerFault(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminJWTSecret = ""
	h := newAdminServer(cfg)

	rec := do(t, h, http.MethodGet, "/api/admin/beers", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	h := newAdminServer(testConfig(t))

	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"hunter2"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie set")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie attributes: %+v", cookie)
	}

	gated := do(t, h, http.MethodGet, "/api/admin/beers", "", map[string]string{
		"Cookie": cookie.Name + "=" + cookie.Value,
	})
	if gated.Code != http.StatusOK {
		t.Fatalf("gated read after login: status %d", gated.Code)
	}
}

func TestLogin_WrongPasswordIsSlowAndUniform(t *testing.T) {
	cfg := testConfig(t)
	h := newAdminServer(cfg)

	start := time.Now()
	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"letmein"}`, nil)
	elapsed := time.Since(start)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	if elapsed < cfg.LoginFailDelay {
		t.Fatalf("rejection returned in %v, want at least %v", elapsed, cfg.LoginFailDelay)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("rejection must not set a cookie")
	}
}

func TestLogin_EmptyPasswordIsBadRequest(t *testing.T) {
	h := newAdminServer(testConfig(t))
	for _, body := range []string{`{}`, `{"password":""}`, `not json`} {
		rec := do(t, h, http.MethodPost, "/api/admin/login", body, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, rec.Code)
		}
	}
}

func TestLogin_MissingSecretsFailClosed(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminPasswordHash = ""
	h := newAdminServer(cfg)

	rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"hunter2"}`, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
}

func TestLogin_PerClientThrottle(t *testing.T) {
	cfg := testConfig(t)
	cfg.LoginRatePerMin = 2
	cfg.LoginFailDelay = 0
	h := newAdminServer(cfg)

	hdr := map[string]string{"X-Real-IP": "198.51.100.7"}
	for i := 0; i < 2; i++ {
		if rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"nope"}`, hdr); rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status %d", i, rec.Code)
		}
	}
	if rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"nope"}`, hdr); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third attempt: status %d, want 429", rec.Code)
	}

	// A different client keeps its own budget.
	other := map[string]string{"X-Real-IP": "198.51.100.8"}
	if rec := do(t, h, http.MethodPost, "/api/admin/login", `{"password":"nope"}`, other); rec.Code != http.StatusUnauthorized {
		t.Fatalf("other client: status %d, want 401", rec.Code)
	}
}

func TestLogout_AlwaysClears(t *testing.T) {
	h := newAdminServer(testConfig(t))

	for _, hdr := range []map[string]string{nil, {"Cookie": auth.CookieName + "=whatever"}} {
		rec := do(t, h, http.MethodPost, "/api/admin/logout", "", hdr)
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		var cleared *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.CookieName {
				cleared = c
			}
		}
		if cleared == nil || cleared.MaxAge != -1 || cleared.Value != "" {
			t.Fatalf("cookie not cleared: %+v", cleared)
		}
	}
}

func TestAdminReads_ServeFallbackWithoutStore(t *testing.T) {
	h := newAdminServer(testConfig(t))
	token, err := auth.SignToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	hdr := map[string]string{"Authorization": "Bearer " + token}

	rec := do(t, h, http.MethodGet, "/api/admin/content", "", hdr)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var content map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &content); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if content["contact.email"] != "info@gallicus.ca" {
		t.Fatalf("fallback content missing: %+v", content)
	}

	// Single-row reads cannot be answered from fallback; the store is required.
	if rec := do(t, h, http.MethodGet, "/api/admin/beers/1", "", hdr); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("get beer without store: status %d, want 503", rec.Code)
	}
}

func TestAdminWrites_WithoutStoreAre503(t *testing.T) {
	h := newAdminServer(testConfig(t))
	token, err := auth.SignToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	hdr := map[string]string{"Authorization": "Bearer " + token}

	body := `{"name":"Test","abv":5.0}`
	if rec := do(t, h, http.MethodPost, "/api/admin/beers", body, hdr); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("create without store: status %d, want 503", rec.Code)
	}
}

func TestAdminWrites_ValidationBeforeStore(t *testing.T) {
	h := newAdminServer(testConfig(t))
	token, err := auth.SignToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	hdr := map[string]string{"Authorization": "Bearer " + token}

	// Invalid input must be reported as such even though no store is wired.
	if rec := do(t, h, http.MethodPost, "/api/admin/beers", `{"abv":99}`, hdr); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid beer: status %d, want 400", rec.Code)
	}
	badLoc := `{"name":"X","address":"1 Rue","city":"Gatineau","lat":91,"lng":0,"type":"bar"}`
	if rec := do(t, h, http.MethodPost, "/api/admin/locations", badLoc, hdr); rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range latitude: status %d, want 400", rec.Code)
	}
}
