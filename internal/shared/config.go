package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// MySQLDSN may be empty: the public site then serves fallback content
	// and admin writes fail with a store-unavailable error.
	MySQLDSN string

	// Admin secrets. Deliberately not required at startup; their absence is
	// reported at first use as a misconfiguration, never as a bad password.
	AdminJWTSecret    string
	AdminPasswordHash string

	SessionTTL      time.Duration
	LoginFailDelay  time.Duration
	LoginRatePerMin int

	MediaDir     string
	MediaBaseURL string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       os.Getenv("METRICS_ADDR"),
		MySQLDSN:          os.Getenv("MYSQL_DSN"),
		AdminJWTSecret:    os.Getenv("ADMIN_JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionTTL:        time.Duration(atoi("SESSION_TTL_HOURS", 48)) * time.Hour,
		LoginFailDelay:    time.Duration(atoi("LOGIN_FAIL_DELAY_MS", 500)) * time.Millisecond,
		LoginRatePerMin:   atoi("LOGIN_RATE_PER_MIN", 10),
		MediaDir:          env("MEDIA_DIR", "media"),
		MediaBaseURL:      env("MEDIA_BASE_URL", "/media"),
	}
	if c.MySQLDSN == "" {
		log.Warn().Msg("MYSQL_DSN is empty; serving fallback content only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
