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
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AssistBase  string
	AssistKey   string
	AssistModel string
	JWTSecret   string
	EditMode    bool
	SnapshotDir string
	Workers     int
	CacheTTL    time.Duration
	CORSOrigins []string
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
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/invisioo?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		AssistBase:  env("ASSIST_BASE_URL", "https://api.openai.com/v1"),
		AssistKey:   env("ASSIST_API_KEY", ""),
		AssistModel: env("ASSIST_MODEL", "gpt-4o-mini"),
		JWTSecret:   env("JWT_SECRET", ""),
		EditMode:    env("EDIT_MODE", "") == "1",
		SnapshotDir: env("SNAPSHOT_DIR", "./data"),
		Workers:     atoi("SEED_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		CORSOrigins: []string{env("CORS_ORIGIN", "http://localhost:3000")},
	}
	if c.AssistKey == "" {
		log.Warn().Msg("ASSIST_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
