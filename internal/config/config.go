package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DatasetFile   string // path to the GeoJSON marker dataset
	EventFile     string // path to the issue event payload (fallback: GITHUB_EVENT_PATH)
	OutcomeFile   string // path the mutation outcome record is written to
	MapConfigFile string // path to the map page config (optional, defaults apply if missing)

	// HTTP server (serve subcommand)
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	// Redis outcome history (optional, empty addr = history disabled)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
	HistorySize         int           // number of outcomes kept in the history list
}

func Load() *Config {
	cfg := &Config{
		// Logging
		LogLevel:  getenv("MARKERMAP_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MARKERMAP_PRETTY_LOG", false),

		// Files
		DatasetFile:   getenv("MARKERMAP_DATASET_FILE", "markers.geojson"),
		EventFile:     getenv("MARKERMAP_EVENT_FILE", os.Getenv("GITHUB_EVENT_PATH")),
		OutcomeFile:   getenv("MARKERMAP_OUTCOME_FILE", "marker-result.json"),
		MapConfigFile: getenv("MARKERMAP_MAP_CONFIG_FILE", "map.yaml"),

		// Server settings
		ListenPort:      getenv("MARKERMAP_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MARKERMAP_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Redis settings
		RedisAddr:           getenv("MARKERMAP_REDIS_ADDR", ""),
		RedisUser:           getenv("MARKERMAP_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("MARKERMAP_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MARKERMAP_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		HistorySize:         getenvInt("MARKERMAP_HISTORY_SIZE", 50),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// HistoryEnabled reports whether the redis outcome history is configured.
func (c *Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
