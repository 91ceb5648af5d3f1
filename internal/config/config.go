package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends for the session slot.
const (
	StoreRedis  = "redis"
	StoreFile   = "file"
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Session persistence
	Store         string        // "redis" | "file" | "memory"
	StateKey      string        // redis key holding the session record
	StateFile     string        // path of the session record when Store=file
	FlushInterval time.Duration // retry interval after a failed session write (default: 30s)

	// Catalog
	CatalogFile    string        // optional YAML overrides, empty = built-in catalog only
	ReloadInterval time.Duration // interval to reload the catalog file (default: 1h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict /infra and /reload to these IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // origins allowed to call /api from a browser

	// Rate limiting on /api
	RateLimitBurst     int // bucket size per client IP
	RateLimitPerMinute int // refill rate per client IP
	RateLimitMaxIPs    int // tracked IPs before an early sweep
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MAKERHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MAKERHUB_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("MAKERHUB_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("MAKERHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MAKERHUB_PRETTY_LOG", true),

		// Persistence
		Store:         strings.ToLower(getenv("MAKERHUB_STORE", StoreRedis)),
		StateKey:      getenv("MAKERHUB_STATE_KEY", "makerhub_state"),
		StateFile:     getenv("MAKERHUB_STATE_FILE", "/app/data/makerhub_state.json"),
		FlushInterval: mustDuration("MAKERHUB_FLUSH_INTERVAL", 30*time.Second),

		// Catalog
		CatalogFile:    getenv("MAKERHUB_CATALOG_FILE", ""), // Optional, empty = built-in catalog
		ReloadInterval: mustDuration("MAKERHUB_RELOAD_CATALOG_INTERVAL", time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("MAKERHUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("MAKERHUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("MAKERHUB_TRUST_PROXY", true),
		CORSOrigins:  splitAndTrim(getenv("MAKERHUB_CORS_ORIGINS", "*")),

		RateLimitBurst:     getenvInt("MAKERHUB_RATE_LIMIT_BURST", 60),
		RateLimitPerMinute: getenvInt("MAKERHUB_RATE_LIMIT_PER_MINUTE", 120),
		RateLimitMaxIPs:    getenvInt("MAKERHUB_RATE_LIMIT_MAX_IPS", 10000),
	}

	switch cfg.Store {
	case StoreRedis:
		loadRedis(cfg)
	case StoreFile, StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: MAKERHUB_STORE must be one of redis, file, memory (got %q)", cfg.Store))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// loadRedis fills the Redis settings. They are only required when the
// session lives in Redis.
func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("MAKERHUB_REDIS_ADDR")
	cfg.RedisUser = getenv("MAKERHUB_REDIS_USERNAME", "default")
	cfg.RedisPasswordRequired = mustBool("MAKERHUB_REDIS_PASSWORD_REQUIRED", true)
	cfg.RedisPassword = getenv("MAKERHUB_REDIS_PASSWORD", "")
	cfg.RedisDB = requireEnvInt("MAKERHUB_REDIS_DB")
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: MAKERHUB_REDIS_PASSWORD is required when MAKERHUB_REDIS_PASSWORD_REQUIRED=true")
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
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

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
