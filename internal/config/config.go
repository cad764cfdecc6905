package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type POS struct {
	BaseURL   string
	Token     string
	PageLimit int
	Workers   int
}

type Storefront struct {
	Domain     string
	Token      string
	APIVersion string
	PageSize   int
}

// RateLimit is the outbound quota for the POS API.
type RateLimit struct {
	Limit  int
	Window time.Duration
	Buffer time.Duration
}

type Tables struct {
	Schema      string
	SyncProduct string
	SyncVariant string
}

type Kafka struct {
	Brokers     []string
	Topic       string
	Group       string
	Workers     int
	Partitions  int
	Replication int
}

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type SyncCache struct {
	Capacity int
	TTL      time.Duration
}

type Config struct {
	HTTPAddr        string
	IndexCap        int
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
	ReadOnly        bool
	LogLevel        string

	POS        POS
	Storefront Storefront
	RateLimit  RateLimit
	Pg         Postgres
	Tables     Tables
	Kafka      Kafka
	Breaker    Breaker
	Retry      Retry
	SyncCache  SyncCache
}

// Load fatals on error; main has nothing sensible to do without config.
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr:        envDefault("HTTP_ADDR", ":8081"),
		IndexCap:        envInt("INDEX_CAP", 4096),
		RefreshInterval: envDurationMS("REFRESH_INTERVAL", 5*time.Minute),
		RequestTimeout:  envDurationMS("REQUEST_TIMEOUT", 30*time.Second),
		ReadOnly:        envBool("READ_ONLY", false),
		LogLevel:        envDefault("LOG_LEVEL", "info"),

		POS: POS{
			BaseURL:   strings.TrimRight(envDefault("POS_BASE_URL", "https://api.ready2order.com/v1"), "/"),
			Token:     strings.TrimSpace(os.Getenv("POS_TOKEN")),
			PageLimit: envInt("POS_PAGE_LIMIT", 250),
			Workers:   envInt("POS_WORKERS", 4),
		},

		Storefront: Storefront{
			Domain:     strings.TrimSpace(os.Getenv("STOREFRONT_DOMAIN")),
			Token:      strings.TrimSpace(os.Getenv("STOREFRONT_TOKEN")),
			APIVersion: envDefault("STOREFRONT_API_VERSION", "2024-10"),
			PageSize:   envInt("STOREFRONT_PAGE_SIZE", 100),
		},

		RateLimit: RateLimit{
			Limit:  envInt("POS_RATE_LIMIT", 60),
			Window: envDurationMS("POS_RATE_WINDOW", time.Minute),
			Buffer: envDurationMS("POS_RATE_BUFFER", 2*time.Second),
		},

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
		},

		Tables: Tables{
			Schema:      envDefault("DB_SCHEMA", "public"),
			SyncProduct: envDefault("TBL_SYNC_PRODUCT", "sync_product"),
			SyncVariant: envDefault("TBL_SYNC_VARIANT", "sync_variant"),
		},

		Kafka: Kafka{
			Brokers:     splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:       envDefault("KAFKA_TOPIC", "catalog-refresh"),
			Group:       envDefault("KAFKA_GROUP", "catalog-sync"),
			Workers:     envInt("KAFKA_WORKERS", 2),
			Partitions:  envInt("KAFKA_PARTITIONS", 3),
			Replication: envInt("KAFKA_REPLICATION", 1),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},

		SyncCache: SyncCache{
			Capacity: envInt("SYNC_CACHE_CAP", 10000),
			TTL:      envDurationMS("SYNC_CACHE_TTL", time.Minute),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"POS_TOKEN":         c.POS.Token,
		"STOREFRONT_DOMAIN": c.Storefront.Domain,
		"STOREFRONT_TOKEN":  c.Storefront.Token,
		"PG_HOST":           c.Pg.Host,
		"PG_DB":             c.Pg.DB,
		"PG_USER":           c.Pg.User,
		"PG_PASSWORD":       c.Pg.Password,
		"KAFKA_BROKERS":     strings.Join(c.Kafka.Brokers, ","),
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	return nil
}

// normalize clamps values that would otherwise break the components.
func (c *Config) normalize() {
	if c.IndexCap <= 0 {
		log.Printf("INDEX_CAP is %d, adjusting to 1", c.IndexCap)
		c.IndexCap = 1
	}
	if c.RateLimit.Limit <= 0 {
		log.Printf("POS_RATE_LIMIT is %d, adjusting to 60", c.RateLimit.Limit)
		c.RateLimit.Limit = 60
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	if c.POS.Workers < 1 {
		c.POS.Workers = 1
	}
	if c.Kafka.Workers < 1 {
		c.Kafka.Workers = 1
	}
	if c.Kafka.Partitions < 1 {
		c.Kafka.Partitions = 1
	}
	if c.Kafka.Replication < 1 {
		c.Kafka.Replication = 1
	}
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// GraphQLURL is the storefront Admin API endpoint.
func (s Storefront) GraphQLURL() string {
	return "https://" + s.Domain + "/admin/api/" + s.APIVersion + "/graphql.json"
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
