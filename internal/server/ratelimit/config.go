package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one endpoint. A Path ending in "/" matches by prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 is unlimited
	Window time.Duration // refill window
	Burst  int           // bucket size, defaults to Limit
}

// Config holds rate limiting settings
type Config struct {
	Enabled         bool
	Default         Rule
	Rules           []Rule
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Allowlist       map[string]bool
	Denylist        map[string]bool
}

// DefaultRules limit the scoring endpoints more tightly than session traffic
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/v1/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/evaluate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/v1/sessions/", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
	}
}

// LoadConfig reads COACH_RATE_LIMIT_* environment variables
func LoadConfig() Config {
	enabled := envBool("COACH_RATE_LIMIT_ENABLED", true)
	if !enabled {
		return Config{}
	}

	return Config{
		Enabled: true,
		Default: Rule{
			Limit:  envInt("COACH_RATE_LIMIT_DEFAULT_LIMIT", 1000),
			Window: envDuration("COACH_RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		},
		Rules:           DefaultRules(),
		CleanupInterval: envDuration("COACH_RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         envDuration("COACH_RATE_LIMIT_IDLE_TTL", time.Hour),
		Allowlist:       parseList(os.Getenv("COACH_RATE_LIMIT_ALLOWLIST")),
		Denylist:        parseList(os.Getenv("COACH_RATE_LIMIT_DENYLIST")),
	}
}

// Match returns the rule for a request. /health is never limited; exact
// paths win over prefixes; anything else gets the default rule.
func (c *Config) Match(path, method string) Rule {
	if path == "/health" {
		return Rule{Path: path, Method: method}
	}
	for _, r := range c.Rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	for _, r := range c.Rules {
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	def := c.Default
	def.Path = "*"
	def.Method = method
	if def.Window <= 0 {
		def.Window = time.Minute
	}
	return def
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// parseList splits a comma separated list of client ids
func parseList(list string) map[string]bool {
	out := make(map[string]bool)
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out[item] = true
		}
	}
	return out
}
