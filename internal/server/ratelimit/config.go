package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a per-endpoint budget. A trailing "/" in Path makes it a
// prefix rule; Limit <= 0 means unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// keyPath collapses every request under a prefix rule into one bucket.
func (r *Rule) keyPath(path string) string {
	if r.Path != "" {
		return r.Path
	}
	return path
}

// Config holds limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	SweepInterval time.Duration
	Exempt        map[string]bool
	Rules         []Rule
}

// LoadConfig reads limiter configuration from environment variables:
// RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW
// and RATE_LIMIT_EXEMPT (comma-separated client IDs).
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:       true,
		DefaultLimit:  envInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow: envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		SweepInterval: envDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
		Exempt:        parseClientList(os.Getenv("RATE_LIMIT_EXEMPT")),
		Rules:         DefaultRules(),
	}
}

// DefaultRules budgets the expensive endpoints. Analysis parses
// documents and runs the full pipeline, so it gets a small hourly
// budget; health checks are unlimited for load balancers.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/analyze", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},
		{Path: "/auth/token", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		{Path: "/health", Method: "GET", Limit: 0},
	}
}

func matchRule(path, method string, rules []Rule) *Rule {
	for i := range rules {
		rule := &rules[i]
		if rule.Method != method {
			continue
		}
		if rule.Path == path {
			return rule
		}
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func parseClientList(list string) map[string]bool {
	result := map[string]bool{}
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			result[entry] = true
		}
	}
	return result
}
