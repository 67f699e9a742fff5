package main

import "errors"

// KnownMetrics is the set of metric names exported by the onetech backend
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"onetech_http_request_duration_seconds": true,
	"onetech_http_requests_total":           true,

	// Health metrics.
	"onetech_healthz_up": true,
	"onetech_readyz_up":  true,

	// Catalog metrics.
	"onetech_catalog_search_duration_seconds": true,
	"onetech_catalog_search_results":          true,

	// Cache metrics.
	"onetech_cache_hits_total":            true,
	"onetech_cache_misses_total":          true,
	"onetech_cache_warm_duration_seconds": true,

	// Order metrics.
	"onetech_orders_created_total":        true,
	"onetech_notification_failures_total": true,

	// Recording rules.
	"onetech:http_requests:rate5m":         true,
	"onetech:http_errors:rate5m":           true,
	"onetech:cache_hits:rate5m":            true,
	"onetech:cache_misses:rate5m":          true,
	"onetech:orders_created:rate5m":        true,
	"onetech:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
