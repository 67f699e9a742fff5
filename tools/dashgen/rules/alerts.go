package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// onetech backend operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "onetech-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "onetech-alerts",
					Rules: []Rule{
						{
							Alert: "OnetechDown",
							Expr:  `absent(up{job="onetech-backend"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Onetech backend is down",
								"description": "The onetech-backend job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "OnetechReadinessDown",
							Expr:  `onetech_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Onetech backend readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "OnetechHighErrorRate",
							Expr:  `onetech:http_errors:rate5m / onetech:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the onetech backend",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "OnetechCacheMissSpike",
							Expr:  `onetech:cache_misses:rate5m > onetech:cache_hits:rate5m`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog cache is missing more than it hits",
								"description": "Cache misses have outnumbered hits for 10 minutes. The warm scheduler may be stalled or Redis may be unavailable.",
							},
						},
						{
							Alert: "OnetechSlowSearch",
							Expr:  `histogram_quantile(0.95, sum(rate(onetech_catalog_search_duration_seconds_bucket[5m])) by (le)) > 0.5`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog search latency is elevated",
								"description": "The p95 catalog search evaluation has exceeded 500ms for 5 minutes.",
							},
						},
						{
							Alert: "OnetechNotificationFailures",
							Expr:  `increase(onetech_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Order notification delivery failures detected",
								"description": "One or more order webhook notifications have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
