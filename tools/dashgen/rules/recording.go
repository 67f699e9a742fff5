package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "onetech-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "onetech-recording",
					Rules: []Rule{
						{
							Record: "onetech:http_requests:rate5m",
							Expr:   `sum(rate(onetech_http_requests_total[5m]))`,
						},
						{
							Record: "onetech:http_errors:rate5m",
							Expr:   `sum(rate(onetech_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "onetech:cache_hits:rate5m",
							Expr:   `rate(onetech_cache_hits_total[5m])`,
						},
						{
							Record: "onetech:cache_misses:rate5m",
							Expr:   `rate(onetech_cache_misses_total[5m])`,
						},
						{
							Record: "onetech:orders_created:rate5m",
							Expr:   `rate(onetech_orders_created_total[5m])`,
						},
						{
							Record: "onetech:notification_failures:rate5m",
							Expr:   `rate(onetech_notification_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
