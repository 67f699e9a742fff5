package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchLatency returns a timeseries panel showing p50 and p95 catalog
// search evaluation latencies.
func SearchLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Latency").
		Description("Catalog filter evaluation duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(onetech_catalog_search_duration_seconds_bucket{job="onetech-backend"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(onetech_catalog_search_duration_seconds_bucket{job="onetech-backend"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchResults returns a timeseries panel showing the median number of
// products returned per catalog search.
func SearchResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Results per Search").
		Description("Median product count returned by catalog searches").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(onetech_catalog_search_results_bucket{job="onetech-backend"}[5m])) by (le))`,
			"median results",
			"A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
