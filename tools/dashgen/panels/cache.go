package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheTraffic returns a timeseries panel comparing catalog cache hit and
// miss rates.
func CacheTraffic() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cache Traffic").
		Description("Catalog cache hits and misses per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`onetech:cache_hits:rate5m`, "hits/s", "A")).
		WithTarget(PromQuery(`onetech:cache_misses:rate5m`, "misses/s", "B")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// WarmDuration returns a timeseries panel showing the p95 duration of
// cache warming cycles.
func WarmDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Warm Cycle Duration (p95)").
		Description("95th percentile duration of catalog cache warm cycles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(onetech_cache_warm_duration_seconds_bucket{job="onetech-backend"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(5, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
