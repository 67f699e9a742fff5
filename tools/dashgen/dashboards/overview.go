// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/onetech-shop/onetech-backend/tools/dashgen/panels"
)

// BuildOverview constructs the Onetech Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Onetech Overview").
		Uid("onetech-overview").
		Tags([]string{"onetech", "onetech-backend"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CacheHitGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.SearchLatency()).
		WithPanel(panels.SearchResults()))

	// Row 4: Cache.
	b.WithRow(dashboard.NewRowBuilder("Cache").
		WithPanel(panels.CacheTraffic()).
		WithPanel(panels.WarmDuration()))

	// Row 5: Orders.
	b.WithRow(dashboard.NewRowBuilder("Orders").
		WithPanel(panels.OrdersRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
