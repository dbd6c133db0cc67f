package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"claydash/internal/loader"
	"claydash/internal/models"
)

var (
	datasetRowsDesc = prometheus.NewDesc(
		"claydash_dataset_rows",
		"Row count of the cached dataset by entity",
		[]string{"entity"},
		nil,
	)

	// LoadsTotal counts disk loads, by outcome ("ok" or "error").
	LoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "claydash_loads_total",
		Help: "Total dataset loads from disk by outcome",
	}, []string{"outcome"})

	// InvalidationsTotal counts explicit cache refreshes.
	InvalidationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "claydash_cache_invalidations_total",
		Help: "Total explicit dataset cache invalidations",
	})

	// ExportsTotal counts CSV exports by entity.
	ExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "claydash_exports_total",
		Help: "Total CSV exports by entity",
	}, []string{"entity"})

	// FilterMutationsTotal counts facet set/remove/clear operations.
	FilterMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "claydash_filter_mutations_total",
		Help: "Total filter state mutations by operation",
	}, []string{"op"})
)

// DatasetCollector is a custom Prometheus collector that reports the cached
// dataset's row counts on each scrape. A cold cache emits nothing.
type DatasetCollector struct {
	loader *loader.Loader
}

// Describe sends the metric descriptor to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- datasetRowsDesc
}

// Collect reads the cached dataset and emits one gauge per entity.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	raw, ok := c.loader.Cached()
	if !ok {
		return
	}
	for entity, count := range map[string]int{
		models.EntityCompanies:      len(raw.Companies),
		models.EntityDecisionMakers: len(raw.DecisionMakers),
		models.EntityJobs:           len(raw.Jobs),
	} {
		ch <- prometheus.MustNewConstMetric(
			datasetRowsDesc,
			prometheus.GaugeValue,
			float64(count),
			entity,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors and counters.
// Must be called once at startup.
func Init(l *loader.Loader) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&DatasetCollector{loader: l},
			LoadsTotal,
			InvalidationsTotal,
			ExportsTotal,
			FilterMutationsTotal,
		)
	})
}
