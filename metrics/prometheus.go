package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exports cache events as Prometheus collectors.
type Prometheus struct {
	Hits       prometheus.Counter
	Misses     prometheus.Counter
	Promotions prometheus.Counter
	Rotations  prometheus.Counter
	Evictions  prometheus.Counter
	Entries    *prometheus.GaugeVec
}

// NewPrometheus creates the collectors under namespace and registers them with
// reg. A nil reg registers with prometheus.DefaultRegisterer.
func NewPrometheus(namespace string, reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of lookups that found the key",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of lookups that did not find the key",
		}),
		Promotions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_promotions_total",
			Help:      "Total number of entries moved from the old to the young generation",
		}),
		Rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_rotations_total",
			Help:      "Total number of generation rotations",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries discarded by rotations",
		}),
		Entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Number of entries per generation",
		}, []string{"generation"}),
	}

	for _, c := range []prometheus.Collector{p.Hits, p.Misses, p.Promotions, p.Rotations, p.Evictions, p.Entries} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) Hit()       { p.Hits.Inc() }
func (p *Prometheus) Miss()      { p.Misses.Inc() }
func (p *Prometheus) Promotion() { p.Promotions.Inc() }

func (p *Prometheus) Rotation(evicted int) {
	p.Rotations.Inc()
	p.Evictions.Add(float64(evicted))
}

func (p *Prometheus) Size(young, old int) {
	p.Entries.WithLabelValues("young").Set(float64(young))
	p.Entries.WithLabelValues("old").Set(float64(old))
}

var _ Recorder = (*Prometheus)(nil)
