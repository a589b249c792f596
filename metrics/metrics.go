// Package metrics decouples cache instrumentation from any particular backend.
//
// The lru package reports to a Recorder. Use Nop when nothing should be
// collected and NewPrometheus to export counters and gauges through a
// prometheus.Registerer.
package metrics

// Recorder receives cache events.
type Recorder interface {
	// Hit is called when a lookup finds the key in either generation.
	Hit()
	// Miss is called when a lookup finds nothing.
	Miss()
	// Promotion is called when a lookup moves a key from old to young.
	Promotion()
	// Rotation is called once per generation rotation with the number of
	// entries discarded from the old generation.
	Rotation(evicted int)
	// Size reports the generation sizes after a mutation.
	Size(young, old int)
}

type nop struct{}

func (nop) Hit()          {}
func (nop) Miss()         {}
func (nop) Promotion()    {}
func (nop) Rotation(int)  {}
func (nop) Size(int, int) {}

// Nop returns a Recorder that drops every event.
func Nop() Recorder { return nop{} }
