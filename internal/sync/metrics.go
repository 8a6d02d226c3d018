package sync

import "github.com/prometheus/client_golang/prometheus"

// Recorder observes sync outcomes. Push and fetch failures never surface to
// callers, so the recorder is the only place they stay visible.
type Recorder interface {
	FetchResult(ok bool)
	PushResult(table string, ok bool)
}

// PromRecorder reports sync outcomes as prometheus counters.
type PromRecorder struct {
	fetches *prometheus.CounterVec
	pushes  *prometheus.CounterVec
}

func NewPromRecorder(reg prometheus.Registerer) *PromRecorder {
	r := &PromRecorder{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atelier_sync_fetch_total",
			Help: "Remote fetch attempts by result.",
		}, []string{"result"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atelier_sync_push_total",
			Help: "Remote push attempts by table and result.",
		}, []string{"table", "result"}),
	}

	reg.MustRegister(r.fetches, r.pushes)

	return r
}

func (r *PromRecorder) FetchResult(ok bool) {
	r.fetches.WithLabelValues(result(ok)).Inc()
}

func (r *PromRecorder) PushResult(table string, ok bool) {
	r.pushes.WithLabelValues(table, result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}

	return "error"
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) FetchResult(bool)         {}
func (NopRecorder) PushResult(string, bool)  {}
