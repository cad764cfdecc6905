package observability

import "sync"

type observe struct {
	Kind   string
	Name   string
	Op     string
	Status int
	Dur    float64
	OK     bool
}

// Inmem keeps the last max observations plus index counters.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		indexHits, indexMiss int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.max <= 0 {
		m.last = []*observe{}
		return
	}
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveRefresh(store string, ms float64, ok bool) {
	m.push(&observe{Kind: "refresh", Name: store, Dur: ms, OK: ok})
}

func (m *Inmem) ObserveRateLimitWait(ms float64) {
	m.push(&observe{Kind: "ratelimit", Dur: ms, OK: true})
}

func (m *Inmem) ObserveRemote(api, op string, ms float64, ok bool) {
	m.push(&observe{Kind: "remote", Name: api, Op: op, Dur: ms, OK: ok})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Name: route, Op: method, Status: status, Dur: durMs, OK: status < 500})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(&observe{Kind: "kafka", Dur: processMs, OK: ok})
}

func (m *Inmem) ObserveLookup(source string, ms float64) {
	m.push(&observe{Kind: "lookup", Name: source, Dur: ms, OK: true})
}

func (m *Inmem) IncIndexHit() {
	m.mu.Lock()
	m.totals.indexHits++
	m.mu.Unlock()
}

func (m *Inmem) IncIndexMiss() {
	m.mu.Lock()
	m.totals.indexMiss++
	m.mu.Unlock()
}

// Snapshot is a copy of the recorded state, served on the ops endpoint.
type Snapshot struct {
	Recent    []Observation `json:"recent"`
	IndexHits int           `json:"index_hits"`
	IndexMiss int           `json:"index_miss"`
}

type Observation struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name,omitempty"`
	Op     string  `json:"op,omitempty"`
	Status int     `json:"status,omitempty"`
	DurMs  float64 `json:"dur_ms"`
	OK     bool    `json:"ok"`
}

func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Recent:    make([]Observation, 0, len(m.last)),
		IndexHits: m.totals.indexHits,
		IndexMiss: m.totals.indexMiss,
	}
	for _, o := range m.last {
		s.Recent = append(s.Recent, Observation{Kind: o.Kind, Name: o.Name, Op: o.Op, Status: o.Status, DurMs: o.Dur, OK: o.OK})
	}
	return s
}

var _ Metrics = (*Inmem)(nil)
