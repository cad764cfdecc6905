package observability

type Metrics interface {
	ObserveRefresh(store string, ms float64, ok bool)
	ObserveRateLimitWait(ms float64)
	ObserveRemote(api, op string, ms float64, ok bool)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	ObserveLookup(source string, ms float64)
	IncIndexHit()
	IncIndexMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveRefresh(string, float64, bool)        {}
func (Noop) ObserveRateLimitWait(float64)                {}
func (Noop) ObserveRemote(string, string, float64, bool) {}
func (Noop) ObserveHTTP(string, string, int, float64)    {}
func (Noop) ObserveKafka(float64, bool)                  {}
func (Noop) ObserveLookup(string, float64)               {}
func (Noop) IncIndexHit()                                {}
func (Noop) IncIndexMiss()                               {}
