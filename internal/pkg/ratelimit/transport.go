package ratelimit

import "net/http"

type transport struct {
	limiter *Limiter
	next    http.RoundTripper
}

// Transport returns a RoundTripper that acquires a slot before every request.
func (l *Limiter) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &transport{limiter: l, next: next}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Acquire(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}
