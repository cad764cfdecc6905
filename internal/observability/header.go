package observability

import (
	"net/http"
	"strconv"
	"strings"
)

// AppendServerTiming adds one Server-Timing metric. Non-positive durations
// are left out; a metric with neither duration nor description is skipped.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	var b strings.Builder
	b.WriteString(name)
	if durMs > 0 {
		b.WriteString(";dur=")
		b.WriteString(formatMs(durMs))
	}
	if desc != "" {
		b.WriteString(";desc=")
		b.WriteString(strconv.Quote(desc))
	}
	if b.Len() == len(name) {
		return
	}
	w.Header().Add("Server-Timing", b.String())
}

// SetIfPos sets key to ms with two decimals when ms is positive.
func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, formatMs(ms))
	}
}

func formatMs(ms float64) string { return strconv.FormatFloat(ms, 'f', 2, 64) }
