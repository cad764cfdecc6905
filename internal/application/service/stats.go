package service

import "time"

type LookupSource string

const (
	SourcePOS        LookupSource = "pos"
	SourceStorefront LookupSource = "storefront"
	SourceDB         LookupSource = "db"
)

type LookupStats struct {
	POSMs        float64
	StorefrontMs float64
	DBMs         float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
