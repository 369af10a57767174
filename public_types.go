package waybacknews

import "github.com/mediacloud/waybacknews-go/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Envelope shapes
	Document   = types.Document
	Envelope   = types.Envelope
	ResultPage = types.ResultPage

	// Aggregates
	NamedCount  = types.NamedCount
	NamedCounts = types.NamedCounts

	// Count-over-time series
	DayCount      = types.DayCount
	CountOverTime = types.CountOverTime
)
