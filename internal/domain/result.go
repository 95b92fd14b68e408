package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatrixResult is the outcome of measuring one (origin, destination) pair.
// Exactly one record exists per submitted pair. A record is either measured
// (ErrorCode empty, DistanceKM and Duration populated, Mode = requested mode)
// or failed (ErrorCode carries the provider status, Mode forced to
// ModeUnknown, metric fields zero) — never both.
//
// DistanceKM is a decimal so that the meters-to-kilometers conversion does
// not accumulate binary floating-point error.
type MatrixResult struct {
	Origin        string
	OriginID      *int64
	Destination   string
	DestinationID *int64
	Mode          TravelMode
	ErrorCode     string
	DistanceKM    decimal.Decimal
	Duration      time.Duration
}

// OK reports whether the pair was measured successfully.
func (r MatrixResult) OK() bool { return r.ErrorCode == "" }
