package ports

import "context"

// StatusOK is the provider's success sentinel, for both the top-level
// response status and each per-pair cell status.
const StatusOK = "OK"

// MatrixRequest is one fully built provider call. Origins and Destinations
// are pipe-joined address lists. DepartureTime is epoch seconds (UTC) and is
// set only for transit requests. Authentication parameters (key, client,
// channel) are the transport adapter's concern.
type MatrixRequest struct {
	Origins       string
	Destinations  string
	Mode          string // empty means no mode restriction
	DepartureTime *int64
}

// ValueText mirrors the provider's {value, text} metric pair. Value is
// seconds for durations and meters for distances.
type ValueText struct {
	Value int64  `json:"value"`
	Text  string `json:"text"`
}

// MatrixElement is one cell of the response grid. Duration and Distance are
// meaningful only when Status equals StatusOK.
type MatrixElement struct {
	Status   string    `json:"status"`
	Duration ValueText `json:"duration"`
	Distance ValueText `json:"distance"`
}

type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// MatrixResponse is the provider's parsed response: one row per submitted
// origin, one element per submitted destination, positionally aligned with
// the submission order.
type MatrixResponse struct {
	Status               string      `json:"status"`
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []MatrixRow `json:"rows"`
}

// Port: a boundary for issuing a single routing-matrix call.
type MatrixClient interface {
	// Perform one matrix lookup and return the parsed response grid.
	FetchMatrix(ctx context.Context, req MatrixRequest) (*MatrixResponse, error)
}
