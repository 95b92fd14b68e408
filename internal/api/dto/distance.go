package dto

import "time"

type DistancesRequest struct {
	Origins     []string   `json:"origins"`
	Destination string     `json:"destination"`
	Mode        string     `json:"mode"`
	DepartAt    *time.Time `json:"depart_at"`
}

type MatrixRequest struct {
	OriginIDs      []int64    `json:"origin_ids"`
	DestinationIDs []int64    `json:"destination_ids"`
	Mode           string     `json:"mode"`
	DepartAt       *time.Time `json:"depart_at"`
}

type PairResponse struct {
	Origin          string `json:"origin"`
	OriginID        *int64 `json:"origin_id,omitempty"`
	Destination     string `json:"destination"`
	DestinationID   *int64 `json:"destination_id,omitempty"`
	Mode            string `json:"mode"`
	ErrorCode       string `json:"error_code,omitempty"`
	DistanceKM      string `json:"distance_km,omitempty"`
	DurationSeconds int64  `json:"duration_seconds,omitempty"`
}

type ListPairsResponse struct {
	Results []PairResponse `json:"results"`
}
