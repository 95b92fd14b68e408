package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"travel-matrix-service/internal/domain"
	"travel-matrix-service/internal/ports"
)

// ErrShapeMismatch means the provider's response grid does not line up with
// the submitted origin list. The response carries no schema version, so a
// row-count mismatch is the only reliable signal that the positional
// alignment contract was broken.
var ErrShapeMismatch = errors.New("response grid shape does not match submitted addresses")

// StatusMissingElement marks pairs for which the provider returned no grid
// element at all (truncated or malformed row).
const StatusMissingElement = "MISSING_ELEMENT"

var metersPerKilometer = decimal.NewFromInt(1000)

// reconcileResults walks the response grid in lock-step with the submitted
// (origin, destination) enumeration — origins outer, destinations inner —
// and emits exactly one result per pair, carrying the entity identifiers
// through. A failed cell becomes a failure record and never aborts the
// remaining pairs.
func reconcileResults(
	origins []domain.Address,
	destinations []domain.Address,
	mode domain.TravelMode,
	resp *ports.MatrixResponse,
) ([]domain.MatrixResult, error) {
	if resp == nil {
		return nil, fmt.Errorf("reconcile results: nil response: %w", ErrShapeMismatch)
	}

	if len(resp.Rows) != len(origins) {
		return nil, fmt.Errorf(
			"reconcile results: %d rows for %d origins: %w",
			len(resp.Rows), len(origins), ErrShapeMismatch,
		)
	}

	results := make([]domain.MatrixResult, 0, len(origins)*len(destinations))
	for i, origin := range origins {
		row := resp.Rows[i]

		for j, dest := range destinations {
			res := domain.MatrixResult{
				Origin:        origin.Text,
				OriginID:      origin.ID,
				Destination:   dest.Text,
				DestinationID: dest.ID,
			}

			if j >= len(row.Elements) {
				res.Mode = domain.ModeUnknown
				res.ErrorCode = StatusMissingElement
				results = append(results, res)
				continue
			}

			cell := row.Elements[j]
			if cell.Status != ports.StatusOK {
				res.Mode = domain.ModeUnknown
				res.ErrorCode = cell.Status
				if res.ErrorCode == "" {
					res.ErrorCode = StatusMissingElement
				}
				results = append(results, res)
				continue
			}

			res.Mode = mode
			res.DistanceKM = decimal.NewFromInt(cell.Distance.Value).Div(metersPerKilometer)
			res.Duration = time.Duration(cell.Duration.Value) * time.Second
			results = append(results, res)
		}
	}

	return results, nil
}
