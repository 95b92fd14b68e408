package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-matrix-service/internal/domain"
	"travel-matrix-service/internal/ports"
)

var (
	// ErrTooManyPairs means a single call would exceed the provider's
	// origin x destination ceiling. Raised before any request is sent.
	ErrTooManyPairs = errors.New("pair count exceeds provider ceiling")

	// ErrInvalidMode means the caller submitted the ModeUnknown sentinel.
	ErrInvalidMode = errors.New("transportation mode is unknown")
)

// Default transit departure: next Monday at this hour, local time.
const defaultTransitHour = 15

// buildMatrixRequest assembles the parameter set for a single provider call.
// ok is false when there is nothing to request (empty origin or destination
// list); the caller should treat that as an empty result, not an error.
func buildMatrixRequest(
	origins []domain.Address,
	destinations []domain.Address,
	mode domain.TravelMode,
	departAt *time.Time,
	now time.Time,
) (_ ports.MatrixRequest, ok bool, err error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return ports.MatrixRequest{}, false, nil
	}

	if len(origins)*len(destinations) > maxPairsPerCall {
		return ports.MatrixRequest{}, false, fmt.Errorf(
			"build matrix request: %d origins x %d destinations: %w",
			len(origins), len(destinations), ErrTooManyPairs,
		)
	}

	req := ports.MatrixRequest{
		Origins:      joinAddresses(origins),
		Destinations: joinAddresses(destinations),
	}

	switch mode {
	case domain.ModeUnknown:
		return ports.MatrixRequest{}, false, fmt.Errorf("build matrix request: %w", ErrInvalidMode)
	case domain.ModeDriving, domain.ModeWalking, domain.ModeBicycling:
		req.Mode = mode.Param()
	case domain.ModeTransit:
		req.Mode = mode.Param()

		var depart time.Time
		if departAt != nil {
			depart = *departAt
		} else {
			depart = nextTransitDeparture(now)
		}

		secs := depart.Unix()
		req.DepartureTime = &secs
	}
	// Any other mode (ModeAll) is submitted without a mode parameter and the
	// provider applies its default.

	return req, true, nil
}

func joinAddresses(addrs []domain.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.Text)
	}
	return strings.Join(parts, "|")
}

// nextTransitDeparture returns the default transit departure: the next Monday
// at 15:00 in now's location, strictly after today. A Monday "now" yields the
// Monday seven days out, regardless of the current clock time.
func nextTransitDeparture(now time.Time) time.Time {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	return time.Date(
		now.Year(), now.Month(), now.Day()+days,
		defaultTransitHour, 0, 0, 0,
		now.Location(),
	)
}
