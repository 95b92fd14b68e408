package domain

import "fmt"

// TravelMode enumerates the transportation modes understood by the routing
// provider. ModeUnknown is an explicit invalid state, never a requestable
// mode; it also marks result records whose measurement failed. ModeAll means
// "no mode restriction" and is submitted without a mode parameter.
type TravelMode int

const (
	ModeUnknown TravelMode = iota
	ModeDriving
	ModeWalking
	ModeBicycling
	ModeTransit
	ModeAll
)

// Param returns the provider query value for the mode. Modes without a wire
// value (ModeAll, ModeUnknown) return the empty string.
func (m TravelMode) Param() string {
	switch m {
	case ModeDriving:
		return "driving"
	case ModeWalking:
		return "walking"
	case ModeBicycling:
		return "bicycling"
	case ModeTransit:
		return "transit"
	default:
		return ""
	}
}

func (m TravelMode) String() string {
	switch m {
	case ModeDriving:
		return "driving"
	case ModeWalking:
		return "walking"
	case ModeBicycling:
		return "bicycling"
	case ModeTransit:
		return "transit"
	case ModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseTravelMode maps an external mode string onto a TravelMode.
// The empty string means "no mode restriction".
func ParseTravelMode(s string) (TravelMode, error) {
	switch s {
	case "driving":
		return ModeDriving, nil
	case "walking":
		return ModeWalking, nil
	case "bicycling":
		return ModeBicycling, nil
	case "transit":
		return ModeTransit, nil
	case "all", "":
		return ModeAll, nil
	default:
		return ModeUnknown, fmt.Errorf("parse travel mode: unrecognized mode %q", s)
	}
}
