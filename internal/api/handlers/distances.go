package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"travel-matrix-service/internal/api/dto"
	"travel-matrix-service/internal/domain"
	"travel-matrix-service/internal/ports"
	"travel-matrix-service/internal/services"
)

// DistanceHandler exposes the travel-distance measurement endpoints.
// It adapts HTTP shapes onto the DistanceMatrixService call shapes and maps
// the service's fail-fast errors to client status codes.
type DistanceHandler struct {
	Repo    ports.AddressRepository
	Service *services.DistanceMatrixService
}

// Distances measures many raw origin strings against one destination string.
// A single-element origins list is the plain one-to-one lookup.
func (h *DistanceHandler) Distances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DistancesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	mode, err := domain.ParseTravelMode(req.Mode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unrecognized mode")
		return
	}

	results, err := h.Service.GetDistances(r.Context(), req.Origins, req.Destination, mode, req.DepartAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPairsResponse(results))
}

// Matrix measures stored origin entities against stored destination entities,
// resolved from their identifiers.
func (h *DistanceHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.MatrixRequest
	if !decodeBody(w, r, &req) {
		return
	}

	mode, err := domain.ParseTravelMode(req.Mode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unrecognized mode")
		return
	}

	origins, err := h.Repo.GetAddressesByIDs(r.Context(), req.OriginIDs)
	if err != nil {
		log.Printf("resolve origin addresses failed: %v", err)
		writeError(w, r, http.StatusBadRequest, "unknown origin address id")
		return
	}

	destinations, err := h.Repo.GetAddressesByIDs(r.Context(), req.DestinationIDs)
	if err != nil {
		log.Printf("resolve destination addresses failed: %v", err)
		writeError(w, r, http.StatusBadRequest, "unknown destination address id")
		return
	}

	results, err := h.Service.GetDistanceMatrix(r.Context(), origins, destinations, mode, req.DepartAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPairsResponse(results))
}

// decodeBody decodes a single JSON object request body, rejecting unknown
// fields and trailing content. Returns false after writing the error.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidMode):
		writeError(w, r, http.StatusBadRequest, "transportation mode is unknown")
	case errors.Is(err, services.ErrTooManyPairs):
		writeError(w, r, http.StatusBadRequest, "too many origin/destination pairs for a single call")
	default:
		log.Printf("measure distances failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "routing provider error")
	}
}

func toPairsResponse(results []domain.MatrixResult) dto.ListPairsResponse {
	res := dto.ListPairsResponse{
		Results: make([]dto.PairResponse, 0, len(results)),
	}
	for _, m := range results {
		pair := dto.PairResponse{
			Origin:        m.Origin,
			OriginID:      m.OriginID,
			Destination:   m.Destination,
			DestinationID: m.DestinationID,
			Mode:          m.Mode.String(),
			ErrorCode:     m.ErrorCode,
		}
		if m.OK() {
			pair.DistanceKM = m.DistanceKM.String()
			pair.DurationSeconds = int64(m.Duration.Seconds())
		}
		res.Results = append(res.Results, pair)
	}
	return res
}
