package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-matrix-service/internal/adapters/matrix"
	"travel-matrix-service/internal/domain"
	"travel-matrix-service/internal/ports"
)

func TestGetDistanceMatrixBatchesDestinations(t *testing.T) {
	origins := []domain.Address{domain.NewStoredAddress(1, "HUB")}
	destinations := makeAddresses(30)

	mock := &matrix.MockMatrixClient{
		Responses: []*ports.MatrixResponse{
			matrix.UniformResponse(1, 25, 1000, 60),
			matrix.UniformResponse(1, 5, 1000, 60),
		},
	}
	service := NewDistanceMatrixService(mock)

	results, err := service.GetDistanceMatrix(context.Background(), origins, destinations, domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Requests) != 2 {
		t.Fatalf("issued %d provider calls, want 2", len(mock.Requests))
	}
	if got := strings.Count(mock.Requests[0].Destinations, "|"); got != 24 {
		t.Errorf("first call has %d separators, want 24", got)
	}
	if got := strings.Count(mock.Requests[1].Destinations, "|"); got != 4 {
		t.Errorf("second call has %d separators, want 4", got)
	}

	if len(results) != 30 {
		t.Fatalf("got %d results, want 30", len(results))
	}

	// Destination order must hold across the chunk boundary.
	if results[24].Destination != "addr-25" {
		t.Errorf("result 24 destination = %q, want addr-25", results[24].Destination)
	}
	if results[25].Destination != "addr-26" {
		t.Errorf("result 25 destination = %q, want addr-26", results[25].Destination)
	}
}

func TestGetDistanceMatrixZeroDestinations(t *testing.T) {
	mock := &matrix.MockMatrixClient{}
	service := NewDistanceMatrixService(mock)

	results, err := service.GetDistanceMatrix(
		context.Background(),
		[]domain.Address{domain.NewStoredAddress(1, "HUB")},
		nil,
		domain.ModeDriving,
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
	if len(mock.Requests) != 0 {
		t.Fatalf("issued %d provider calls, want 0", len(mock.Requests))
	}
}

func TestGetDistanceMatrixGlobalOrdering(t *testing.T) {
	origins := []domain.Address{
		domain.NewStoredAddress(1, "O1"),
		domain.NewStoredAddress(2, "O2"),
	}
	destinations := makeAddresses(4)

	// Batch size 3 forces two calls: destinations 1-3 then destination 4.
	mock := &matrix.MockMatrixClient{
		Responses: []*ports.MatrixResponse{
			matrix.UniformResponse(2, 3, 1000, 60),
			matrix.UniformResponse(2, 1, 2000, 120),
		},
	}
	service := NewDistanceMatrixService(mock).WithBatchSize(3)

	results, err := service.GetDistanceMatrix(context.Background(), origins, destinations, domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 8 {
		t.Fatalf("got %d results, want 8", len(results))
	}

	// Combined list is origin-major, destination-minor despite the second
	// batch being fetched after all of the first batch's origins.
	wantPairs := []struct{ o, d string }{
		{"O1", "addr-1"}, {"O1", "addr-2"}, {"O1", "addr-3"}, {"O1", "addr-4"},
		{"O2", "addr-1"}, {"O2", "addr-2"}, {"O2", "addr-3"}, {"O2", "addr-4"},
	}
	for i, want := range wantPairs {
		if results[i].Origin != want.o || results[i].Destination != want.d {
			t.Errorf("result %d = (%q, %q), want (%q, %q)",
				i, results[i].Origin, results[i].Destination, want.o, want.d)
		}
	}

	// Results from the second batch land at the right global slots.
	if got := results[3].DistanceKM.String(); got != "2" {
		t.Errorf("result 3 distance = %s km, want 2", got)
	}
	if got := results[4].DistanceKM.String(); got != "1" {
		t.Errorf("result 4 distance = %s km, want 1", got)
	}
}

func TestGetDistanceOneToOne(t *testing.T) {
	mock := &matrix.MockMatrixClient{
		Responses: []*ports.MatrixResponse{matrix.UniformResponse(1, 1, 5000, 300)},
	}
	service := NewDistanceMatrixService(mock)

	results, err := service.GetDistance(context.Background(), "A", "B", domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Origin != "A" || r.Destination != "B" {
		t.Errorf("pair = (%q, %q), want (A, B)", r.Origin, r.Destination)
	}
	if r.OriginID != nil || r.DestinationID != nil {
		t.Error("raw string pair should carry no ids")
	}
	if got := r.DistanceKM.String(); got != "5" {
		t.Errorf("distance = %s km, want 5", got)
	}
}

func TestGetDistancesToAddressCarriesIDs(t *testing.T) {
	mock := &matrix.MockMatrixClient{
		Responses: []*ports.MatrixResponse{matrix.UniformResponse(2, 1, 1000, 60)},
	}
	service := NewDistanceMatrixService(mock)

	origins := []domain.Address{
		domain.NewStoredAddress(11, "O1"),
		domain.NewStoredAddress(12, "O2"),
	}
	destination := domain.NewStoredAddress(99, "D")

	results, err := service.GetDistancesToAddress(context.Background(), origins, destination, domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i, r := range results {
		if r.DestinationID == nil || *r.DestinationID != 99 {
			t.Errorf("result %d destination id = %v, want 99", i, r.DestinationID)
		}
	}
	if *results[0].OriginID != 11 || *results[1].OriginID != 12 {
		t.Error("origin ids not carried through in order")
	}
}

func TestGetDistancesInvalidModeFailsFast(t *testing.T) {
	mock := &matrix.MockMatrixClient{}
	service := NewDistanceMatrixService(mock)

	_, err := service.GetDistances(context.Background(), []string{"A"}, "B", domain.ModeUnknown, nil)
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("got %v, want ErrInvalidMode", err)
	}
	if len(mock.Requests) != 0 {
		t.Fatalf("issued %d provider calls, want 0", len(mock.Requests))
	}
}

func TestGetDistancesCapacityFailsFast(t *testing.T) {
	mock := &matrix.MockMatrixClient{}
	service := NewDistanceMatrixService(mock)

	origins := make([]string, 101)
	for i := range origins {
		origins[i] = "origin"
	}

	_, err := service.GetDistances(context.Background(), origins, "B", domain.ModeDriving, nil)
	if !errors.Is(err, ErrTooManyPairs) {
		t.Fatalf("got %v, want ErrTooManyPairs", err)
	}
	if len(mock.Requests) != 0 {
		t.Fatalf("issued %d provider calls, want 0", len(mock.Requests))
	}
}

func TestGetDistancesEmptyOrigins(t *testing.T) {
	mock := &matrix.MockMatrixClient{}
	service := NewDistanceMatrixService(mock)

	results, err := service.GetDistances(context.Background(), nil, "B", domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
	if len(mock.Requests) != 0 {
		t.Fatalf("issued %d provider calls, want 0", len(mock.Requests))
	}
}

func TestGetDistancesPerPairFailureIsNotFatal(t *testing.T) {
	resp := matrix.UniformResponse(3, 1, 1000, 60)
	resp.Rows[1].Elements[0] = ports.MatrixElement{Status: "ZERO_RESULTS"}

	mock := &matrix.MockMatrixClient{Responses: []*ports.MatrixResponse{resp}}
	service := NewDistanceMatrixService(mock)

	results, err := service.GetDistances(context.Background(), []string{"A", "B", "C"}, "D", domain.ModeDriving, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[1].ErrorCode != "ZERO_RESULTS" {
		t.Errorf("error code = %q, want ZERO_RESULTS", results[1].ErrorCode)
	}
	if !results[0].OK() || !results[2].OK() {
		t.Error("surrounding pairs should have succeeded")
	}
}
