package services

import (
	"context"
	"fmt"
	"time"

	"travel-matrix-service/internal/domain"
	"travel-matrix-service/internal/platform/obs"
	"travel-matrix-service/internal/ports"
)

// DistanceMatrixService measures travel distance and duration between origin
// and destination addresses by delegating to a routing-matrix provider.
//
// Every public call shape reduces to the same pipeline: normalize the inputs
// to (address, optional id) pairs, build one request per destination batch,
// issue it, and reconcile the response grid back into one ordered result per
// (origin, destination) pair. Batches are issued strictly sequentially.
//
// The service holds no mutable state; each invocation is independent.
type DistanceMatrixService struct {
	client    ports.MatrixClient
	batchSize int
	now       func() time.Time
}

func NewDistanceMatrixService(client ports.MatrixClient) *DistanceMatrixService {
	return &DistanceMatrixService{
		client:    client,
		batchSize: maxDestinationsPerCall,
		now:       time.Now,
	}
}

// WithBatchSize returns a copy of the service using size as the destination
// batch limit for many-to-many calls. Sizes outside (0, 25] are ignored.
func (s *DistanceMatrixService) WithBatchSize(size int) *DistanceMatrixService {
	if size <= 0 || size > maxDestinationsPerCall {
		return s
	}

	copied := *s
	copied.batchSize = size
	return &copied
}

// GetDistance measures a single origin -> destination pair.
func (s *DistanceMatrixService) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TravelMode,
	departAt *time.Time,
) ([]domain.MatrixResult, error) {
	return s.GetDistances(ctx, []string{origin}, destination, mode, departAt)
}

// GetDistances measures many raw origin strings against one destination
// string.
func (s *DistanceMatrixService) GetDistances(
	ctx context.Context,
	origins []string,
	destination string,
	mode domain.TravelMode,
	departAt *time.Time,
) (_ []domain.MatrixResult, err error) {
	defer obs.Time(ctx, "matrix.GetDistances")(&err)

	return s.measure(ctx, rawAddresses(origins), []domain.Address{domain.NewAddress(destination)}, mode, departAt)
}

// GetDistancesForAddresses measures stored origin entities against one raw
// destination string, carrying the origin identifiers through to the results.
func (s *DistanceMatrixService) GetDistancesForAddresses(
	ctx context.Context,
	origins []domain.Address,
	destination string,
	mode domain.TravelMode,
	departAt *time.Time,
) (_ []domain.MatrixResult, err error) {
	defer obs.Time(ctx, "matrix.GetDistancesForAddresses")(&err)

	return s.measure(ctx, origins, []domain.Address{domain.NewAddress(destination)}, mode, departAt)
}

// GetDistancesToAddress measures stored origin entities against one stored
// destination entity, carrying both identifiers through.
func (s *DistanceMatrixService) GetDistancesToAddress(
	ctx context.Context,
	origins []domain.Address,
	destination domain.Address,
	mode domain.TravelMode,
	departAt *time.Time,
) (_ []domain.MatrixResult, err error) {
	defer obs.Time(ctx, "matrix.GetDistancesToAddress")(&err)

	return s.measure(ctx, origins, []domain.Address{destination}, mode, departAt)
}

// GetDistanceMatrix measures stored origins against stored destinations.
// Destinations are split into provider-sized batches, one sequential call
// per batch, and the per-batch results are reassembled by index so the
// combined list keeps the global origin-major, destination-minor order of
// the inputs. Zero destinations means zero provider calls.
func (s *DistanceMatrixService) GetDistanceMatrix(
	ctx context.Context,
	origins []domain.Address,
	destinations []domain.Address,
	mode domain.TravelMode,
	departAt *time.Time,
) (_ []domain.MatrixResult, err error) {
	defer obs.Time(ctx, "matrix.GetDistanceMatrix")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return []domain.MatrixResult{}, nil
	}

	nOrigins := len(origins)
	nDests := len(destinations)

	out := make([]domain.MatrixResult, nOrigins*nDests)

	destOffset := 0
	for _, batch := range ChunkAddresses(destinations, s.batchSize) {
		results, err := s.measure(ctx, origins, batch, mode, departAt)
		if err != nil {
			return nil, fmt.Errorf("get distance matrix: destinations %d-%d: %w",
				destOffset, destOffset+len(batch)-1, err)
		}

		// Per-batch results are origin-major over the batch; slot each one
		// into its global position.
		for i := 0; i < nOrigins; i++ {
			for j := range batch {
				out[i*nDests+destOffset+j] = results[i*len(batch)+j]
			}
		}

		destOffset += len(batch)
	}

	return out, nil
}

// measure performs one provider call for a single batch of origins and
// destinations and reconciles the grid back into per-pair results.
func (s *DistanceMatrixService) measure(
	ctx context.Context,
	origins []domain.Address,
	destinations []domain.Address,
	mode domain.TravelMode,
	departAt *time.Time,
) ([]domain.MatrixResult, error) {
	req, ok, err := buildMatrixRequest(origins, destinations, mode, departAt, s.now())
	if err != nil {
		return nil, fmt.Errorf("measure distances: %w", err)
	}
	if !ok {
		return []domain.MatrixResult{}, nil
	}

	resp, err := s.client.FetchMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("measure distances: fetch matrix: %w", err)
	}

	results, err := reconcileResults(origins, destinations, mode, resp)
	if err != nil {
		return nil, fmt.Errorf("measure distances: %w", err)
	}

	return results, nil
}

func rawAddresses(texts []string) []domain.Address {
	addrs := make([]domain.Address, 0, len(texts))
	for _, t := range texts {
		addrs = append(addrs, domain.NewAddress(t))
	}
	return addrs
}
