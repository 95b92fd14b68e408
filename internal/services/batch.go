package services

import "travel-matrix-service/internal/domain"

// Provider ceilings for a single matrix call. A call is rejected upstream
// when origin-count x destination-count exceeds maxPairsPerCall; the
// many-to-many path keeps calls under that ceiling by chunking destinations
// at maxDestinationsPerCall.
const (
	maxDestinationsPerCall = 25
	maxPairsPerCall        = 100
)

// ChunkAddresses splits addrs into ordered, contiguous, non-overlapping
// chunks of at most size items each. Every input address lands in exactly one
// chunk and the original order is preserved; only the final chunk may be
// short. An empty input produces no chunks.
func ChunkAddresses(addrs []domain.Address, size int) [][]domain.Address {
	if size <= 0 || len(addrs) == 0 {
		return nil
	}

	// Ceiling division: one chunk per started group of size addresses.
	chunks := make([][]domain.Address, 0, (len(addrs)+size-1)/size)
	for start := 0; start < len(addrs); start += size {
		end := start + size
		if end > len(addrs) {
			end = len(addrs)
		}
		chunks = append(chunks, addrs[start:end])
	}

	return chunks
}
