package ports

import (
	"context"

	"travel-matrix-service/internal/domain"
)

// Port: a boundary for retrieving stored Address entities.
type AddressRepository interface {
	// Retrieve all stored addresses, ordered by identifier.
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	// Retrieve the addresses for the given ids, preserving the id order.
	// An id with no stored address is an error.
	GetAddressesByIDs(ctx context.Context, ids []int64) ([]domain.Address, error)
}
