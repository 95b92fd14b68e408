package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travel-matrix-service/internal/domain"
)

// Postgres-backed implementation of the AddressRepository port.
type PostgresAddressRepository struct{ DB *sql.DB }

func NewPostgresAddressRepository(db *sql.DB) *PostgresAddressRepository {
	return &PostgresAddressRepository{DB: db}
}

// Return all stored addresses, ordered by identifier.
func (s *PostgresAddressRepository) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	if s.DB == nil {
		return nil, errors.New("address repository: DB is nil")
	}

	query := `
	SELECT address_id, display_text
	FROM addresses
	ORDER BY address_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list addresses: query addresses table: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0, 64)
	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("list addresses: scan row: %w", err)
		}
		addresses = append(addresses, domain.NewStoredAddress(id, text))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: row iteration: %w", err)
	}

	return addresses, nil
}

// Return the addresses for the given ids, in the order the ids were given.
// Every id must resolve; a missing address is an error, not a silent gap.
func (s *PostgresAddressRepository) GetAddressesByIDs(ctx context.Context, ids []int64) ([]domain.Address, error) {
	if s.DB == nil {
		return nil, errors.New("address repository: DB is nil")
	}

	if len(ids) == 0 {
		return []domain.Address{}, nil
	}

	query := `
	SELECT address_id, display_text
	FROM addresses
	WHERE address_id = ANY($1::bigint[]);
	`
	rows, err := s.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get addresses by ids: query addresses table: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]domain.Address, len(ids))
	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("get addresses by ids: scan row: %w", err)
		}
		byID[id] = domain.NewStoredAddress(id, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get addresses by ids: row iteration: %w", err)
	}

	out := make([]domain.Address, 0, len(ids))
	for _, id := range ids {
		addr, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("get addresses by ids: no address with id %d", id)
		}
		out = append(out, addr)
	}

	return out, nil
}
