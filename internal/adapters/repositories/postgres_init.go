package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAddressesQuery := `
	CREATE TABLE IF NOT EXISTS addresses (
		address_id BIGINT PRIMARY KEY,
		display_text TEXT NOT NULL
	);
	`

	if _, err := tx.Exec(createAddressesQuery); err != nil {
		return fmt.Errorf("init schema: create addresses table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AddressSeed struct {
	AddressID   int64  `json:"address_id"`
	DisplayText string `json:"display_text"`
}

// Populate the database with address data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed addresses: read %q: %w", jsonPath, err)
	}

	var data []AddressSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed addresses: parse json: %w", err)
	}

	rows := make([]AddressSeed, 0, len(data))
	for i, item := range data {
		if item.AddressID <= 0 {
			return fmt.Errorf("seed addresses: invalid address_id at index %d: %d", i+1, item.AddressID)
		}

		text := strings.TrimSpace(item.DisplayText)
		if text == "" {
			return fmt.Errorf("seed addresses: item at index %d: display_text cannot be empty", i+1)
		}
		rows = append(rows, AddressSeed{AddressID: item.AddressID, DisplayText: text})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed addresses: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO addresses (address_id, display_text)
	VALUES ($1, $2)
	ON CONFLICT (address_id) DO UPDATE
	SET display_text = EXCLUDED.display_text;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed addresses: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.Exec(a.AddressID, a.DisplayText); err != nil {
			return fmt.Errorf("seed addresses: insert address_id=%d: %w", a.AddressID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed addresses: commit tx: %w", err)
	}

	return nil
}
