package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists finalized trips in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the trips table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS trips (
			id          BIGSERIAL PRIMARY KEY,
			destination TEXT        NOT NULL,
			days        INT         NOT NULL,
			people      INT         NOT NULL,
			budget      TEXT        NOT NULL,
			itinerary   JSONB       NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure trips schema: %w", err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, t *Trip) error {
	raw, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO trips (destination, days, people, budget, itinerary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		t.Destination, t.Days, t.People, t.Budget, raw,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// Recent returns the latest finalized trips, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Trip, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, destination, days, people, budget, itinerary, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent trips: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		var raw []byte
		if err := rows.Scan(&t.ID, &t.Destination, &t.Days, &t.People, &t.Budget, &raw, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		if err := json.Unmarshal(raw, &t.Itinerary); err != nil {
			return nil, fmt.Errorf("decode itinerary: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}
	return trips, nil
}
