package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type BikeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBikeRepo(db *dbpg.DB) *BikeRepository {
	return &BikeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BikeRepository) Create(ctx context.Context, b *domain.Bike) error {
	query := `INSERT INTO bikes (id, name, type, rate_per_hour, image_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Name, b.Type, b.RatePerHour, b.ImageURL, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bike: %w", err)
	}

	return nil
}

func (r *BikeRepository) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	query := `SELECT id, name, type, rate_per_hour, image_url, created_at, updated_at
			  FROM bikes
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get bike: %w", err)
	}

	var b domain.Bike
	if err = row.Scan(&b.ID, &b.Name, &b.Type, &b.RatePerHour, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBikeNotFound
		}
		return nil, fmt.Errorf("scan bike: %w", err)
	}

	return &b, nil
}

func (r *BikeRepository) Update(ctx context.Context, b *domain.Bike) error {
	query := `UPDATE bikes
			  SET name = $2, type = $3, rate_per_hour = $4, image_url = $5, updated_at = $6
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Name, b.Type, b.RatePerHour, b.ImageURL, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bike: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bike rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBikeNotFound
	}

	return nil
}

func (r *BikeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bikes WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete bike: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bike rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBikeNotFound
	}

	return nil
}

func (r *BikeRepository) List(ctx context.Context, bikeType domain.BikeType) ([]*domain.Bike, error) {
	query := `SELECT id, name, type, rate_per_hour, image_url, created_at, updated_at
			  FROM bikes
			  WHERE ($1 = '' OR type = $1)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(bikeType))
	if err != nil {
		return nil, fmt.Errorf("list bikes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bike
	for rows.Next() {
		var b domain.Bike
		if err = rows.Scan(&b.ID, &b.Name, &b.Type, &b.RatePerHour, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bike: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
