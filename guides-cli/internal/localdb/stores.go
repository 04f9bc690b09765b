package localdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"local-guides/guides-cli/internal/domain"
)

// SaveRestaurants replaces the whole restaurants store with rs.
func (d *DB) SaveRestaurants(ctx context.Context, rs ...domain.Restaurant) error {
	return d.replace(ctx, RestaurantsStore, func(tx *sql.Tx) error {
		for _, r := range rs {
			body, err := json.Marshal(r)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO restaurants (id, body) VALUES (?, ?)`, r.ID, string(body)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *DB) LoadRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := d.QueryContext(ctx, `SELECT body FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var r domain.Restaurant
		if err := scanBody(rows, &r); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// LoadRestaurant returns nil, nil when the restaurant is not stored.
func (d *DB) LoadRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var r domain.Restaurant
	err := scanBody(d.QueryRowContext(ctx, `SELECT body FROM restaurants WHERE id = ?`, id), &r)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveReviews replaces the whole reviews store with rs.
func (d *DB) SaveReviews(ctx context.Context, rs ...domain.Review) error {
	return d.replace(ctx, ReviewsStore, func(tx *sql.Tx) error {
		for _, r := range rs {
			body, err := json.Marshal(r)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO reviews (id, restaurant_id, body) VALUES (?, ?, ?)`,
				r.ID, r.RestaurantID, string(body)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadReviews reads one restaurant's reviews through the by_restaurant_id index.
func (d *DB) LoadReviews(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	rows, err := d.QueryContext(ctx, `SELECT body FROM reviews INDEXED BY by_restaurant_id WHERE restaurant_id = ? ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("loading reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		if err := scanBody(rows, &r); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (d *DB) DeleteReviews(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	if _, err := d.ExecContext(ctx, `DELETE FROM reviews WHERE id IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("deleting reviews: %w", err)
	}
	return nil
}

// replace clears store and runs put in the same transaction.
func (d *DB) replace(ctx context.Context, store string, put func(tx *sql.Tx) error) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving %s: %w", store, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+store); err != nil {
		return fmt.Errorf("clearing %s: %w", store, err)
	}
	if err := put(tx); err != nil {
		return fmt.Errorf("saving %s: %w", store, err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBody(row rowScanner, v interface{}) error {
	var body string
	if err := row.Scan(&body); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("decoding stored record: %w", err)
	}
	return nil
}
