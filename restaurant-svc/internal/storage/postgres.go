package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"local-guides/restaurant-svc/internal/domain"
)

//go:embed schema.sql
var schema string

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// Migrate creates the tables when they do not exist yet.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

const restaurantColumns = `id, name, neighborhood, photograph, address, lat, lng, cuisine_type,
	operating_hours, is_favorite, avg_rating, review_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var (
		rest     domain.Restaurant
		hours    []byte
		favorite bool
	)
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Neighborhood, &rest.Photograph, &rest.Address,
		&rest.LatLng.Lat, &rest.LatLng.Lng, &rest.CuisineType, &hours, &favorite,
		&rest.AverageRating, &rest.ReviewCount, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
		return nil, err
	}
	rest.IsFavorite = domain.FlexBool(favorite)
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &rest.OperatingHours); err != nil {
			return nil, fmt.Errorf("failed to decode operating hours of restaurant %d: %w", rest.ID, err)
		}
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
}

func (r *PostgresRepository) SetFavorite(ctx context.Context, id int, favorite bool) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx, `
		UPDATE restaurants
		SET is_favorite = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+restaurantColumns, favorite, id))
}

func (r *PostgresRepository) UpsertRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	hours, err := json.Marshal(rest.OperatingHours)
	if err != nil {
		return fmt.Errorf("failed to encode operating hours: %w", err)
	}
	if rest.OperatingHours == nil {
		hours = []byte("{}")
	}

	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (id, name, neighborhood, photograph, address, lat, lng, cuisine_type, operating_hours, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			neighborhood = EXCLUDED.neighborhood,
			photograph = EXCLUDED.photograph,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			cuisine_type = EXCLUDED.cuisine_type,
			operating_hours = EXCLUDED.operating_hours,
			is_favorite = EXCLUDED.is_favorite,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`, rest.ID, rest.Name, rest.Neighborhood, rest.Photograph, rest.Address,
		rest.LatLng.Lat, rest.LatLng.Lng, rest.CuisineType, hours, bool(rest.IsFavorite)).
		Scan(&rest.CreatedAt, &rest.UpdatedAt)
}

// SyncRestaurantIDs moves the id sequence past imported ids.
func (r *PostgresRepository) SyncRestaurantIDs(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		SELECT setval(pg_get_serial_sequence('restaurants', 'id'), COALESCE(MAX(id), 1))
		FROM restaurants`)
	return err
}

const reviewColumns = `id, restaurant_id, name, rating, comments, created_at, updated_at`

func scanReview(row rowScanner) (*domain.Review, error) {
	var rev domain.Review
	if err := row.Scan(&rev.ID, &rev.RestaurantID, &rev.Name, &rev.Rating, &rev.Comments,
		&rev.CreatedAt, &rev.UpdatedAt); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *PostgresRepository) queryReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return r.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		ORDER BY created_at DESC, id DESC`)
}

func (r *PostgresRepository) ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	return r.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC`, restaurantID)
}

func (r *PostgresRepository) GetReview(ctx context.Context, id int) (*domain.Review, error) {
	return scanReview(r.DB.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (restaurant_id, name, rating, comments)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, review.RestaurantID, review.Name, review.Rating, review.Comments).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *PostgresRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE reviews
		SET name = $1, rating = $2, comments = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING restaurant_id, created_at, updated_at
	`, review.Name, review.Rating, review.Comments, review.ID).
		Scan(&review.RestaurantID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id int) (*domain.Review, error) {
	return scanReview(r.DB.QueryRowContext(ctx,
		`DELETE FROM reviews WHERE id = $1 RETURNING `+reviewColumns, id))
}
