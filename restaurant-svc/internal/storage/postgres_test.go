package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"local-guides/restaurant-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

var restaurantRowColumns = []string{"id", "name", "neighborhood", "photograph", "address", "lat", "lng",
	"cuisine_type", "operating_hours", "is_favorite", "avg_rating", "review_count", "created_at", "updated_at"}

func restaurantRow(rows *sqlmock.Rows, id int, name string, favorite bool) *sqlmock.Rows {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return rows.AddRow(id, name, "Manhattan", "1", "123 Main St", 40.71, -73.99, "Asian",
		[]byte(`{"Monday":"5:30 pm - 11:00 pm"}`), favorite, 4.5, 2, now, now)
}

func TestPostgresRepository_ListRestaurants(t *testing.T) {
	repo, mock := setupRepository(t)

	rows := sqlmock.NewRows(restaurantRowColumns)
	restaurantRow(rows, 1, "Mission Chinese Food", false)
	restaurantRow(rows, 2, "Emily", true)
	mock.ExpectQuery("SELECT id, name, neighborhood").WillReturnRows(rows)

	restaurants, err := repo.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Mission Chinese Food", restaurants[0].Name)
	assert.Equal(t, "5:30 pm - 11:00 pm", restaurants[0].OperatingHours["Monday"])
	assert.True(t, bool(restaurants[1].IsFavorite))
	assert.Equal(t, 40.71, restaurants[1].LatLng.Lat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRestaurantsEmptyIsNotNil(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery("SELECT id, name, neighborhood").WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

	restaurants, err := repo.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
}

func TestPostgresRepository_GetRestaurantNotFound(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery("FROM restaurants WHERE id").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRestaurant(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresRepository_SetFavorite(t *testing.T) {
	repo, mock := setupRepository(t)

	rows := sqlmock.NewRows(restaurantRowColumns)
	restaurantRow(rows, 3, "Kang Ho Dong Baekjeong", true)
	mock.ExpectQuery("UPDATE restaurants").
		WithArgs(true, 3).
		WillReturnRows(rows)

	rest, err := repo.SetFavorite(context.Background(), 3, true)
	require.NoError(t, err)
	assert.True(t, bool(rest.IsFavorite))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpsertRestaurantDefaultsHours(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs(7, "Casa Enrique", "Queens", "", "5-48 49th Ave", 40.74, -73.95, "Mexican", []byte("{}"), false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	rest := &domain.Restaurant{
		ID: 7, Name: "Casa Enrique", Neighborhood: "Queens", Address: "5-48 49th Ave",
		LatLng: domain.LatLng{Lat: 40.74, Lng: -73.95}, CuisineType: "Mexican",
	}
	require.NoError(t, repo.UpsertRestaurant(context.Background(), rest))
	assert.Equal(t, now, rest.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertReview(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(1, "Steve", 4, "Tasty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	review := &domain.Review{RestaurantID: 1, Name: "Steve", Rating: 4, Comments: "Tasty"}
	require.NoError(t, repo.InsertReview(context.Background(), review))
	assert.Equal(t, 11, review.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRestaurantReviews(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "name", "rating", "comments", "created_at", "updated_at"}).
		AddRow(2, 5, "Ann", 5, "Great", now, now).
		AddRow(1, 5, "Bob", 3, "Fine", now, now)
	mock.ExpectQuery("WHERE restaurant_id = ").WithArgs(5).WillReturnRows(rows)

	reviews, err := repo.ListRestaurantReviews(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Ann", reviews[0].Name)
}

func TestPostgresRepository_DeleteReviewReturnsDeleted(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	mock.ExpectQuery("DELETE FROM reviews").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "rating", "comments", "created_at", "updated_at"}).
			AddRow(9, 2, "Eve", 1, "Cold", now, now))

	review, err := repo.DeleteReview(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 2, review.RestaurantID)
}

func TestPostgresRepository_QueryError(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery("FROM reviews").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListReviews(context.Background())
	assert.Error(t, err)
}
