package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"local-guides/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	// RestaurantsKey must match the list cache written by restaurant-svc.
	RestaurantsKey = "restaurants:all"
	LeaderboardKey = "restaurants:top-rated"

	snapshotTTL = 24 * time.Hour
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func RatingKey(restaurantID int) string {
	return fmt.Sprintf("restaurant:%d:rating", restaurantID)
}

// UpdateRestaurantRating recomputes the aggregates from the reviews table and
// mirrors them into Redis.
func (s *Store) UpdateRestaurantRating(ctx context.Context, restaurantID int) (*domain.RatingSnapshot, error) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE restaurants
		SET avg_rating = COALESCE((
			SELECT ROUND(AVG(rating::numeric), 2)
			FROM reviews
			WHERE restaurant_id = $1
		), 0),
		review_count = (
			SELECT COUNT(*)
			FROM reviews
			WHERE restaurant_id = $1
		),
		updated_at = NOW()
		WHERE id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}

	snapshot := domain.RatingSnapshot{RestaurantID: restaurantID}
	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(avg_rating, 0), COALESCE(review_count, 0)
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&snapshot.AverageRating, &snapshot.ReviewCount); err != nil {
		return nil, err
	}

	key := RatingKey(restaurantID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"avg_rating":   snapshot.AverageRating,
		"review_count": snapshot.ReviewCount,
		"last_updated": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, snapshotTTL)
	pipe.Del(ctx, RestaurantsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mirror rating: %w", err)
	}
	return &snapshot, nil
}

func (s *Store) UpdateLeaderboard(ctx context.Context, snapshot domain.RatingSnapshot) error {
	member := strconv.Itoa(snapshot.RestaurantID)
	if snapshot.ReviewCount == 0 {
		return s.rdb.ZRem(ctx, LeaderboardKey, member).Err()
	}
	return s.rdb.ZAdd(ctx, LeaderboardKey, redis.Z{
		Score:  snapshot.AverageRating,
		Member: member,
	}).Err()
}

// TopRated returns up to n restaurant ids, highest average rating first.
func (s *Store) TopRated(ctx context.Context, n int) ([]int, error) {
	members, err := s.rdb.ZRevRange(ctx, LeaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("invalid leaderboard member %q: %w", member, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) GetSnapshot(ctx context.Context, restaurantID int) (*domain.RatingSnapshot, error) {
	values, err := s.rdb.HGetAll(ctx, RatingKey(restaurantID)).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, redis.Nil
	}
	snapshot := domain.RatingSnapshot{RestaurantID: restaurantID}
	if snapshot.AverageRating, err = strconv.ParseFloat(values["avg_rating"], 64); err != nil {
		return nil, err
	}
	if snapshot.ReviewCount, err = strconv.Atoi(values["review_count"]); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
