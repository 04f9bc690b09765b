package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"local-guides/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Keys written by agg-svc.
const (
	leaderboardKey = "restaurants:top-rated"
	ratingKeyFmt   = "restaurant:%d:rating"
)

const DefaultLimit = 10

var ErrRestaurantNotFound = errors.New("restaurant not found")

type AnalyticsService struct {
	db  *sql.DB
	rdb redis.Cmdable
}

func NewAnalyticsService(db *sql.DB, rdb redis.Cmdable) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
	}
}

// TopRated reads the leaderboard, falling back to Postgres when it is empty
// or Redis is unavailable.
func (s *AnalyticsService) TopRated(ctx context.Context, limit int) ([]domain.RestaurantRating, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		log.Printf("Warning: failed to read leaderboard: %v", err)
	}
	if err != nil || len(members) == 0 {
		return s.topRatedFromDB(ctx, limit)
	}

	top := make([]domain.RestaurantRating, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(fmt.Sprint(member.Member))
		if err != nil {
			continue
		}
		rating := domain.RestaurantRating{RestaurantID: id, AverageRating: member.Score}
		err = s.db.QueryRowContext(ctx,
			`SELECT name, COALESCE(review_count, 0) FROM restaurants WHERE id = $1`, id).
			Scan(&rating.Name, &rating.ReviewCount)
		if errors.Is(err, sql.ErrNoRows) {
			// Restaurant was removed after it was ranked.
			continue
		}
		if err != nil {
			return nil, err
		}
		top = append(top, rating)
	}
	return top, nil
}

func (s *AnalyticsService) topRatedFromDB(ctx context.Context, limit int) ([]domain.RestaurantRating, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(avg_rating, 0), COALESCE(review_count, 0)
		FROM restaurants
		WHERE review_count > 0
		ORDER BY avg_rating DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []domain.RestaurantRating{}
	for rows.Next() {
		var r domain.RestaurantRating
		if err := rows.Scan(&r.RestaurantID, &r.Name, &r.AverageRating, &r.ReviewCount); err != nil {
			return nil, err
		}
		top = append(top, r)
	}
	return top, rows.Err()
}

func (s *AnalyticsService) RestaurantRating(ctx context.Context, restaurantID int) (*domain.RestaurantRating, error) {
	stats, err := s.rdb.HGetAll(ctx, fmt.Sprintf(ratingKeyFmt, restaurantID)).Result()
	if err == nil && len(stats) > 0 {
		avg, _ := strconv.ParseFloat(stats["avg_rating"], 64)
		count, _ := strconv.Atoi(stats["review_count"])
		return &domain.RestaurantRating{
			RestaurantID:  restaurantID,
			AverageRating: avg,
			ReviewCount:   count,
			LastUpdated:   stats["last_updated"],
		}, nil
	}
	if err != nil {
		log.Printf("Warning: failed to read rating snapshot %d: %v", restaurantID, err)
	}

	rating := domain.RestaurantRating{RestaurantID: restaurantID}
	err = s.db.QueryRowContext(ctx, `
		SELECT name, COALESCE(avg_rating, 0), COALESCE(review_count, 0)
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&rating.Name, &rating.AverageRating, &rating.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, restaurantID int) (domain.Distribution, error) {
	return s.distribution(ctx, `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
}

func (s *AnalyticsService) GlobalDistribution(ctx context.Context) (domain.Distribution, error) {
	return s.distribution(ctx, `
		SELECT rating, COUNT(*)
		FROM reviews
		GROUP BY rating
		ORDER BY rating
	`)
}

func (s *AnalyticsService) distribution(ctx context.Context, query string, args ...any) (domain.Distribution, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := domain.EmptyDistribution()
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
