package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"local-guides/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

type ReviewService struct {
	reviews     ReviewRepository
	restaurants RestaurantRepository
	cache       RestaurantCache
	publisher   ReviewPublisher
}

func NewReviewService(reviews ReviewRepository, restaurants RestaurantRepository, cache RestaurantCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		reviews:     reviews,
		restaurants: restaurants,
		cache:       cache,
		publisher:   publisher,
	}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.ListReviews(ctx)
}

func (s *ReviewService) ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	return s.reviews.ListRestaurantReviews(ctx, restaurantID)
}

func (s *ReviewService) Get(ctx context.Context, id int) (*domain.Review, error) {
	review, err := s.reviews.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if err := validateReview(review); err != nil {
		return err
	}

	if _, err := s.restaurants.GetRestaurant(ctx, review.RestaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRestaurantNotFound
		}
		return fmt.Errorf("failed to check restaurant: %w", err)
	}

	if err := s.reviews.InsertReview(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	s.afterMutation(ctx, domain.EventReviewCreated, review)
	log.Printf("Successfully created review %d for restaurant %d", review.ID, review.RestaurantID)
	return nil
}

func (s *ReviewService) Update(ctx context.Context, review *domain.Review) error {
	existing, err := s.Get(ctx, review.ID)
	if err != nil {
		return err
	}
	review.RestaurantID = existing.RestaurantID

	if err := validateReview(review); err != nil {
		return err
	}

	if err := s.reviews.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to update review: %w", err)
	}

	s.afterMutation(ctx, domain.EventReviewUpdated, review)
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id int) (*domain.Review, error) {
	review, err := s.reviews.DeleteReview(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to delete review: %w", err)
	}

	s.afterMutation(ctx, domain.EventReviewDeleted, review)
	return review, nil
}

// afterMutation runs once the review is committed, so failures here are
// logged and never returned.
func (s *ReviewService) afterMutation(ctx context.Context, eventType string, review *domain.Review) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("Warning: failed to invalidate restaurant cache: %v", err)
		}
	}

	if s.publisher == nil {
		log.Printf("Warning: publisher is nil, skipping %s event", eventType)
		return
	}

	event := domain.ReviewEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		ReviewID:     review.ID,
		RestaurantID: review.RestaurantID,
		Rating:       review.Rating,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for review %d: %v", eventType, review.ID, err)
	}
}

func validateReview(review *domain.Review) error {
	review.Name = strings.TrimSpace(review.Name)
	if review.RestaurantID <= 0 || review.Name == "" || review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReview
	}
	return nil
}
