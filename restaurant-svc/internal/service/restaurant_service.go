package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"local-guides/restaurant-svc/internal/domain"
)

type RestaurantService struct {
	restaurants RestaurantRepository
	reviews     ReviewRepository
	cache       RestaurantCache
	qr          QRGenerator
}

func NewRestaurantService(restaurants RestaurantRepository, reviews ReviewRepository, cache RestaurantCache, qr QRGenerator) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		reviews:     reviews,
		cache:       cache,
		qr:          qr,
	}
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetRestaurants(ctx)
		if err != nil {
			log.Printf("Warning: failed to read restaurant cache: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	restaurants, err := s.restaurants.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurants(ctx, restaurants); err != nil {
			log.Printf("Warning: failed to cache restaurants: %v", err)
		}
	}
	return restaurants, nil
}

// Get returns the restaurant with its reviews embedded.
func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	reviews, err := s.reviews.ListRestaurantReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant reviews: %w", err)
	}
	restaurant.Reviews = reviews
	return restaurant, nil
}

func (s *RestaurantService) SetFavorite(ctx context.Context, id int, favorite bool) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.SetFavorite(ctx, id, favorite)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to update favorite status: %w", err)
	}
	s.invalidate(ctx)
	return restaurant, nil
}

// Import upserts restaurants by id. It is used to seed the database.
func (s *RestaurantService) Import(ctx context.Context, restaurants []domain.Restaurant) error {
	for i := range restaurants {
		if err := s.restaurants.UpsertRestaurant(ctx, &restaurants[i]); err != nil {
			return fmt.Errorf("failed to import restaurant %d: %w", restaurants[i].ID, err)
		}
	}
	if err := s.restaurants.SyncRestaurantIDs(ctx); err != nil {
		return fmt.Errorf("failed to sync restaurant ids: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *RestaurantService) QRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.restaurants.GetRestaurant(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if s.qr == nil {
		return nil, errors.New("qr code generation is disabled")
	}
	return s.qr.Generate(id)
}

func (s *RestaurantService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate restaurant cache: %v", err)
	}
}
