package service

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidReview      = errors.New("review requires restaurant_id, name and a rating between 1 and 5")
	ErrInvalidFavorite    = errors.New("is_favorite must be true or false")
)
