package domain

import "time"

const (
	EventReviewCreated = "review_created"
	EventReviewUpdated = "review_updated"
	EventReviewDeleted = "review_deleted"
)

// ReviewEvent is published by restaurant-svc on the reviews topic.
type ReviewEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	ReviewID     int       `json:"review_id"`
	RestaurantID int       `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e ReviewEvent) Known() bool {
	switch e.Type {
	case EventReviewCreated, EventReviewUpdated, EventReviewDeleted:
		return true
	}
	return false
}

type RatingSnapshot struct {
	RestaurantID  int     `json:"restaurant_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
