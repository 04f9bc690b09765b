package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Restaurant struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Neighborhood   string            `json:"neighborhood"`
	Photograph     string            `json:"photograph,omitempty"`
	Address        string            `json:"address"`
	LatLng         LatLng            `json:"latlng"`
	CuisineType    string            `json:"cuisine_type"`
	OperatingHours map[string]string `json:"operating_hours,omitempty"`
	IsFavorite     FlexBool          `json:"is_favorite"`
	AverageRating  float64           `json:"average_rating"`
	ReviewCount    int               `json:"review_count"`
	Reviews        []Review          `json:"reviews,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type Review struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	Comments     string    `json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	EventReviewCreated = "review_created"
	EventReviewUpdated = "review_updated"
	EventReviewDeleted = "review_deleted"
)

// ReviewEvent is published on every review mutation.
type ReviewEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	ReviewID     int       `json:"review_id"`
	RestaurantID int       `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

// FlexBool decodes both JSON booleans and the "true"/"false" strings
// older datasets carry for is_favorite.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %s: %w", data, err)
	}
	*b = FlexBool(v)
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
