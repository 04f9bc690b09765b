package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	AllCuisines      = "All Cuisines"
	AllNeighborhoods = "All Neighborhoods"
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
	AverageRating  float64           `json:"average_rating,omitempty"`
	ReviewCount    int               `json:"review_count,omitempty"`
	Reviews        []Review          `json:"reviews,omitempty"`
	CreatedAt      Timestamp         `json:"createdAt"`
	UpdatedAt      Timestamp         `json:"updatedAt"`
}

type Review struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	Comments     string    `json:"comments"`
	CreatedAt    Timestamp `json:"createdAt"`
	UpdatedAt    Timestamp `json:"updatedAt"`
}

// NewReview is the body posted to create a review.
type NewReview struct {
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}

// FlexBool accepts JSON booleans as well as "true"/"false" strings.
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

// Timestamp accepts RFC 3339 strings and epoch milliseconds.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	if data[0] == '"' {
		return t.Time.UnmarshalJSON(data)
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// HoursRow is one line of the opening hours table. Day is empty for
// the second and later ranges of the same day.
type HoursRow struct {
	Day  string
	Time string
}

// HoursRows flattens the operating hours in week order. Keys that are not
// weekday names follow, sorted.
func (r *Restaurant) HoursRows() []HoursRow {
	if len(r.OperatingHours) == 0 {
		return nil
	}

	days := make([]string, 0, len(r.OperatingHours))
	seen := make(map[string]bool, len(weekdays))
	for _, day := range weekdays {
		if _, ok := r.OperatingHours[day]; ok {
			days = append(days, day)
			seen[day] = true
		}
	}
	var extra []string
	for day := range r.OperatingHours {
		if !seen[day] {
			extra = append(extra, day)
		}
	}
	sort.Strings(extra)
	days = append(days, extra...)

	var rows []HoursRow
	for _, day := range days {
		for i, span := range strings.Split(r.OperatingHours[day], ",") {
			row := HoursRow{Time: strings.TrimSpace(span)}
			if i == 0 {
				row.Day = day
			}
			rows = append(rows, row)
		}
	}
	return rows
}
