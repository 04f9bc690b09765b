package domain

// RestaurantRating is the aggregate maintained by agg-svc for one restaurant.
type RestaurantRating struct {
	RestaurantID  int     `json:"restaurant_id"`
	Name          string  `json:"name,omitempty"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	LastUpdated   string  `json:"last_updated,omitempty"`
}

// Distribution counts reviews per star, keyed "1" through "5".
type Distribution map[string]int

func EmptyDistribution() Distribution {
	return Distribution{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
}
