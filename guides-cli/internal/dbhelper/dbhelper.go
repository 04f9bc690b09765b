package dbhelper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"local-guides/guides-cli/internal/domain"
)

const DefaultRemoteURL = "http://localhost:1337"

// Client reads from the remote API and falls back to the local mirror.
// Every successful remote read replaces the matching local store.
type Client struct {
	BaseURL string
	HTTP    HTTPClient
	Local   LocalStore
	Logger  *log.Logger
}

func New(baseURL string, httpClient HTTPClient, local LocalStore) *Client {
	if baseURL == "" {
		baseURL = DefaultRemoteURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    httpClient,
		Local:   local,
	}
}

// RemoteURL returns <base>/<collection>/[<parameter>/][?<query>].
func (c *Client) RemoteURL(collection, parameter, query string) string {
	u := fmt.Sprintf("%s/%s/", c.BaseURL, collection)
	if parameter != "" {
		u += parameter + "/"
	}
	if query != "" {
		u += "?" + query
	}
	return u
}

func (c *Client) FetchRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var remote []domain.Restaurant
	if c.call(ctx, http.MethodGet, c.RemoteURL("restaurants", "", ""), nil, &remote, http.StatusOK) {
		if err := c.Local.SaveRestaurants(ctx, remote...); err != nil {
			return nil, err
		}
		return remote, nil
	}
	return c.Local.LoadRestaurants(ctx)
}

// FetchRestaurant returns nil, nil when the restaurant is neither online
// nor mirrored.
func (c *Client) FetchRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var remote domain.Restaurant
	if c.call(ctx, http.MethodGet, c.RemoteURL("restaurants", strconv.Itoa(id), ""), nil, &remote, http.StatusOK) {
		if err := c.Local.SaveRestaurants(ctx, remote); err != nil {
			return nil, err
		}
		return &remote, nil
	}
	return c.Local.LoadRestaurant(ctx, id)
}

// FetchRestaurantsByCuisineAndNeighborhood filters all restaurants.
// AllCuisines and AllNeighborhoods disable the matching filter.
func (c *Client) FetchRestaurantsByCuisineAndNeighborhood(ctx context.Context, cuisine, neighborhood string) ([]domain.Restaurant, error) {
	restaurants, err := c.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if cuisine != domain.AllCuisines && r.CuisineType != cuisine {
			continue
		}
		if neighborhood != domain.AllNeighborhoods && r.Neighborhood != neighborhood {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func (c *Client) FetchNeighborhoods(ctx context.Context) ([]string, error) {
	return c.uniqueField(ctx, func(r domain.Restaurant) string { return r.Neighborhood })
}

func (c *Client) FetchCuisines(ctx context.Context) ([]string, error) {
	return c.uniqueField(ctx, func(r domain.Restaurant) string { return r.CuisineType })
}

// uniqueField keeps the first-seen order of the values.
func (c *Client) uniqueField(ctx context.Context, field func(domain.Restaurant) string) ([]string, error) {
	restaurants, err := c.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, ErrNoRestaurants
	}

	seen := make(map[string]bool, len(restaurants))
	var values []string
	for _, r := range restaurants {
		v := field(r)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

func (c *Client) FavoriteRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return c.UpdateFavoriteStatus(ctx, id, true)
}

func (c *Client) UnfavoriteRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return c.UpdateFavoriteStatus(ctx, id, false)
}

// UpdateFavoriteStatus returns the stored record when the remote update fails.
func (c *Client) UpdateFavoriteStatus(ctx context.Context, id int, favorite bool) (*domain.Restaurant, error) {
	restaurant, _, err := c.SetFavorite(ctx, id, favorite)
	return restaurant, err
}

// SetFavorite is UpdateFavoriteStatus that also reports whether the server
// accepted the change.
func (c *Client) SetFavorite(ctx context.Context, id int, favorite bool) (*domain.Restaurant, bool, error) {
	target := c.RemoteURL("restaurants", strconv.Itoa(id), "is_favorite="+strconv.FormatBool(favorite))

	var remote domain.Restaurant
	if c.call(ctx, http.MethodPut, target, nil, &remote, http.StatusOK) {
		if err := c.Local.SaveRestaurants(ctx, remote); err != nil {
			return nil, false, err
		}
		return &remote, true, nil
	}
	restaurant, err := c.Local.LoadRestaurant(ctx, id)
	return restaurant, false, err
}

func (c *Client) FetchReviews(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	target := c.RemoteURL("reviews", "", "restaurant_id="+strconv.Itoa(restaurantID))

	var remote []domain.Review
	if c.call(ctx, http.MethodGet, target, nil, &remote, http.StatusOK) {
		if err := c.Local.SaveReviews(ctx, remote...); err != nil {
			return nil, err
		}
		return remote, nil
	}
	return c.Local.LoadReviews(ctx, restaurantID)
}

// AddReview posts the review. Nothing is queued offline: any failure yields
// ErrSavedWhenOnline.
func (c *Client) AddReview(ctx context.Context, input domain.NewReview) (*domain.Review, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	var created domain.Review
	if !c.call(ctx, http.MethodPost, c.RemoteURL("reviews", "", ""), body, &created, http.StatusCreated) {
		return nil, ErrSavedWhenOnline
	}
	if err := c.Local.SaveReviews(ctx, created); err != nil {
		c.logf("Warning: failed to mirror review %d: %v", created.ID, err)
		return nil, ErrSavedWhenOnline
	}
	return &created, nil
}

// DeleteReview returns nil, nil when the remote delete fails.
func (c *Client) DeleteReview(ctx context.Context, id int) (*domain.Review, error) {
	var deleted domain.Review
	if !c.call(ctx, http.MethodDelete, c.RemoteURL("reviews", strconv.Itoa(id), ""), nil, &deleted, http.StatusOK, http.StatusCreated) {
		return nil, nil
	}
	if err := c.Local.DeleteReviews(ctx, deleted.ID); err != nil {
		c.logf("Warning: failed to drop review %d locally: %v", deleted.ID, err)
		return nil, nil
	}
	return &deleted, nil
}

// call performs the request and decodes the body into out. It reports
// false on transport errors, unexpected statuses and undecodable or null bodies.
func (c *Client) call(ctx context.Context, method, target string, body []byte, out interface{}, want ...int) bool {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		c.logf("ERROR: Failed to create request: %v", err)
		return false
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "text/plain")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logf("Warning: %s %s failed: %v", method, target, err)
		return false
	}
	defer resp.Body.Close()

	if !statusIn(resp.StatusCode, want) {
		c.logf("Warning: %s %s returned %d", method, target, resp.StatusCode)
		return false
	}
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logf("Warning: %s %s returned an invalid body: %v", method, target, err)
		return false
	}
	if bytes.Equal(raw, []byte("null")) {
		c.logf("Warning: %s %s returned an empty body", method, target)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logf("Warning: %s %s returned an invalid body: %v", method, target, err)
		return false
	}
	return true
}

func statusIn(status int, want []int) bool {
	for _, w := range want {
		if status == w {
			return true
		}
	}
	return false
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
