package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"local-guides/restaurant-svc/internal/domain"
	"local-guides/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Reviews     service.ReviewServiceInterface
}

func NewHandler(restaurants service.RestaurantServiceInterface, reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Restaurants: restaurants, Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.updateFavorite).Methods("PUT")
	r.HandleFunc("/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/reviews", h.getReviews).Methods("GET")
	r.HandleFunc("/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/reviews/{id}", h.getReview).Methods("GET")
	r.HandleFunc("/reviews/{id}", h.updateReview).Methods("PUT")
	r.HandleFunc("/reviews/{id}", h.deleteReview).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

// updateFavorite handles PUT /restaurants/{id}?is_favorite=true|false.
func (h *Handler) updateFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	favorite, err := strconv.ParseBool(r.URL.Query().Get("is_favorite"))
	if err != nil {
		writeError(w, service.ErrInvalidFavorite)
		return
	}

	rest, err := h.Restaurants.SetFavorite(r.Context(), id, favorite)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	png, err := h.Restaurants.QRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// getReviews lists every review, or only one restaurant's when
// restaurant_id is given.
func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	var (
		reviews []domain.Review
		err     error
	)
	if raw := r.URL.Query().Get("restaurant_id"); raw != "" {
		restaurantID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			http.Error(w, "restaurant_id must be numeric", http.StatusBadRequest)
			return
		}
		reviews, err = h.Reviews.ListByRestaurant(r.Context(), restaurantID)
	} else {
		reviews, err = h.Reviews.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	review, err := h.Reviews.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// createReview decodes the body as JSON whatever the Content-Type; the
// site posts reviews as text/plain.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.ID = 0

	if err := h.Reviews.Create(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.ID = id

	if err := h.Reviews.Update(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	review, err := h.Reviews.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidReview), errors.Is(err, service.ErrInvalidFavorite):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound), errors.Is(err, service.ErrReviewNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
