package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"local-guides/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/analytics/top-rated", h.getTopRated).Methods("GET")
	r.HandleFunc("/analytics/rating-distribution", h.getGlobalDistribution).Methods("GET")
	r.HandleFunc("/analytics/restaurants/{restaurantId}", h.getRestaurantRating).Methods("GET")
	r.HandleFunc("/analytics/restaurants/{restaurantId}/rating-distribution", h.getRatingDistribution).Methods("GET")
}

func (h *Handler) getTopRated(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	data, err := h.Analytics.TopRated(r.Context(), limit)
	if err != nil {
		log.Printf("Error loading top rated restaurants: %v", err)
		http.Error(w, "failed to load top rated restaurants", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getRestaurantRating(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	rating, err := h.Analytics.RestaurantRating(r.Context(), restaurantID)
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error loading rating of restaurant %d: %v", restaurantID, err)
		http.Error(w, "failed to load rating", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	data, err := h.Analytics.RatingDistribution(r.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading distribution of restaurant %d: %v", restaurantID, err)
		http.Error(w, "failed to load rating distribution", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getGlobalDistribution(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.GlobalDistribution(r.Context())
	if err != nil {
		log.Printf("Error loading global distribution: %v", err)
		http.Error(w, "failed to load rating distribution", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func restaurantIDFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid restaurant id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
