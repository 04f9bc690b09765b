package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "local-guides/restaurant-svc/internal/api/http"
	"local-guides/restaurant-svc/internal/domain"
	"local-guides/restaurant-svc/internal/mocks"
	"local-guides/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(restaurants *mocks.RestaurantServiceInterface, reviews *mocks.ReviewServiceInterface) http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(restaurants, reviews))
}

func TestHandler_getRestaurants(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	restaurants.On("List", mock.Anything).Return([]domain.Restaurant{
		{ID: 1, Name: "Mission Chinese Food"},
		{ID: 2, Name: "Emily"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body []domain.Restaurant
	json.NewDecoder(recorder.Body).Decode(&body)
	assert.Len(t, body, 2)
}

func TestHandler_getRestaurant(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "found with trailing slash",
			path: "/restaurants/5/",
			prepareMocks: func() {
				restaurants.On("Get", mock.Anything, 5).
					Return(&domain.Restaurant{ID: 5, Name: "Hometown BBQ"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"name":"Hometown BBQ"`,
		},
		{
			name: "not found",
			path: "/restaurants/99",
			prepareMocks: func() {
				restaurants.On("Get", mock.Anything, 99).
					Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non numeric id",
			path:         "/restaurants/abc",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_updateFavorite(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
	}{
		{
			name: "favorite",
			path: "/restaurants/3/?is_favorite=true",
			prepareMocks: func() {
				restaurants.On("SetFavorite", mock.Anything, 3, true).
					Return(&domain.Restaurant{ID: 3, IsFavorite: true}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unfavorite",
			path: "/restaurants/3?is_favorite=false",
			prepareMocks: func() {
				restaurants.On("SetFavorite", mock.Anything, 3, false).
					Return(&domain.Restaurant{ID: 3}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing flag",
			path:         "/restaurants/3",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown restaurant",
			path: "/restaurants/404?is_favorite=true",
			prepareMocks: func() {
				restaurants.On("SetFavorite", mock.Anything, 404, true).
					Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodPut, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getRestaurantQRCode(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	restaurants.On("QRCode", mock.Anything, 1).Return([]byte("\x89PNG"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurants/1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_getReviews(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "by restaurant",
			path: "/reviews/?restaurant_id=2",
			prepareMocks: func() {
				reviews.On("ListByRestaurant", mock.Anything, 2).
					Return([]domain.Review{{ID: 1, RestaurantID: 2}, {ID: 2, RestaurantID: 2}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "all",
			path: "/reviews",
			prepareMocks: func() {
				reviews.On("List", mock.Anything).
					Return([]domain.Review{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  3,
		},
		{
			name:         "bad restaurant id",
			path:         "/reviews?restaurant_id=x",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			path: "/reviews",
			prepareMocks: func() {
				reviews.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedLen > 0 {
				var body []domain.Review
				json.NewDecoder(recorder.Body).Decode(&body)
				assert.Len(t, body, testCase.expectedLen)
			}
		})
	}
}

func TestHandler_createReview(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	tests := []struct {
		name         string
		payload      string
		contentType  string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:        "created from text/plain body",
			payload:     `{"restaurant_id":1,"name":"Steve","rating":4,"comments":"Great!"}`,
			contentType: "text/plain",
			prepareMocks: func() {
				reviews.On("Create", mock.Anything, mock.Anything).
					Return(func(_ context.Context, review *domain.Review) error {
						review.ID = 31
						return nil
					}).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":31`,
		},
		{
			name:         "invalid json",
			payload:      `bad json`,
			contentType:  "application/json",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "invalid review",
			payload:     `{"restaurant_id":1,"name":"","rating":9}`,
			contentType: "application/json",
			prepareMocks: func() {
				reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrInvalidReview).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "unknown restaurant",
			payload:     `{"restaurant_id":77,"name":"Ann","rating":3}`,
			contentType: "application/json",
			prepareMocks: func() {
				reviews.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodPost, "/reviews/", bytes.NewBufferString(testCase.payload))
			req.Header.Set("Content-Type", testCase.contentType)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_updateReview(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	reviews.On("Update", mock.Anything, mock.MatchedBy(func(review *domain.Review) bool {
		return review.ID == 8 && review.Rating == 2
	})).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/reviews/8", bytes.NewBufferString(`{"name":"Ann","rating":2}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_deleteReview(t *testing.T) {
	restaurants := mocks.NewRestaurantServiceInterface(t)
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(restaurants, reviews)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
	}{
		{
			name: "deleted",
			path: "/reviews/4/",
			prepareMocks: func() {
				reviews.On("Delete", mock.Anything, 4).
					Return(&domain.Review{ID: 4, RestaurantID: 1}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing",
			path: "/reviews/5",
			prepareMocks: func() {
				reviews.On("Delete", mock.Anything, 5).
					Return(nil, service.ErrReviewNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodDelete, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(mocks.NewRestaurantServiceInterface(t), mocks.NewReviewServiceInterface(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	json.NewDecoder(recorder.Body).Decode(&body)
	assert.Equal(t, "restaurant-svc", body["service"])
}
