package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter serves the read-only analytics routes.
func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	})
	return c.Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Analytics Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
