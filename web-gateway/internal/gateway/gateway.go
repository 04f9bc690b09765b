package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"local-guides/swcache"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	APIURL        string
	AnalyticsURL  string
	SiteDir       string
	PrecacheGlobs []string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	config.APIURL = strings.TrimSuffix(config.APIURL, "/")
	config.AnalyticsURL = strings.TrimSuffix(config.AnalyticsURL, "/")
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "web-gateway",
	}
	writeJSON(w, http.StatusOK, response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) proxyAPI(w http.ResponseWriter, r *http.Request) {
	g.ProxyRequest(w, r, g.config.APIURL)
}

func (g *Gateway) proxyAnalytics(w http.ResponseWriter, r *http.Request) {
	if g.config.AnalyticsURL == "" {
		http.Error(w, "analytics service not configured", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, g.config.AnalyticsURL)
}

// PrecacheManifest lists the pages and public assets the client should
// store for offline use.
func (g *Gateway) PrecacheManifest(w http.ResponseWriter, r *http.Request) {
	entries, err := BuildManifest(g.config.SiteDir, g.config.PrecacheGlobs)
	if err != nil {
		log.Printf("ERROR: Failed to build precache manifest: %v", err)
		http.Error(w, "failed to build precache manifest", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, entries)
}

func (g *Gateway) CachingPolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, swcache.DefaultRoutes())
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc(swcache.ManifestPath, g.PrecacheManifest).Methods("GET")
	r.HandleFunc("/caching-policy.json", g.CachingPolicy).Methods("GET")
	r.PathPrefix("/restaurants").HandlerFunc(g.proxyAPI)
	r.PathPrefix("/reviews").HandlerFunc(g.proxyAPI)
	r.PathPrefix("/analytics").HandlerFunc(g.proxyAnalytics)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(g.config.SiteDir)))
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
