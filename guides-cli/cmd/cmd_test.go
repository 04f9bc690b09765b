package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"local-guides/guides-cli/internal/domain"
	"local-guides/swcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	cfgFile string
	down    atomic.Bool
	api     *httptest.Server
	site    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{}

	env.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env.down.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		switch {
		case r.URL.Path == "/restaurants/":
			json.NewEncoder(w).Encode([]domain.Restaurant{
				{ID: 1, Name: "Mission Chinese Food", Neighborhood: "Manhattan", CuisineType: "Asian", Photograph: "1"},
				{ID: 2, Name: "Emily", Neighborhood: "Brooklyn", CuisineType: "Pizza"},
			})
		case r.URL.Path == "/restaurants/1/":
			json.NewEncoder(w).Encode(domain.Restaurant{
				ID: 1, Name: "Mission Chinese Food", Address: "171 E Broadway", Neighborhood: "Manhattan",
				CuisineType: "Asian", Photograph: "1",
				IsFavorite:     domain.FlexBool(r.URL.Query().Get("is_favorite") == "true"),
				OperatingHours: map[string]string{"Monday": "5:30 pm - 11:00 pm"},
			})
		case r.URL.Path == "/reviews/" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id":31,"restaurant_id":1,"name":"Ann","rating":5}`)
		case r.URL.Path == "/reviews/":
			io.WriteString(w, `[{"id":1,"restaurant_id":1,"name":"Steve","rating":4,"comments":"Great noodles"}]`)
		case r.URL.Path == "/reviews/1/" && r.Method == http.MethodDelete:
			io.WriteString(w, `{"id":1,"restaurant_id":1}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(env.api.Close)

	env.site = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env.down.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		switch r.URL.Path {
		case swcache.ManifestPath:
			io.WriteString(w, `[{"url":"public/css/styles.css","revision":"0123456789ab"}]`)
		case "/index.html", "/restaurant.html", "/public/css/styles.css", "/public/img/jpg/320w/1.jpg":
			fmt.Fprintf(w, "content of %s", r.URL.Path)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(env.site.Close)

	dir := t.TempDir()
	env.cfgFile = filepath.Join(dir, "guides.yml")
	cfg := fmt.Sprintf(`client:
  remote_url: %s
  site_url: %s
  local_db: %s
  timeout: 2s
`, env.api.URL, env.site.URL, filepath.Join(dir, "data", "local-guides-db.sqlite"))
	require.NoError(t, os.WriteFile(env.cfgFile, []byte(cfg), 0644))
	return env
}

func (env *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", env.cfgFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRestaurantsList_OnlineThenOffline(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "restaurants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Mission Chinese Food")
	assert.Contains(t, out, "./restaurant.html?id=2")

	env.down.Store(true)
	out, err = env.run(t, "restaurants", "list", "--cuisine", "Pizza")
	require.NoError(t, err)
	assert.Contains(t, out, "Emily")
	assert.NotContains(t, out, "Mission Chinese Food")

	out, err = env.run(t, "restaurants", "list", "--neighborhood", "Queens")
	require.NoError(t, err)
	assert.Contains(t, out, "No restaurants found.")
}

func TestNeighborhoodsAndCuisines(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "neighborhoods")
	require.NoError(t, err)
	assert.Equal(t, "All Neighborhoods\nManhattan\nBrooklyn\n", out)

	out, err = env.run(t, "cuisines")
	require.NoError(t, err)
	assert.Equal(t, "All Cuisines\nAsian\nPizza\n", out)
}

func TestRestaurantsShow(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "restaurants", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "171 E Broadway")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "5:30 pm - 11:00 pm")
	assert.Contains(t, out, "public/img/jpg/320w/1.jpg")
	assert.Contains(t, out, "Steve rated ★★★★☆")
	assert.Contains(t, out, "Great noodles")

	env.down.Store(true)
	out, err = env.run(t, "restaurants", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Great noodles")

	_, err = env.run(t, "restaurants", "show", "2")
	assert.Error(t, err)

	_, err = env.run(t, "restaurants", "show", "abc")
	assert.Error(t, err)
}

func TestFavorite(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "favorite", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Mission Chinese Food added to favorites.")

	env.down.Store(true)
	out, err = env.run(t, "unfavorite", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")

	// Already a favorite locally, but the server was not reached.
	out, err = env.run(t, "favorite", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not reach the server, Mission Chinese Food is unchanged.")
	assert.NotContains(t, out, "added to favorites")
}

func TestReviewsCommands(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "reviews", "list", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 Steve")

	out, err = env.run(t, "reviews", "add", "--restaurant", "1", "--name", "Ann", "--rating", "5", "--comments", "Lovely")
	require.NoError(t, err)
	assert.Contains(t, out, "Review #31 added.")

	_, err = env.run(t, "reviews", "add", "--restaurant", "1", "--name", "Ann", "--rating", "9")
	assert.Error(t, err)

	out, err = env.run(t, "reviews", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Review #1 deleted.")

	env.down.Store(true)
	out, err = env.run(t, "reviews", "add", "--restaurant", "1", "--name", "Ann", "--rating", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanks for your review, will be saved when online!")

	out, err = env.run(t, "reviews", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "could not be deleted")
}

func TestPrecacheAndFetch(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "precache")
	require.NoError(t, err)
	assert.Contains(t, out, "Precached 3 of 3 entries")

	out, err = env.run(t, "precache")
	require.NoError(t, err)
	assert.Contains(t, out, "Precached 2 of 3 entries")

	out, err = env.run(t, "fetch", "public/img/jpg/320w/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "content of /public/img/jpg/320w/1.jpg", out)

	env.down.Store(true)
	for _, target := range []string{"/", "restaurant.html", "public/img/jpg/320w/1.jpg", env.site.URL + "/public/css/styles.css"} {
		out, err = env.run(t, "fetch", target)
		require.NoError(t, err, target)
		assert.True(t, strings.HasPrefix(out, "content of "), target)
	}

	output := filepath.Join(t.TempDir(), "index.html")
	_, err = env.run(t, "fetch", "index.html", "-o", output)
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "content of /index.html", string(data))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guides.yml")
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(io.Discard)
		root.SetArgs(append([]string{"--config", path}, args...))
		err := root.Execute()
		return out.String(), err
	}

	_, err := run("config", "init")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "remote_url: http://localhost:1337")

	_, err = run("config", "init")
	assert.Error(t, err)

	_, err = run("config", "init", "--force")
	assert.NoError(t, err)
}

func TestMergeEntries(t *testing.T) {
	merged := mergeEntries(swcache.DefaultPrecache(), []swcache.PrecacheEntry{
		{URL: "index.html", Revision: "aaa"},
		{URL: "public/js/main.js", Revision: "bbb"},
	})
	assert.Equal(t, []swcache.PrecacheEntry{
		{URL: "index.html", Revision: "aaa"},
		{URL: "restaurant.html"},
		{URL: "public/js/main.js", Revision: "bbb"},
	}, merged)
}
