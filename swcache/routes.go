package swcache

import (
	"encoding/json"
	"net/url"
	"regexp"
	"time"
)

type Strategy string

const (
	CacheFirst           Strategy = "cache-first"
	NetworkFirst         Strategy = "network-first"
	StaleWhileRevalidate Strategy = "stale-while-revalidate"
)

// Cache names.
const (
	CacheImages    = "images"
	CacheStatic    = "static-resources"
	CacheFonts     = "google-fonts"
	CacheMaps      = "google-maps"
	CachePages     = "html-pages-cache"
	CachePrecache  = "precache"
	CacheHitHeader = "X-Guides-Cache"
)

type Expiration struct {
	MaxEntries int
	MaxAge     time.Duration
}

type Route struct {
	Name       string
	Pattern    *regexp.Regexp
	Strategy   Strategy
	Cache      string
	Expiration *Expiration
}

// DefaultRoutes returns the site's route table in registration order.
func DefaultRoutes() []Route {
	return []Route{
		{
			Name:       "images",
			Pattern:    regexp.MustCompile(`\.(?:png|gif|jpg|jpeg|svg|webp)$`),
			Strategy:   CacheFirst,
			Cache:      CacheImages,
			Expiration: &Expiration{MaxEntries: 100, MaxAge: 86400 * time.Second},
		},
		{
			Name:     "static",
			Pattern:  regexp.MustCompile(`\.(?:js|css|json)$`),
			Strategy: StaleWhileRevalidate,
			Cache:    CacheStatic,
		},
		{
			Name:     "fonts",
			Pattern:  regexp.MustCompile(`https://fonts.(?:googleapis|gstatic).com/(.*)`),
			Strategy: StaleWhileRevalidate,
			Cache:    CacheFonts,
		},
		{
			Name:     "maps",
			Pattern:  regexp.MustCompile(`https://maps.googleapis.com/maps/api/(.*)`),
			Strategy: NetworkFirst,
			Cache:    CacheMaps,
		},
		{
			Name:     "pages",
			Pattern:  regexp.MustCompile(`(.*).html(.*)`),
			Strategy: NetworkFirst,
			Cache:    CachePages,
		},
	}
}

// Match reports whether the route handles u. Cross-origin URLs only match
// when the pattern matches from the first character.
func (r Route) Match(u *url.URL, origin *url.URL) bool {
	href := u.String()
	loc := r.Pattern.FindStringIndex(href)
	if loc == nil {
		return false
	}
	if origin != nil && (u.Scheme != origin.Scheme || u.Host != origin.Host) {
		return loc[0] == 0
	}
	return true
}

type routeJSON struct {
	Name       string          `json:"name"`
	Pattern    string          `json:"pattern"`
	Strategy   Strategy        `json:"strategy"`
	Cache      string          `json:"cache"`
	Expiration *expirationJSON `json:"expiration,omitempty"`
}

type expirationJSON struct {
	MaxEntries    int   `json:"max_entries,omitempty"`
	MaxAgeSeconds int64 `json:"max_age_seconds,omitempty"`
}

func (r Route) MarshalJSON() ([]byte, error) {
	out := routeJSON{
		Name:     r.Name,
		Pattern:  r.Pattern.String(),
		Strategy: r.Strategy,
		Cache:    r.Cache,
	}
	if r.Expiration != nil {
		out.Expiration = &expirationJSON{
			MaxEntries:    r.Expiration.MaxEntries,
			MaxAgeSeconds: int64(r.Expiration.MaxAge / time.Second),
		}
	}
	return json.Marshal(out)
}

func (r *Route) UnmarshalJSON(data []byte) error {
	var in routeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	pattern, err := regexp.Compile(in.Pattern)
	if err != nil {
		return err
	}
	*r = Route{
		Name:     in.Name,
		Pattern:  pattern,
		Strategy: in.Strategy,
		Cache:    in.Cache,
	}
	if in.Expiration != nil {
		r.Expiration = &Expiration{
			MaxEntries: in.Expiration.MaxEntries,
			MaxAge:     time.Duration(in.Expiration.MaxAgeSeconds) * time.Second,
		}
	}
	return nil
}
