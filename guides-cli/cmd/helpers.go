package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"local-guides/config"
	"local-guides/guides-cli/internal/dbhelper"
	"local-guides/guides-cli/internal/localdb"
	"local-guides/swcache"
)

// app holds what a command needs to talk to the remote API and the mirror.
type app struct {
	settings  *config.Settings
	local     *localdb.DB
	transport *swcache.Transport
	http      *http.Client
	client    *dbhelper.Client
	siteURL   *url.URL
}

func openApp(opts *rootOptions) (*app, error) {
	settings, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `guides config init` to create a config file", err)
	}

	siteURL, err := url.Parse(settings.Client.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site url %q: %w", settings.Client.SiteURL, err)
	}

	local, err := localdb.Open(settings.Client.LocalDB)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", settings.Client.LocalDB, err)
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(os.Stderr, "guides: ", log.LstdFlags)
	}

	transport := swcache.New(local, http.DefaultTransport)
	transport.Origin = siteURL
	transport.Logger = logger

	httpClient := &http.Client{Transport: transport, Timeout: settings.Client.Timeout}

	client := dbhelper.New(settings.Client.RemoteURL, httpClient, local)
	client.Logger = logger

	return &app{
		settings:  settings,
		local:     local,
		transport: transport,
		http:      httpClient,
		client:    client,
		siteURL:   siteURL,
	}, nil
}

// Close waits for background revalidations before closing the mirror.
func (a *app) Close() error {
	a.transport.Wait()
	return a.local.Close()
}

func parseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", what, raw)
	}
	return id, nil
}
