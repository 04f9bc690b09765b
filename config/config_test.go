package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":1337", cfg.Restaurant.Addr)
	assert.Equal(t, "http://localhost:1337", cfg.Client.RemoteURL)
	assert.Equal(t, "reviews", cfg.Kafka.Topic)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
}

func TestLoad_FileThenEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guides.yml")
	content := `
postgres:
  host: db.internal
  port: "6543"
client:
  remote_url: http://api.example.test
  timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("GUIDES_POSTGRES__HOST", "override.internal")
	t.Setenv("GUIDES_KAFKA__GROUP_ID", "test-group")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "override.internal", cfg.Postgres.Host)
	assert.Equal(t, "6543", cfg.Postgres.Port)
	assert.Equal(t, "test-group", cfg.Kafka.GroupID)
	assert.Equal(t, "http://api.example.test", cfg.Client.RemoteURL)
	assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "local_guides", cfg.Postgres.Name)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("postgres: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	cfg := Default()
	cfg.Gateway.SiteDir = "/srv/site"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/site", loaded.Gateway.SiteDir)
	assert.Equal(t, cfg.Client.Timeout, loaded.Client.Timeout)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Default()
	cfg.Postgres.Password = "secret"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=local_guides sslmode=disable",
		cfg.PostgresDSN())
}
