package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override settings.
// Nested keys use a double underscore: GUIDES_POSTGRES__HOST -> postgres.host.
const EnvPrefix = "GUIDES_"

// Load reads settings from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the settings to the given YAML file path.
func (s *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// PostgresDSN renders the lib/pq connection string.
func (s *Settings) PostgresDSN() string {
	p := s.Postgres
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=" + p.SSLMode
}
