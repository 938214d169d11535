package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/juan-oclock/kansyl-assets/internal/paths"
)

// Defaults for a fresh checkout of the app repository.
const (
	DefaultAssetsDir    = "kansyl/Assets.xcassets"
	DefaultDownloadURL  = "https://storage.googleapis.com/flutterflow-io-6f20.appspot.com/projects/remind-me-byjwh5/assets/t06jm8bq9xol/app_icon.png"
	DefaultDownloadDest = "Resources/new_app_icon.png"
	DefaultMQTTTopic    = "kansyl/assets"
	DefaultMQTTClientID = "kansyl-assets"
)

// IconSet controls where icon sets are written.
type IconSet struct {
	AssetsDir string `json:"assets_dir,omitempty" env:"KANSYL_ASSETS_DIR"`
	Backup    bool   `json:"backup" env:"KANSYL_BACKUP"`
}

// Download holds the remote icon location and the local destination.
type Download struct {
	URL  string `json:"url,omitempty" env:"KANSYL_DOWNLOAD_URL"`
	Dest string `json:"dest,omitempty" env:"KANSYL_DOWNLOAD_DEST"`
}

// Apple holds the Sign in with Apple key parameters. Blank values are
// prompted for.
type Apple struct {
	TeamID   string `json:"team_id,omitempty" env:"KANSYL_APPLE_TEAM_ID"`
	ClientID string `json:"client_id,omitempty" env:"KANSYL_APPLE_CLIENT_ID"`
	KeyID    string `json:"key_id,omitempty" env:"KANSYL_APPLE_KEY_ID"`
	KeyPath  string `json:"key_path,omitempty" env:"KANSYL_APPLE_KEY_PATH"`
}

// MQTT configures run summaries published to a broker. An empty Broker
// disables publishing.
type MQTT struct {
	Broker   string `json:"broker,omitempty" env:"KANSYL_MQTT_BROKER"`
	Topic    string `json:"topic,omitempty" env:"KANSYL_MQTT_TOPIC"`
	ClientID string `json:"client_id,omitempty" env:"KANSYL_MQTT_CLIENT_ID"`
	Username string `json:"username,omitempty" env:"KANSYL_MQTT_USERNAME"`
	Password string `json:"password,omitempty" env:"KANSYL_MQTT_PASSWORD"`
	QoS      byte   `json:"qos,omitempty"`
	Retain   bool   `json:"retain,omitempty"`
}

// Webhook configures run summaries posted over HTTP. An empty URL
// disables it. Header values may reference $VARS.
type Webhook struct {
	URL     string            `json:"url,omitempty" env:"KANSYL_WEBHOOK_URL"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Config is the kansyl-assets.json file after defaults and environment
// overrides.
type Config struct {
	IconSet  IconSet  `json:"icon_set"`
	Download Download `json:"download"`
	Apple    Apple    `json:"apple"`
	History  bool     `json:"history" env:"KANSYL_HISTORY"`
	MQTT     MQTT     `json:"mqtt"`
	Webhook  Webhook  `json:"webhook"`
	// Fonts are tried before the system fonts.
	Fonts []string `json:"fonts,omitempty" env:"KANSYL_FONTS"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"-"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.IconSet.AssetsDir = DefaultAssetsDir
	c.IconSet.Backup = true
	c.Download.URL = DefaultDownloadURL
	c.Download.Dest = DefaultDownloadDest
	c.History = true
	c.MQTT.Topic = DefaultMQTTTopic
	c.MQTT.ClientID = DefaultMQTTClientID
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.setDefaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty, it must exist)
//  2. kansyl-assets.json next to the running binary
//  3. kansyl-assets.json in paths.DataDir()
//
// When none exists the defaults are used. KANSYL_* environment variables
// are applied last.
func Load(explicitPath string) (Config, error) {
	cfg, err := find(explicitPath)
	if err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

func find(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if paths.Exists(p) {
			return readConfig(p)
		}
	}

	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if paths.Exists(p) {
		return readConfig(p)
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}
