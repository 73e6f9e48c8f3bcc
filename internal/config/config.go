package config

import (
	"blackjack-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	// Addr is the TCP listen address for player connections
	Addr string `yaml:"addr" envconfig:"addr"`
	// HTTPAddr is the listen address for the health, history and websocket endpoints
	// If empty, the HTTP server is not started
	HTTPAddr string `yaml:"httpAddr" envconfig:"http_addr"`
	// MaxSessions is the number of sessions served at once; 1 serves connections one after another
	MaxSessions int `yaml:"maxSessions" envconfig:"max_sessions"`
	// ReadTimeout is how many seconds to wait for an intent; 0 waits forever
	ReadTimeout             int    `yaml:"readTimeout" envconfig:"read_timeout"`
	Handshake               string `yaml:"handshake" envconfig:"handshake"`
	TerminateOnWriteFailure bool   `yaml:"terminateOnWriteFailure" envconfig:"terminate_on_write_failure"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	History struct {
		Driver         string `yaml:"driver" envconfig:"driver"`
		DSN            string `yaml:"dsn" envconfig:"dsn"`
		MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
		RecentLimit    int    `yaml:"recentLimit" envconfig:"recent_limit"`
	} `yaml:"history"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Addr = ":23716"
	c.MaxSessions = 1
	c.Handshake = "Connection Successful"
	c.Log.Level = "info"
	c.History.MigrationsPath = "./sql"
	c.History.RecentLimit = 100

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config.yaml is not an error, but a missing file named by BJ_CONFIG_FILE is
func Load() error {
	_, explicit := os.LookupEnv("BJ_CONFIG_FILE")
	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")

	cfg := DefaultConfig()
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
