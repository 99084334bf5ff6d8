package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the configuration settings for the application.
type Config struct {
	Server   *ServerConfig   `yaml:"server"`
	LogLevel string          `yaml:"log_level"`
	Store    *StoreConfig    `yaml:"store"`
	Explorer *ExplorerConfig `yaml:"explorer"`
	Price    *PriceConfig    `yaml:"price"`
	Ledger   *LedgerConfig   `yaml:"ledger"`
}

// ServerConfig holds the configuration settings for the HTTP server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig holds the configuration settings for the local KV store.
type StoreConfig struct {
	Dir     string `yaml:"dir"`
	Backend string `yaml:"backend"`
}

// ExplorerConfig holds the configuration settings for the block-explorer API.
type ExplorerConfig struct {
	URL string `yaml:"url"`
	RPS int    `yaml:"rps"` //requests per second against the upstream API
}

// PriceConfig holds the configuration settings for the price feed.
type PriceConfig struct {
	URL             string `yaml:"url"`
	RefreshInterval int    `yaml:"refresh_interval"` //seconds
}

// LedgerConfig holds display defaults for the ledger view.
type LedgerConfig struct {
	PageSize int `yaml:"page_size"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Store != nil && c.Store.Backend == "" {
		c.Store.Backend = "goleveldb"
	}
	if c.Explorer != nil && c.Explorer.RPS <= 0 {
		c.Explorer.RPS = 4
	}
	if c.Price != nil && c.Price.RefreshInterval <= 0 {
		c.Price.RefreshInterval = 60
	}
	if c.Ledger == nil {
		c.Ledger = &LedgerConfig{}
	}
	if c.Ledger.PageSize <= 0 {
		c.Ledger.PageSize = 10
	}
}
