package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the optional CLI configuration loaded from
// ~/.config/drawio/config.toml. Flags override config values, which
// override built-in defaults.
type Config struct {
	// Serve defaults for the serve command.
	Serve struct {
		Addr      string `toml:"addr"`
		Store     string `toml:"store"`
		Dir       string `toml:"dir"`
		RedisAddr string `toml:"redis_addr"`
		MongoURI  string `toml:"mongo_uri"`
	} `toml:"serve"`

	// Shapes is an extra shape library path applied before --shapes.
	Shapes string `toml:"shapes"`
}

// loadConfig reads the config file when present. A missing file is not
// an error; a malformed one is.
func loadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return &Config{}, nil
	}
	path := filepath.Join(dir, "config.toml")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills unset serve options from the config file.
func (o *serveOpts) applyConfig(cfg *Config, flagsChanged func(string) bool) {
	if !flagsChanged("addr") && cfg.Serve.Addr != "" {
		o.addr = cfg.Serve.Addr
	}
	if !flagsChanged("store") && cfg.Serve.Store != "" {
		o.backend = cfg.Serve.Store
	}
	if !flagsChanged("dir") && cfg.Serve.Dir != "" {
		o.dir = cfg.Serve.Dir
	}
	if !flagsChanged("redis-addr") && cfg.Serve.RedisAddr != "" {
		o.redisAddr = cfg.Serve.RedisAddr
	}
	if !flagsChanged("mongo-uri") && cfg.Serve.MongoURI != "" {
		o.mongoURI = cfg.Serve.MongoURI
	}
}
