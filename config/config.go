package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RELAYPAGE_PAGING_SECRET.
const EnvPrefix = "RELAYPAGE"

var (
	config *Config
	path   string
	mu     sync.Mutex
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Paging  *Paging
	Logger  *Logger
	Server  *Server
	Tracer  *Tracer
	Dataset *Dataset
	Viper   *viper.Viper
}

// Init loads the configuration from configPath (or the search paths when
// empty) and keeps it as the current configuration.
func Init(configPath string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	path = configPath
	config = cfg
	v = cfg.Viper
	return cfg, nil
}

// GetConfig returns the current configuration, loading it from the search
// paths on first use.
func GetConfig() (*Config, error) {
	mu.Lock()
	cfg := config
	mu.Unlock()
	if cfg != nil {
		return cfg, nil
	}
	cfg, err := Init("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads the configuration from the file.
// A missing file is not an error when no explicit path is given: defaults
// and environment overrides still apply.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/relaypage")
		v.AddConfigPath("$HOME/.relaypage")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Paging:  getPagingConfig(v),
		Logger:  getLoggerConfig(v),
		Server:  getServerConfig(v),
		Tracer:  getTracerConfig(v),
		Dataset: getDatasetConfig(v),
		Viper:   v,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "relaypage")
	v.SetDefault("run_mode", "release")
	setPagingDefaults(v)
	setLoggerDefaults(v)
	setServerDefaults(v)
	setTracerDefaults(v)
	setDatasetDefaults(v)
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = newConfig
	return nil
}

// Watch watches the configuration file and calls callback with the
// reloaded configuration, or onError when reloading fails.
func Watch(callback func(*Config), onError func(error)) {
	mu.Lock()
	watched := v
	mu.Unlock()
	if watched == nil {
		return
	}

	watched.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		mu.Lock()
		cfg := config
		mu.Unlock()
		callback(cfg)
	})
	watched.WatchConfig()
}
