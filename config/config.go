package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var ServiceConfig *Config

type (
	// Config -.
	Config struct {
		App     `yaml:"app"`
		HTTP    `yaml:"http"`
		Log     `yaml:"logger"`
		Auth    `yaml:"auth"`
		Secrets `yaml:"secrets"`
		Sync    `yaml:"sync"`
		Cameras []Camera `yaml:"cameras"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Auth -.
	Auth struct {
		Disabled      bool          `yaml:"disabled" env:"AUTH_DISABLED"`
		AdminUsername string        `yaml:"adminUsername" env:"AUTH_ADMIN_USERNAME"`
		AdminPassword string        `yaml:"adminPassword" env:"AUTH_ADMIN_PASSWORD"`
		JWTKey        string        `env-required:"true" yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		JWTExpiration time.Duration `yaml:"jwtExpiration" env:"AUTH_JWT_EXPIRATION"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// Sync holds the overlay synchronization cadence settings.
	Sync struct {
		Interval          time.Duration `yaml:"interval" env:"SYNC_INTERVAL"`
		KeepaliveInterval time.Duration `yaml:"keepalive_interval" env:"SYNC_KEEPALIVE_INTERVAL"`
		RequestTimeout    time.Duration `yaml:"request_timeout" env:"SYNC_REQUEST_TIMEOUT"`
		ClipCacheTTL      time.Duration `yaml:"clip_cache_ttl" env:"SYNC_CLIP_CACHE_TTL"`
		BatteryCacheTTL   time.Duration `yaml:"battery_cache_ttl" env:"SYNC_BATTERY_CACHE_TTL"`
	}

	// Camera describes one managed camera. Password may be left empty and
	// resolved from the secret store at startup.
	Camera struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Host     string `yaml:"host"`
		HTTPPort int    `yaml:"http_port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Channel  int    `yaml:"channel"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "reolink-osd-sync",
			Repo:    "apocaliss92/reolink-osd-sync",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			AdminUsername: "standalone",
			AdminPassword: "change-me",
			JWTKey:        "your_secret_jwt_key",
			JWTExpiration: 24 * time.Hour,
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/reolink-osd-sync",
		},
		Sync: Sync{
			Interval:          10 * time.Second,
			KeepaliveInterval: 5 * time.Minute,
			RequestTimeout:    10 * time.Second,
			ClipCacheTTL:      30 * time.Second,
			BatteryCacheTTL:   30 * time.Second,
		},
		Cameras: []Camera{},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	ServiceConfig = defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	// Determine the config path
	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, ServiceConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(ServiceConfig); err != nil {
		return nil, err
	}

	return ServiceConfig, nil
}
