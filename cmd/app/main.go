package main

import (
	"errors"
	"log"

	"github.com/apocaliss92/reolink-osd-sync/config"
	"github.com/apocaliss92/reolink-osd-sync/internal/app"
	"github.com/apocaliss92/reolink-osd-sync/pkg/secrets"
	vault "github.com/apocaliss92/reolink-osd-sync/pkg/secrets/vault"
)

// Sentinel errors for configuration.
var (
	ErrSecretStoreAddressNotConfigured = errors.New("secret store address not configured")
	ErrSecretStoreTokenNotConfigured   = errors.New("secret store token not configured")
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	secretsClient, secretsErr := handleSecretsConfig(cfg)
	if secretsErr == nil {
		app.SecretStore = secretsClient
	}

	runAppFunc(cfg)
}

func handleSecretsConfig(cfg *config.Config) (secrets.Storager, error) {
	if cfg.Secrets.Address == "" {
		return nil, ErrSecretStoreAddressNotConfigured
	}

	if cfg.Secrets.Token == "" {
		return nil, ErrSecretStoreTokenNotConfigured
	}

	secretsClient, err := vault.NewClient(&cfg.Secrets)
	if err != nil {
		log.Printf("Failed to connect to secret store: %v", err)

		return nil, err
	}

	log.Printf("Connected to secret store at: %s", cfg.Secrets.Address)

	return secretsClient, nil
}
