// Package vault implements secrets.Storager on HashiCorp Vault KV v2.
package vault

import (
	"github.com/hashicorp/vault/api"

	"github.com/apocaliss92/reolink-osd-sync/config"
	"github.com/apocaliss92/reolink-osd-sync/pkg/secrets"
)

// DefaultSecretPath is the base path for secrets if not configured.
const DefaultSecretPath = "secret/data/reolink-osd-sync"

// Client implements the secrets.Storager interface for HashiCorp Vault.
type Client struct {
	client *api.Client
	path   string
}

var _ secrets.Storager = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom base path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient injects a pre-configured Vault API client (useful for testing).
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Vault-backed Client. Without a WithClient option, an
// API client is built from the config.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		client.SetToken(cfg.Token)
		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}
