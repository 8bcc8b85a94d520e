package vault

import (
	"context"
	"fmt"
)

// GetKeyValue reads a secret at {basePath}/{key} stored under the "value"
// field of a KV v2 document.
func (c *Client) GetKeyValue(key string) (string, error) {
	secretPath := c.path + "/" + key

	secret, err := c.client.Logical().ReadWithContext(context.Background(), secretPath)
	if err != nil {
		return "", err
	}

	if secret == nil {
		return "", fmt.Errorf("secret not found at path: %s", secretPath)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected secret data format at %s", secretPath)
	}

	value, ok := data["value"]
	if !ok {
		return "", fmt.Errorf("no value in secret at path %s", secretPath)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value at path %s is not a string", secretPath)
	}

	return strValue, nil
}

// SetKeyValue writes a secret at {basePath}/{key} under the "value" field.
func (c *Client) SetKeyValue(key, value string) error {
	secretPath := c.path + "/" + key

	secretData := map[string]interface{}{
		"data": map[string]interface{}{
			"value": value,
		},
	}

	_, err := c.client.Logical().WriteWithContext(context.Background(), secretPath, secretData)

	return err
}
