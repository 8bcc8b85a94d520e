// Package secrets defines the credential storage contract. Camera
// passwords never live in the config file when a secret store is
// configured.
package secrets

// Storager reads and writes named string secrets.
type Storager interface {
	GetKeyValue(key string) (string, error)
	SetKeyValue(key, value string) error
}

// CameraPasswordKey is the path-based key holding one camera's password.
func CameraPasswordKey(cameraID string) string {
	return "cameras/" + cameraID
}
