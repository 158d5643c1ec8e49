package repository

import "context"

// Preference keys. The store holds nothing else.
const (
	KeyServerURL         = "server_url"
	KeyNotificationSound = "notif_sound_uri"
)

// PreferenceRepository is a small string key-value store.
type PreferenceRepository interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set saves or replaces a value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
