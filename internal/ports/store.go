package ports

import "time"

// Store is the key/value persistence collaborator the theme registry uses to
// remember the active theme across restarts. Implementations must be safe for
// concurrent use and must finish a Set before returning.
//
// Get reports ok=false for missing or expired keys. A zero ttl never expires.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string, ttl time.Duration) error
}
