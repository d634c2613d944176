//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"time"
)

// EventCache is the process-wide snapshot of the event feed. Replaced wholesale on refresh.
type EventCache struct {
	Events   []json.RawMessage `json:"events"`
	CachedAt time.Time         `json:"cachedAt"`
}
