package model

import "encoding/json"

// CacheEntry is a single system_cache row: an opaque payload keyed by name.
// At most one entry exists per key; writes are last-write-wins.
type CacheEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
}

// Well-known setting keys persisted by the UI layer.
const (
	SettingLanguage = "language"
	SettingTheme    = "theme"
)
