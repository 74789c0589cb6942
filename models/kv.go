package models

import (
	"time"
)

// KVEntry is one serialized blob in the key-value table. The cart lives
// under a single key; there is no schema versioning, a malformed value is
// simply treated as absent.
type KVEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
