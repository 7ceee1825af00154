// internal/app/system/timeouts/timeouts.go

// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for database operations
// in HTTP handlers. Using centralized values keeps behavior consistent and
// makes adjustments a one-line change.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or lookups
//   - Medium: list queries, moderate writes, multi-step reads
//   - Long: operations touching multiple collections
//   - Batch: bulk imports and large batch operations
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
	DefaultBatch  = 60 * time.Second
)

// mu protects the timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
	batch  = DefaultBatch
)

// Config carries override values for Configure. Zero fields keep the
// current value.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Batch  time.Duration
}

// Configure overrides the default timeouts. Call once at startup.
func Configure(c Config) {
	mu.Lock()
	defer mu.Unlock()
	if c.Ping > 0 {
		ping = c.Ping
	}
	if c.Short > 0 {
		short = c.Short
	}
	if c.Medium > 0 {
		medium = c.Medium
	}
	if c.Long > 0 {
		long = c.Long
	}
	if c.Batch > 0 {
		batch = c.Batch
	}
}

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple operations like single-document reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for operations touching multiple collections.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Batch returns the timeout for bulk imports and batch operations.
func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}
