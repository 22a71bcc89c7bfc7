// Package session provides storage for interaction sessions.
//
// A session is the mutable half of the engine: one value map, owned by one
// consumer of a map definition. The definition itself never changes at
// runtime, so a session is all the state a host needs to persist between
// requests.
//
// Two backends are provided:
//   - memory: in-process storage for the HTTP host
//   - file: JSON files under the user config directory for CLI state that
//     survives across invocations
//
// # Usage
//
// Create and store a session:
//
//	sess := session.New("germany", def.Values, session.DefaultTTL)
//	store.Set(ctx, sess)
//
// Retrieve it later:
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if sess == nil {
//	    // Not found or expired.
//	}
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mlenz/regionmap/pkg/region"
)

// Session is one consumer's interaction state against a named map.
type Session struct {
	ID        string          `json:"id"`
	Map       string          `json:"map"`
	Values    region.ValueMap `json:"values"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}

// New creates a session with a fresh id, seeded with the given values.
// A ttl of zero means the session never expires.
func New(mapName string, values region.ValueMap, ttl time.Duration) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Map:       mapName,
		Values:    values.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ttl > 0 {
		s.ExpiresAt = now.Add(ttl)
	}
	return s
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Touch records an update, extending the expiry by ttl when set.
func (s *Session) Touch(ttl time.Duration) {
	s.UpdatedAt = time.Now()
	if ttl > 0 {
		s.ExpiresAt = s.UpdatedAt.Add(ttl)
	}
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// DefaultTTL is the default session duration for serving hosts.
const DefaultTTL = 24 * time.Hour
