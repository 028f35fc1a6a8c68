// Package metadata stores small named values of the console in the local
// database: the persisted session record lives here.
package metadata

import (
	"context"
)

// Keys of the session record. The logout reason sits under its own key so
// that clearing the session leaves it in place.
const (
	KeyToken        = "session.token"
	KeyDisplayName  = "session.display_name"
	KeyLogoutReason = "session.logout_reason"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
