// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by CredentialStore implementations.
var (
	// ErrStorageUnavailable indicates the persistence layer could not be used.
	// Readers treat it as "no credential stored".
	ErrStorageUnavailable = errors.New("credential storage unavailable")

	// ErrEncryptionKeyNotSet is returned when CREATORTOOLS_SECRET_KEY has not
	// been configured. It is always wrapped together with ErrStorageUnavailable.
	ErrEncryptionKeyNotSet = errors.New("encryption key not configured: set CREATORTOOLS_SECRET_KEY")

	// ErrEmptySecret is returned by Save for blank secrets.
	ErrEmptySecret = errors.New("credential secret is empty")
)

// CredentialStore defines the driven port for durable credential persistence.
// The adapter layer is responsible for encryption at rest; this interface
// operates on plaintext values at the domain boundary and offers no enumeration.
type CredentialStore interface {
	// Save stores or replaces the secret for id.
	Save(ctx context.Context, id, secret string) error

	// Get returns the secret for id, or ("", nil) when none is stored.
	Get(ctx context.Context, id string) (string, error)

	// StoredAt reports when the secret for id was last saved without
	// decrypting it. found is false when none is stored.
	StoredAt(ctx context.Context, id string) (storedAt time.Time, found bool, err error)

	// Delete removes the secret for id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
