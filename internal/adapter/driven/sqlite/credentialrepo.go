package sqlite

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of driven.CredentialStore.
// Secrets are sealed with AES-256-GCM before write and opened after read.
type CredentialRepo struct {
	db  *DB
	key []byte // 32-byte AES-256 key; nil disables the store.
	now func() time.Time
}

// NewCredentialRepo creates a CredentialRepo. key must be 32 bytes, or nil
// in which case every operation fails with ErrStorageUnavailable wrapping
// ErrEncryptionKeyNotSet.
func NewCredentialRepo(db *DB, key []byte) *CredentialRepo {
	return &CredentialRepo{db: db, key: key, now: time.Now}
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", driven.ErrStorageUnavailable, fmt.Sprintf(format, args...))
}

func (r *CredentialRepo) requireKey() error {
	if r.key == nil {
		return fmt.Errorf("%w: %w", driven.ErrStorageUnavailable, driven.ErrEncryptionKeyNotSet)
	}
	return nil
}

// Save stores or replaces the secret for id.
func (r *CredentialRepo) Save(ctx context.Context, id, secret string) error {
	if strings.TrimSpace(secret) == "" {
		return driven.ErrEmptySecret
	}
	if err := r.requireKey(); err != nil {
		return err
	}

	sealed, err := r.encrypt(secret)
	if err != nil {
		return unavailable("encrypt credential %q: %v", id, err)
	}

	const query = `INSERT INTO credentials (id, secret, stored_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET secret = excluded.secret, stored_at = excluded.stored_at`
	storedAt := r.now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.Writer.ExecContext(ctx, query, id, sealed, storedAt); err != nil {
		return unavailable("save credential %q: %v", id, err)
	}
	return nil
}

// Get returns the plaintext secret for id, or ("", nil) if none is stored.
func (r *CredentialRepo) Get(ctx context.Context, id string) (string, error) {
	if err := r.requireKey(); err != nil {
		return "", err
	}

	const query = `SELECT secret FROM credentials WHERE id = ?`
	var sealed string
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", unavailable("get credential %q: %v", id, err)
	}

	plaintext, err := r.decrypt(sealed)
	if err != nil {
		return "", unavailable("decrypt credential %q: %v", id, err)
	}
	return plaintext, nil
}

// StoredAt reports when the secret for id was last saved.
func (r *CredentialRepo) StoredAt(ctx context.Context, id string) (time.Time, bool, error) {
	if err := r.requireKey(); err != nil {
		return time.Time{}, false, err
	}

	const query = `SELECT stored_at FROM credentials WHERE id = ?`
	var raw string
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, unavailable("get credential %q timestamp: %v", id, err)
	}

	storedAt, err := parseTime(raw)
	if err != nil {
		return time.Time{}, false, unavailable("parse stored_at for credential %q: %v", id, err)
	}
	return storedAt, true, nil
}

// Delete removes the secret for id. Absent ids are not an error.
func (r *CredentialRepo) Delete(ctx context.Context, id string) error {
	if err := r.requireKey(); err != nil {
		return err
	}

	const query = `DELETE FROM credentials WHERE id = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, id); err != nil {
		return unavailable("delete credential %q: %v", id, err)
	}
	return nil
}

// encrypt seals plaintext and returns base64(nonce || ciphertext || tag).
func (r *CredentialRepo) encrypt(plaintext string) (string, error) {
	gcm, err := r.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (r *CredentialRepo) decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	gcm, err := r.aead()
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm.Open: %w", err)
	}
	return string(plaintext), nil
}

func (r *CredentialRepo) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(r.key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return gcm, nil
}

// parseTime accepts the formats SQLite and Go commonly produce for TEXT
// timestamps.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}
