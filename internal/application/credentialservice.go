package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// ErrUnknownCredential is returned for credential ids the service does not manage.
var ErrUnknownCredential = errors.New("unknown credential id")

// CredentialStatus describes a stored credential without exposing it.
type CredentialStatus struct {
	ID         string
	Configured bool
	StoredAt   time.Time
}

// CredentialService manages the provider credentials entered by the user.
type CredentialService struct {
	store  driven.CredentialStore
	logger *slog.Logger
}

// NewCredentialService creates a CredentialService backed by store.
func NewCredentialService(store driven.CredentialStore, logger *slog.Logger) *CredentialService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialService{store: store, logger: logger}
}

// KnownCredentials lists the credential ids the service accepts.
func KnownCredentials() []string {
	return []string{model.CredentialGemini, model.CredentialYouTube}
}

func validateCredentialID(id string) error {
	for _, known := range KnownCredentials() {
		if id == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCredential, id)
}

// Save trims secret and stores it under id, replacing any previous value.
func (s *CredentialService) Save(ctx context.Context, id, secret string) error {
	if err := validateCredentialID(id); err != nil {
		return err
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return driven.ErrEmptySecret
	}
	if err := s.store.Save(ctx, id, secret); err != nil {
		return fmt.Errorf("save credential %s: %w", id, err)
	}
	s.logger.Info("credential saved", "id", id)
	return nil
}

// Status reports whether id is configured and when it was stored. Storage
// failures are returned so the caller can tell "absent" from "unavailable".
func (s *CredentialService) Status(ctx context.Context, id string) (CredentialStatus, error) {
	if err := validateCredentialID(id); err != nil {
		return CredentialStatus{}, err
	}
	storedAt, found, err := s.store.StoredAt(ctx, id)
	if err != nil {
		return CredentialStatus{}, fmt.Errorf("credential status %s: %w", id, err)
	}
	return CredentialStatus{ID: id, Configured: found, StoredAt: storedAt}, nil
}

// Clear removes id. Clearing an absent credential succeeds.
func (s *CredentialService) Clear(ctx context.Context, id string) error {
	if err := validateCredentialID(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("clear credential %s: %w", id, err)
	}
	s.logger.Info("credential cleared", "id", id)
	return nil
}

// Seed stores secret under id only when nothing is stored yet. It is used to
// import keys supplied through the environment at startup. Blank secrets are
// ignored. It reports whether a value was written.
func (s *CredentialService) Seed(ctx context.Context, id, secret string) (bool, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return false, nil
	}
	if err := validateCredentialID(id); err != nil {
		return false, err
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("seed credential %s: %w", id, err)
	}
	if existing != "" {
		return false, nil
	}

	if err := s.store.Save(ctx, id, secret); err != nil {
		return false, fmt.Errorf("seed credential %s: %w", id, err)
	}
	s.logger.Info("credential seeded from environment", "id", id)
	return true, nil
}
