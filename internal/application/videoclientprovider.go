package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// ErrVideoPlatformUnconfigured is returned when no video platform API key is stored.
var ErrVideoPlatformUnconfigured = errors.New("video platform API key not configured")

// VideoClientFactory builds a VideoPlatform client bound to apiKey.
type VideoClientFactory func(ctx context.Context, apiKey string) (driven.VideoPlatform, error)

// VideoClientProvider hands out a VideoPlatform client for the currently
// stored API key. When the stored key changes, the next Get builds a fresh
// client, so credential updates take effect without a restart.
type VideoClientProvider struct {
	store   driven.CredentialStore
	factory VideoClientFactory

	mu     sync.RWMutex
	apiKey string
	client driven.VideoPlatform
}

// NewVideoClientProvider creates a provider that reads the key from store
// and builds clients with factory.
func NewVideoClientProvider(store driven.CredentialStore, factory VideoClientFactory) *VideoClientProvider {
	return &VideoClientProvider{store: store, factory: factory}
}

// Get returns the client for the stored key. It returns
// ErrVideoPlatformUnconfigured when no key is stored or the store cannot be read.
func (p *VideoClientProvider) Get(ctx context.Context) (driven.VideoPlatform, error) {
	key, err := p.store.Get(ctx, model.CredentialYouTube)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVideoPlatformUnconfigured, err)
	}
	if key == "" {
		p.Replace("", nil)
		return nil, ErrVideoPlatformUnconfigured
	}

	p.mu.RLock()
	if p.client != nil && p.apiKey == key {
		client := p.client
		p.mu.RUnlock()
		return client, nil
	}
	p.mu.RUnlock()

	client, err := p.factory(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("build video platform client: %w", err)
	}
	p.Replace(key, client)
	return client, nil
}

// Replace swaps the cached client and the key it was built for.
func (p *VideoClientProvider) Replace(apiKey string, client driven.VideoPlatform) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apiKey = apiKey
	p.client = client
}

// HasClient reports whether a client is currently cached.
func (p *VideoClientProvider) HasClient() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}
