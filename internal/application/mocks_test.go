package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockCredentialStore struct {
	mu      sync.Mutex
	secrets map[string]string
	times   map[string]time.Time
	getErr  error
	saveErr error
	gets    int
}

func newMockCredentialStore() *mockCredentialStore {
	return &mockCredentialStore{secrets: map[string]string{}, times: map[string]time.Time{}}
}

func (m *mockCredentialStore) Save(_ context.Context, id, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.secrets[id] = secret
	m.times[id] = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return nil
}

func (m *mockCredentialStore) Get(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.secrets[id], nil
}

func (m *mockCredentialStore) StoredAt(_ context.Context, id string) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return time.Time{}, false, m.getErr
	}
	t, ok := m.times[id]
	return t, ok, nil
}

func (m *mockCredentialStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.secrets, id)
	delete(m.times, id)
	return nil
}

var _ driven.CredentialStore = (*mockCredentialStore)(nil)

type mockTextGenerator struct {
	mu         sync.Mutex
	configured []string
	prompts    []string
	generate   func(ctx context.Context, prompt string) model.GenerationResult
}

func (m *mockTextGenerator) Configure(secret string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configured = append(m.configured, secret)
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string) model.GenerationResult {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.generate(ctx, prompt)
}

func (m *mockTextGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

var _ driven.TextGenerator = (*mockTextGenerator)(nil)

type mockVideoPlatform struct {
	apiKey       string
	video        *model.Video
	channel      *model.Channel
	channelErr   error
	lastChannel  model.ChannelRef
	lastRegion   string
	lastCategory string
	lastMax      int64
	searchHits   []model.ChannelSummary
	comments     []model.Comment
	categories   []model.VideoCategory
}

func (m *mockVideoPlatform) FetchVideo(_ context.Context, videoID string) (*model.Video, error) {
	if m.video == nil || m.video.ID != videoID {
		return nil, driven.ErrNotFound
	}
	return m.video, nil
}

func (m *mockVideoPlatform) FetchChannel(_ context.Context, ref model.ChannelRef) (*model.Channel, error) {
	m.lastChannel = ref
	if m.channelErr != nil {
		return nil, m.channelErr
	}
	return m.channel, nil
}

func (m *mockVideoPlatform) SearchChannels(_ context.Context, _ string, maxResults int64) ([]model.ChannelSummary, error) {
	m.lastMax = maxResults
	return m.searchHits, nil
}

func (m *mockVideoPlatform) FetchTrending(_ context.Context, region, category string, maxResults int64) ([]model.Video, error) {
	m.lastMax = maxResults
	m.lastRegion = region
	m.lastCategory = category
	return []model.Video{{ID: "trend1"}}, nil
}

func (m *mockVideoPlatform) FetchComments(_ context.Context, _ string, maxResults int64) ([]model.Comment, error) {
	m.lastMax = maxResults
	return m.comments, nil
}

func (m *mockVideoPlatform) FetchCategories(_ context.Context, region string) ([]model.VideoCategory, error) {
	m.lastRegion = region
	return m.categories, nil
}

var _ driven.VideoPlatform = (*mockVideoPlatform)(nil)

type recordedGeneration struct {
	kind       model.ToolKind
	provenance model.Provenance
}

type mockRecorder struct {
	mu          sync.Mutex
	generations []recordedGeneration
	failures    []model.ErrorKind
}

func (m *mockRecorder) ObserveGeneration(kind model.ToolKind, provenance model.Provenance, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations = append(m.generations, recordedGeneration{kind: kind, provenance: provenance})
}

func (m *mockRecorder) ObserveProviderFailure(_ model.ToolKind, errorKind model.ErrorKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, errorKind)
}
