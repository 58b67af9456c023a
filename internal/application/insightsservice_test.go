package application_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/creatortools/internal/application"
	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// newInsights wires an InsightsService whose provider always returns platform.
// A nil platform leaves the YouTube key unset.
func newInsights(t *testing.T, platform *mockVideoPlatform) *application.InsightsService {
	t.Helper()
	store := newMockCredentialStore()
	if platform != nil {
		require.NoError(t, store.Save(context.Background(), model.CredentialYouTube, "yt-key"))
	}
	provider := application.NewVideoClientProvider(store, func(context.Context, string) (driven.VideoPlatform, error) {
		return platform, nil
	})
	return application.NewInsightsService(provider, discardLogger)
}

func TestInsights_LookupVideo(t *testing.T) {
	platform := &mockVideoPlatform{video: &model.Video{ID: "dQw4w9WgXcQ", Title: "song"}}
	svc := newInsights(t, platform)

	v, err := svc.LookupVideo(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "song", v.Title)

	_, err = svc.LookupVideo(context.Background(), "https://youtu.be/aaaaaaaaaaa")
	assert.ErrorIs(t, err, driven.ErrNotFound)

	_, err = svc.LookupVideo(context.Background(), "not a url")
	assert.ErrorIs(t, err, application.ErrInvalidVideoURL)
}

func TestInsights_LookupVideoUnconfigured(t *testing.T) {
	svc := newInsights(t, nil)

	_, err := svc.LookupVideo(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, application.ErrVideoPlatformUnconfigured)
}

func TestInsights_ChannelStatsLive(t *testing.T) {
	platform := &mockVideoPlatform{channel: &model.Channel{
		ID:          "UC1",
		Title:       "Chan",
		Subscribers: 1000,
		Videos:      10,
		Views:       5000,
		PublishedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	svc := newInsights(t, platform)

	stats, err := svc.ChannelStats(context.Background(), "https://www.youtube.com/@chan")
	require.NoError(t, err)

	assert.Equal(t, model.ChannelRef{Kind: model.ChannelRefHandle, Value: "chan"}, platform.lastChannel)
	assert.Equal(t, model.ProvenanceLive, stats.Provenance)
	assert.Equal(t, uint64(500), stats.AvgViews)
	assert.InDelta(t, 50.0, stats.Engagement, 0.001)
}

func TestInsights_ChannelStatsMockWhenUnconfigured(t *testing.T) {
	svc := newInsights(t, nil)

	first, err := svc.ChannelStats(context.Background(), "@somebody")
	require.NoError(t, err)
	second, err := svc.ChannelStats(context.Background(), "@somebody")
	require.NoError(t, err)

	assert.Equal(t, model.ProvenanceMock, first.Provenance)
	assert.Equal(t, first, second, "mock stats are stable per channel")
	assert.GreaterOrEqual(t, first.Subscribers, uint64(10_000))
	assert.GreaterOrEqual(t, first.Engagement, 1.99)
	assert.LessOrEqual(t, first.Engagement, 7.0)

	other, err := svc.ChannelStats(context.Background(), "@someone-else")
	require.NoError(t, err)
	assert.NotEqual(t, first.Subscribers, other.Subscribers)
}

func TestInsights_ChannelStatsMockIsConsistent(t *testing.T) {
	svc := newInsights(t, nil)

	for _, ref := range []string{"@somebody", "@chef", "UCuAXFkgsw1L7xaCfnd5JJOw", "https://www.youtube.com/user/legacyname"} {
		stats, err := svc.ChannelStats(context.Background(), ref)
		require.NoError(t, err)
		require.NotZero(t, stats.Videos, "ref %s", ref)

		assert.Equal(t, stats.Views/stats.Videos, stats.AvgViews, "ref %s", ref)
		want := math.Round(float64(stats.AvgViews)/float64(stats.Subscribers)*100*100) / 100
		assert.InDelta(t, want, stats.Engagement, 1e-9, "ref %s", ref)
	}
}

func TestInsights_ChannelStatsMockWhenLookupFails(t *testing.T) {
	platform := &mockVideoPlatform{channelErr: driven.ErrNotFound}
	svc := newInsights(t, platform)

	stats, err := svc.ChannelStats(context.Background(), "UCuAXFkgsw1L7xaCfnd5JJOw")
	require.NoError(t, err)
	assert.Equal(t, model.ProvenanceMock, stats.Provenance)
	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", stats.ChannelID)
}

func TestInsights_ChannelStatsBadRef(t *testing.T) {
	svc := newInsights(t, nil)

	_, err := svc.ChannelStats(context.Background(), "https://example.com/x")
	assert.ErrorIs(t, err, application.ErrInvalidChannelRef)
}

func TestInsights_Lists(t *testing.T) {
	platform := &mockVideoPlatform{
		searchHits: []model.ChannelSummary{{ID: "UC1"}},
		comments:   []model.Comment{{Author: "a"}},
		categories: []model.VideoCategory{{ID: "10", Title: "Music"}},
	}
	svc := newInsights(t, platform)
	ctx := context.Background()

	hits, err := svc.SearchChannels(ctx, "cooking")
	require.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, int64(10), platform.lastMax)

	empty, err := svc.SearchChannels(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	videos, err := svc.Trending(ctx, "gb", "")
	require.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "GB", platform.lastRegion)
	assert.Equal(t, int64(10), platform.lastMax)

	_, err = svc.Trending(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "IN", platform.lastRegion)
	assert.Equal(t, int64(10), platform.lastMax)

	comments, err := svc.Comments(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, int64(100), platform.lastMax)

	cats, err := svc.Categories(ctx, "de")
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Equal(t, "DE", platform.lastRegion)
}

func TestInsights_ListsRequireKey(t *testing.T) {
	svc := newInsights(t, nil)
	ctx := context.Background()

	_, err := svc.SearchChannels(ctx, "cooking")
	assert.ErrorIs(t, err, application.ErrVideoPlatformUnconfigured)
	_, err = svc.Trending(ctx, "US", "")
	assert.ErrorIs(t, err, application.ErrVideoPlatformUnconfigured)
	_, err = svc.Comments(ctx, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, application.ErrVideoPlatformUnconfigured)
	_, err = svc.Categories(ctx, "US")
	assert.ErrorIs(t, err, application.ErrVideoPlatformUnconfigured)
}
