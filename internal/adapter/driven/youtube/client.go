// Package youtube implements the VideoPlatform port using the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/gregjones/httpcache"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.VideoPlatform = (*Client)(nil)

var (
	videoParts   = []string{"snippet", "statistics", "contentDetails"}
	channelParts = []string{"snippet", "statistics", "brandingSettings"}
	snippetOnly  = []string{"snippet"}

	maxPageResults    = int64(50)
	maxCommentResults = int64(100)
)

// Client implements driven.VideoPlatform for a single API key.
type Client struct {
	svc    *yt.Service
	logger *slog.Logger
}

type clientConfig struct {
	endpoint string
	base     http.RoundTripper
	logger   *slog.Logger
}

// Option configures NewClient.
type Option func(*clientConfig)

// WithEndpoint points the client at a different API root, e.g. an httptest server.
func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) { c.endpoint = endpoint }
}

// WithBaseTransport replaces the innermost transport. The response cache and
// rate-limit layers still wrap it.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *clientConfig) { c.base = rt }
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// NewClient creates a YouTube client with the following transport stack:
//  1. API key transport (appends ?key=)
//  2. go-github-ratelimit (sleeps on 429/Retry-After responses)
//  3. httpcache (ETag conditional requests, in-memory)
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	cfg := clientConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache := httpcache.NewMemoryCacheTransport()
	if cfg.base != nil {
		cache.Transport = cfg.base
	}
	rateLimited := github_ratelimit.NewClient(cache)

	httpClient := &http.Client{
		Transport: &transport.APIKey{Key: apiKey, Transport: rateLimited.Transport},
		Timeout:   30 * time.Second,
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.endpoint))
	}

	svc, err := yt.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc, logger: cfg.logger}, nil
}

// FetchVideo returns metadata for a single public video.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*model.Video, error) {
	resp, err := c.svc.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, "fetch video %s", videoID)
	}
	c.logCall(resp.ServerResponse, "videos", len(resp.Items))

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, driven.ErrNotFound)
	}
	v := mapVideo(resp.Items[0])
	return &v, nil
}

// FetchChannel resolves ref and returns the channel's metadata and statistics.
func (c *Client) FetchChannel(ctx context.Context, ref model.ChannelRef) (*model.Channel, error) {
	call := c.svc.Channels.List(channelParts).Context(ctx)
	switch ref.Kind {
	case model.ChannelRefHandle:
		call = call.ForHandle(ref.Value)
	case model.ChannelRefUsername:
		call = call.ForUsername(ref.Value)
	default:
		call = call.Id(ref.Value)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, wrapAPIError(err, "fetch channel %s", ref)
	}
	c.logCall(resp.ServerResponse, "channels", len(resp.Items))

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s: %w", ref, driven.ErrNotFound)
	}
	ch := mapChannel(resp.Items[0])
	return &ch, nil
}

// SearchChannels finds channels matching query.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]model.ChannelSummary, error) {
	resp, err := c.svc.Search.List(snippetOnly).
		Q(query).
		Type("channel").
		MaxResults(clampResults(maxResults, maxPageResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err, "search channels %q", query)
	}
	c.logCall(resp.ServerResponse, "search", len(resp.Items))

	out := make([]model.ChannelSummary, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		id := item.Snippet.ChannelId
		if item.Id != nil && item.Id.ChannelId != "" {
			id = item.Id.ChannelId
		}
		out = append(out, model.ChannelSummary{
			ID:          id,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			LogoURL:     bestThumbnail(item.Snippet.Thumbnails),
		})
	}
	return out, nil
}

// FetchTrending lists the most popular videos for regionCode.
func (c *Client) FetchTrending(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]model.Video, error) {
	call := c.svc.Videos.List(videoParts).
		Chart("mostPopular").
		RegionCode(regionCode).
		MaxResults(clampResults(maxResults, maxPageResults)).
		Context(ctx)
	if categoryID != "" {
		call = call.VideoCategoryId(categoryID)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, wrapAPIError(err, "fetch trending videos in %s", regionCode)
	}
	c.logCall(resp.ServerResponse, "videos/trending", len(resp.Items))

	out := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, mapVideo(item))
	}
	return out, nil
}

// FetchComments lists top-level comments on a video, most relevant first.
func (c *Client) FetchComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error) {
	resp, err := c.svc.CommentThreads.List(snippetOnly).
		VideoId(videoID).
		Order("relevance").
		TextFormat("plainText").
		MaxResults(clampResults(maxResults, maxCommentResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err, "fetch comments for %s", videoID)
	}
	c.logCall(resp.ServerResponse, "commentThreads", len(resp.Items))

	out := make([]model.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		s := item.Snippet.TopLevelComment.Snippet
		out = append(out, model.Comment{
			Author:      s.AuthorDisplayName,
			Text:        s.TextDisplay,
			Likes:       s.LikeCount,
			PublishedAt: parseTime(s.PublishedAt),
		})
	}
	return out, nil
}

// FetchCategories lists the video categories available in regionCode.
func (c *Client) FetchCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error) {
	resp, err := c.svc.VideoCategories.List(snippetOnly).RegionCode(regionCode).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, "fetch categories for %s", regionCode)
	}
	c.logCall(resp.ServerResponse, "videoCategories", len(resp.Items))

	out := make([]model.VideoCategory, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		out = append(out, model.VideoCategory{
			ID:         item.Id,
			Title:      item.Snippet.Title,
			Assignable: item.Snippet.Assignable,
		})
	}
	return out, nil
}

// logCall logs each API response at debug level, noting cache hits.
func (c *Client) logCall(resp googleapi.ServerResponse, endpoint string, count int) {
	c.logger.Debug("youtube api call",
		"endpoint", endpoint,
		"status", resp.HTTPStatusCode,
		"items", count,
		"cached", resp.Header.Get(httpcache.XFromCache) == "1",
	)
}

func wrapAPIError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%s: %w", msg, driven.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// clampResults keeps n within the endpoint's page limit. Comment threads
// allow 100 per page, the other list endpoints 50.
func clampResults(n, limit int64) int64 {
	if n <= 0 || n > limit {
		return limit
	}
	return n
}
