package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

// ErrNotFound is returned by VideoPlatform lookups when the video or channel
// does not exist or is not publicly visible.
var ErrNotFound = errors.New("not found on video platform")

// VideoPlatform defines the driven port for read-only video platform metadata.
type VideoPlatform interface {
	FetchVideo(ctx context.Context, videoID string) (*model.Video, error)
	// FetchChannel resolves ref by id, @handle or legacy username.
	FetchChannel(ctx context.Context, ref model.ChannelRef) (*model.Channel, error)
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]model.ChannelSummary, error)
	// FetchTrending lists the most popular videos in region. categoryID may be
	// empty for all categories.
	FetchTrending(ctx context.Context, regionCode, categoryID string, maxResults int64) ([]model.Video, error)
	FetchComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error)
	FetchCategories(ctx context.Context, regionCode string) ([]model.VideoCategory, error)
}
