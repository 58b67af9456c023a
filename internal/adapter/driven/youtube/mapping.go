package youtube

import (
	"time"

	yt "google.golang.org/api/youtube/v3"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

func mapVideo(v *yt.Video) model.Video {
	out := model.Video{ID: v.Id}
	if s := v.Snippet; s != nil {
		out.Title = s.Title
		out.Description = s.Description
		out.ChannelID = s.ChannelId
		out.ChannelTitle = s.ChannelTitle
		out.Tags = s.Tags
		out.CategoryID = s.CategoryId
		out.ThumbnailURL = bestThumbnail(s.Thumbnails)
		out.PublishedAt = parseTime(s.PublishedAt)
	}
	if st := v.Statistics; st != nil {
		out.Views = st.ViewCount
		out.Likes = st.LikeCount
		out.Comments = st.CommentCount
	}
	if cd := v.ContentDetails; cd != nil {
		out.Duration = cd.Duration
	}
	return out
}

func mapChannel(ch *yt.Channel) model.Channel {
	out := model.Channel{ID: ch.Id}
	if s := ch.Snippet; s != nil {
		out.Title = s.Title
		out.Description = s.Description
		out.CustomURL = s.CustomUrl
		out.LogoURL = bestThumbnail(s.Thumbnails)
		out.PublishedAt = parseTime(s.PublishedAt)
	}
	if st := ch.Statistics; st != nil {
		out.Subscribers = st.SubscriberCount
		out.Videos = st.VideoCount
		out.Views = st.ViewCount
		out.HiddenSubs = st.HiddenSubscriberCount
	}
	if b := ch.BrandingSettings; b != nil && b.Image != nil {
		out.BannerURL = b.Image.BannerExternalUrl
	}
	return out
}

// bestThumbnail returns the highest-resolution thumbnail URL available.
func bestThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
