package application

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

// Errors returned when a user-supplied video or channel reference cannot be parsed.
var (
	ErrInvalidVideoURL   = errors.New("not a recognizable video URL or id")
	ErrInvalidChannelRef = errors.New("not a recognizable channel URL, handle or id")
)

var (
	videoURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/|youtube\.com/live/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
	}
	bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

	channelURLPatterns = []struct {
		re   *regexp.Regexp
		kind model.ChannelRefKind
	}{
		{regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]+)`), model.ChannelRefID},
		{regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_.-]+)`), model.ChannelRefHandle},
		{regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_.-]+)`), model.ChannelRefHandle},
		{regexp.MustCompile(`youtube\.com/user/([a-zA-Z0-9_-]+)`), model.ChannelRefUsername},
	}
	bareChannelID = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	bareHandle    = regexp.MustCompile(`^@?([a-zA-Z0-9_.-]{3,30})$`)
)

// ExtractVideoID returns the 11-character video id from a watch, short-link,
// embed, shorts or live URL, or from a bare id.
func ExtractVideoID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, re := range videoURLPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], nil
		}
	}
	if bareVideoID.MatchString(s) {
		return s, nil
	}
	return "", ErrInvalidVideoURL
}

// ExtractChannelRef parses a channel URL (/channel/, /@handle, /c/, /user/),
// a bare UC… id, or a bare handle with or without "@".
func ExtractChannelRef(raw string) (model.ChannelRef, error) {
	s := strings.TrimSpace(raw)
	for _, p := range channelURLPatterns {
		if m := p.re.FindStringSubmatch(s); m != nil {
			return model.ChannelRef{Kind: p.kind, Value: m[1]}, nil
		}
	}
	if bareChannelID.MatchString(s) {
		return model.ChannelRef{Kind: model.ChannelRefID, Value: s}, nil
	}
	if m := bareHandle.FindStringSubmatch(s); m != nil {
		return model.ChannelRef{Kind: model.ChannelRefHandle, Value: m[1]}, nil
	}
	return model.ChannelRef{}, ErrInvalidChannelRef
}
