package model

import "time"

// Video holds the metadata of a single video on the video platform.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	Tags         []string
	CategoryID   string
	Duration     string // ISO 8601, e.g. "PT12M3S".
	ThumbnailURL string
	PublishedAt  time.Time
	Views        uint64
	Likes        uint64
	Comments     uint64
}

// Channel holds the metadata and statistics of a channel.
type Channel struct {
	ID          string
	Title       string
	Description string
	CustomURL   string
	LogoURL     string
	BannerURL   string
	Subscribers uint64
	Videos      uint64
	Views       uint64
	HiddenSubs  bool
	PublishedAt time.Time
}

// ChannelSummary is a channel search hit.
type ChannelSummary struct {
	ID          string
	Title       string
	Description string
	LogoURL     string
}

// Comment is a top-level comment on a video.
type Comment struct {
	Author      string
	Text        string
	Likes       int64
	PublishedAt time.Time
}

// VideoCategory is a platform video category available in a region.
type VideoCategory struct {
	ID         string
	Title      string
	Assignable bool
}

// ChannelStats is the derived statistics view of a channel. Provenance tells
// whether the numbers came from the platform or were synthesized locally.
type ChannelStats struct {
	ChannelID   string
	Title       string
	Subscribers uint64
	Videos      uint64
	Views       uint64
	AvgViews    uint64
	Engagement  float64 // percent
	Provenance  Provenance
}
