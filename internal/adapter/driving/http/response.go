package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/creatortools/internal/application"
	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ToolResponse describes one generation tool.
type ToolResponse struct {
	Kind    string   `json:"tool_kind"`
	Options []string `json:"options"`
}

// GenerateRequest is the JSON body for the generate endpoint. UseAI defaults
// to true when omitted.
type GenerateRequest struct {
	ToolKind string            `json:"tool_kind"`
	Topic    string            `json:"topic"`
	Options  map[string]string `json:"options"`
	UseAI    *bool             `json:"use_ai"`
}

// GenerateResponse is the JSON representation of a generation result.
type GenerateResponse struct {
	Success     bool   `json:"success"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
	Provenance  string `json:"provenance,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CredentialStatusResponse reports whether a credential is stored. The secret
// itself is never returned.
type CredentialStatusResponse struct {
	ID         string `json:"id"`
	Configured bool   `json:"configured"`
	StoredAt   string `json:"stored_at,omitempty"`
}

// SaveCredentialRequest is the JSON body for the save credential endpoint.
type SaveCredentialRequest struct {
	Secret string `json:"secret"`
}

// VideoResponse is the JSON representation of a video.
type VideoResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelID    string   `json:"channel_id"`
	ChannelTitle string   `json:"channel_title"`
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"category_id"`
	Duration     string   `json:"duration"`
	ThumbnailURL string   `json:"thumbnail_url"`
	PublishedAt  string   `json:"published_at"`
	Views        uint64   `json:"views"`
	Likes        uint64   `json:"likes"`
	Comments     uint64   `json:"comments"`
}

// ChannelStatsResponse is the JSON representation of channel statistics.
type ChannelStatsResponse struct {
	ChannelID   string  `json:"channel_id"`
	Title       string  `json:"title"`
	Subscribers uint64  `json:"subscribers"`
	Videos      uint64  `json:"videos"`
	Views       uint64  `json:"views"`
	AvgViews    uint64  `json:"avg_views"`
	Engagement  float64 `json:"engagement"`
	Provenance  string  `json:"provenance"`
}

// ChannelSummaryResponse is a channel search hit.
type ChannelSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// CommentResponse is a top-level video comment.
type CommentResponse struct {
	Author      string `json:"author"`
	Text        string `json:"text"`
	Likes       int64  `json:"likes"`
	PublishedAt string `json:"published_at"`
}

// CategoryResponse is a video category.
type CategoryResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Assignable bool   `json:"assignable"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toGenerateResponse(res model.GenerationResult) GenerateResponse {
	resp := GenerateResponse{
		Success:    res.Success,
		Content:    res.Content,
		Provenance: string(res.Provenance),
		ErrorKind:  string(res.ErrorKind),
	}
	if res.Success {
		resp.ContentHTML = renderContent(res.Content)
	} else {
		resp.Error = res.Diagnostic
	}
	return resp
}

func toCredentialStatusResponse(s application.CredentialStatus) CredentialStatusResponse {
	return CredentialStatusResponse{
		ID:         s.ID,
		Configured: s.Configured,
		StoredAt:   formatTime(s.StoredAt),
	}
}

func toVideoResponse(v model.Video) VideoResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}

	return VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		ChannelID:    v.ChannelID,
		ChannelTitle: v.ChannelTitle,
		Tags:         tags,
		CategoryID:   v.CategoryID,
		Duration:     v.Duration,
		ThumbnailURL: v.ThumbnailURL,
		PublishedAt:  formatTime(v.PublishedAt),
		Views:        v.Views,
		Likes:        v.Likes,
		Comments:     v.Comments,
	}
}

func toChannelStatsResponse(s model.ChannelStats) ChannelStatsResponse {
	return ChannelStatsResponse{
		ChannelID:   s.ChannelID,
		Title:       s.Title,
		Subscribers: s.Subscribers,
		Videos:      s.Videos,
		Views:       s.Views,
		AvgViews:    s.AvgViews,
		Engagement:  s.Engagement,
		Provenance:  string(s.Provenance),
	}
}

func toChannelSummaryResponse(c model.ChannelSummary) ChannelSummaryResponse {
	return ChannelSummaryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		LogoURL:     c.LogoURL,
	}
}

func toCommentResponse(c model.Comment) CommentResponse {
	return CommentResponse{
		Author:      c.Author,
		Text:        c.Text,
		Likes:       c.Likes,
		PublishedAt: formatTime(c.PublishedAt),
	}
}

func toCategoryResponse(c model.VideoCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Title: c.Title, Assignable: c.Assignable}
}
