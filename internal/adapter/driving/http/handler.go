package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/creatortools/internal/application"
	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

const (
	maxRequestBytes = 64 << 10
	healthTimeout   = 2 * time.Second
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	generation  *application.GenerationService
	credentials *application.CredentialService
	insights    *application.InsightsService
	db          Pinger
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	generation *application.GenerationService,
	credentials *application.CredentialService,
	insights *application.InsightsService,
	db Pinger,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		generation:  generation,
		credentials: credentials,
		insights:    insights,
		db:          db,
		logger:      logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request id, logging, and recovery middleware. metricsHandler is served
// on /metrics when non-nil.
func NewServeMux(h *Handler, logger *slog.Logger, observer RequestObserver, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/tools", h.ListTools)
	mux.HandleFunc("POST /api/v1/generate", h.Generate)
	mux.HandleFunc("GET /api/v1/credentials/{id}", h.GetCredential)
	mux.HandleFunc("PUT /api/v1/credentials/{id}", h.SaveCredential)
	mux.HandleFunc("DELETE /api/v1/credentials/{id}", h.ClearCredential)
	mux.HandleFunc("GET /api/v1/videos", h.LookupVideo)
	mux.HandleFunc("GET /api/v1/videos/trending", h.Trending)
	mux.HandleFunc("GET /api/v1/videos/categories", h.Categories)
	mux.HandleFunc("GET /api/v1/videos/{id}/comments", h.Comments)
	mux.HandleFunc("GET /api/v1/channels/stats", h.ChannelStats)
	mux.HandleFunc("GET /api/v1/channels/search", h.SearchChannels)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, jsonBodyMiddleware(mux))
	wrapped = loggingMiddleware(logger, observer, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// toolOptions lists the option keys each tool reads.
func toolOptions(kind model.ToolKind) []string {
	switch kind {
	case model.ToolKindTags, model.ToolKindHashtags, model.ToolKindContentIdeas:
		return []string{model.OptionCount}
	case model.ToolKindTitles:
		return []string{model.OptionTone, model.OptionCount}
	case model.ToolKindVideoSummary:
		return []string{model.OptionDescription}
	default:
		return []string{}
	}
}

// ListTools returns every supported tool kind with the options it accepts.
func (h *Handler) ListTools(w http.ResponseWriter, _ *http.Request) {
	kinds := model.ToolKinds()
	resp := make([]ToolResponse, 0, len(kinds))
	for _, k := range kinds {
		resp = append(resp, ToolResponse{Kind: string(k), Options: toolOptions(k)})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Generate runs one generation request. It always answers with content for
// known tool kinds, falling back to template output when the provider is
// unavailable.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	genReq := model.GenerationRequest{
		Kind:    model.ToolKind(req.ToolKind),
		Topic:   req.Topic,
		Options: req.Options,
		SkipAI:  req.UseAI != nil && !*req.UseAI,
	}

	res := h.generation.GenerateFor(r.Context(), genReq)
	switch {
	case res.Success:
		writeJSON(w, http.StatusOK, toGenerateResponse(res))
	case res.ErrorKind == model.ErrorKindUnknownToolKind:
		writeJSON(w, http.StatusBadRequest, toGenerateResponse(res))
	default:
		writeJSON(w, http.StatusInternalServerError, toGenerateResponse(res))
	}
}

// GetCredential reports whether a credential is configured.
func (h *Handler) GetCredential(w http.ResponseWriter, r *http.Request) {
	status, err := h.credentials.Status(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeCredentialError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCredentialStatusResponse(status))
}

// SaveCredential stores the secret for a credential, replacing any previous value.
func (h *Handler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req SaveCredentialRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.credentials.Save(r.Context(), id, req.Secret); err != nil {
		h.writeCredentialError(w, err)
		return
	}

	status, err := h.credentials.Status(r.Context(), id)
	if err != nil {
		h.writeCredentialError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCredentialStatusResponse(status))
}

// ClearCredential removes a credential. Clearing an absent credential succeeds.
func (h *Handler) ClearCredential(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Clear(r.Context(), r.PathValue("id")); err != nil {
		h.writeCredentialError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeCredentialError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrUnknownCredential):
		writeError(w, http.StatusNotFound, "unknown credential")
	case errors.Is(err, driven.ErrEmptySecret):
		writeError(w, http.StatusBadRequest, "secret must not be empty")
	case errors.Is(err, driven.ErrEncryptionKeyNotSet):
		writeError(w, http.StatusServiceUnavailable, driven.ErrEncryptionKeyNotSet.Error())
	case errors.Is(err, driven.ErrStorageUnavailable):
		h.logger.Warn("credential storage unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "credential storage unavailable")
	default:
		h.logger.Error("credential request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// LookupVideo returns metadata for the video named by the url query parameter.
func (h *Handler) LookupVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.insights.LookupVideo(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoResponse(*video))
}

// Comments returns top-level comments for a video.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.insights.Comments(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Trending returns the most popular videos for a region and optional category.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	videos, err := h.insights.Trending(r.Context(), q.Get("region"), q.Get("category"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Categories returns the video categories of a region.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.insights.Categories(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toCategoryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ChannelStats returns statistics for the channel named by the ref query
// parameter. Without a usable API key the statistics are synthesized.
func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.insights.ChannelStats(r.Context(), r.URL.Query().Get("ref"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toChannelStatsResponse(*stats))
}

// SearchChannels returns channels matching the q query parameter.
func (h *Handler) SearchChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.insights.SearchChannels(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeInsightsError(w, err)
		return
	}

	resp := make([]ChannelSummaryResponse, 0, len(channels))
	for _, c := range channels {
		resp = append(resp, toChannelSummaryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeInsightsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidVideoURL):
		writeError(w, http.StatusBadRequest, "invalid video url or id")
	case errors.Is(err, application.ErrInvalidChannelRef):
		writeError(w, http.StatusBadRequest, "invalid channel url, handle, or id")
	case errors.Is(err, driven.ErrStorageUnavailable):
		h.logger.Warn("credential storage unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "credential storage unavailable")
	case errors.Is(err, application.ErrVideoPlatformUnconfigured):
		writeError(w, http.StatusConflict, "youtube api key not configured")
	case errors.Is(err, driven.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("video platform request failed", "error", err)
		writeError(w, http.StatusBadGateway, "video platform request failed")
	}
}

// Health reports service and database status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:   "ok",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Database: "ok",
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("health check database ping failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "unavailable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
