package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
)

// DefaultGenerationTimeout bounds a single provider call.
const DefaultGenerationTimeout = 30 * time.Second

// GenerationRecorder observes dispatch outcomes. The metrics package
// provides the Prometheus implementation.
type GenerationRecorder interface {
	ObserveGeneration(kind model.ToolKind, provenance model.Provenance, elapsed time.Duration)
	ObserveProviderFailure(kind model.ToolKind, errorKind model.ErrorKind)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(model.ToolKind, model.Provenance, time.Duration) {}
func (nopRecorder) ObserveProviderFailure(model.ToolKind, model.ErrorKind) {}

// GenerationService is the single entry point the HTTP layer uses to run a
// tool. It chooses between the remote provider and the local fallback based
// on whether a provider credential is stored, and falls back whenever the
// provider fails.
type GenerationService struct {
	credentials driven.CredentialStore
	generator   driven.TextGenerator
	timeout     time.Duration
	recorder    GenerationRecorder
	logger      *slog.Logger
}

// GenerationOption configures a GenerationService.
type GenerationOption func(*GenerationService)

// WithGenerationTimeout overrides DefaultGenerationTimeout. Non-positive
// values are ignored.
func WithGenerationTimeout(d time.Duration) GenerationOption {
	return func(s *GenerationService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRecorder attaches a GenerationRecorder.
func WithRecorder(r GenerationRecorder) GenerationOption {
	return func(s *GenerationService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewGenerationService creates a GenerationService with the required dependencies.
func NewGenerationService(
	credentials driven.CredentialStore,
	generator driven.TextGenerator,
	logger *slog.Logger,
	opts ...GenerationOption,
) *GenerationService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &GenerationService{
		credentials: credentials,
		generator:   generator,
		timeout:     DefaultGenerationTimeout,
		recorder:    nopRecorder{},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateFor runs the tool named by req.Kind. It fails only for unknown tool
// kinds; every other path yields Success with either ai or mock provenance.
func (s *GenerationService) GenerateFor(ctx context.Context, req model.GenerationRequest) model.GenerationResult {
	start := time.Now()

	if !req.Kind.Valid() {
		s.logger.Error("generation requested for unknown tool kind", "tool_kind", string(req.Kind))
		return model.Failed(model.ErrorKindUnknownToolKind, "unknown tool kind "+string(req.Kind))
	}

	result := s.generate(ctx, req)
	s.recorder.ObserveGeneration(req.Kind, result.Provenance, time.Since(start))
	return result
}

func (s *GenerationService) generate(ctx context.Context, req model.GenerationRequest) model.GenerationResult {
	if req.SkipAI {
		return s.fallback(req)
	}

	secret, err := s.credentials.Get(ctx, model.CredentialGemini)
	if err != nil {
		s.logger.Warn("credential lookup failed, using local generator",
			"tool_kind", string(req.Kind),
			"error", err,
		)
		return s.fallback(req)
	}
	if secret == "" {
		return s.fallback(req)
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		s.logger.Error("build prompt failed", "tool_kind", string(req.Kind), "error", err)
		return s.fallback(req)
	}

	s.generator.Configure(secret)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := s.generator.Generate(callCtx, prompt)
	if !result.Success {
		s.recorder.ObserveProviderFailure(req.Kind, result.ErrorKind)
		s.logger.Warn("provider generation failed, using local generator",
			"tool_kind", string(req.Kind),
			"error_kind", string(result.ErrorKind),
			"diagnostic", result.Diagnostic,
		)
		return s.fallback(req)
	}

	result.Provenance = model.ProvenanceAI
	return result
}

func (s *GenerationService) fallback(req model.GenerationRequest) model.GenerationResult {
	content, ok := Fallback(req)
	if !ok {
		return model.Failed(model.ErrorKindUnknownToolKind, "no local generator for "+string(req.Kind))
	}
	return model.Succeeded(content, model.ProvenanceMock)
}
