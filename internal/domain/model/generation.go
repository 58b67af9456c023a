package model

// Option keys understood by the prompt templates and fallback generators.
const (
	OptionTone        = "tone"        // titles: engaging, educational, exciting
	OptionCount       = "count"       // tags, titles, hashtags, content-ideas
	OptionDescription = "description" // video-summary: optional video description
)

// Title tones.
const (
	ToneEngaging    = "engaging"
	ToneEducational = "educational"
	ToneExciting    = "exciting"
)

// Provenance records which path produced a generation result.
type Provenance string

const (
	ProvenanceAI   Provenance = "ai"
	ProvenanceMock Provenance = "mock"
	// ProvenanceLive marks data read from the video platform rather than generated.
	ProvenanceLive Provenance = "live"
)

// ErrorKind classifies why a generation did not succeed.
type ErrorKind string

const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindUnconfigured       ErrorKind = "unconfigured"
	ErrorKindRemoteFailure      ErrorKind = "remote_failure"
	ErrorKindStorageUnavailable ErrorKind = "storage_unavailable"
	ErrorKindUnknownToolKind    ErrorKind = "unknown_tool_kind"
)

// GenerationRequest is constructed per call and never persisted.
type GenerationRequest struct {
	Kind    ToolKind
	Topic   string
	Options map[string]string
	// SkipAI forces the local generator even when a credential is stored.
	SkipAI bool
}

// Option returns the named option, or def when it is unset or blank.
func (r GenerationRequest) Option(key, def string) string {
	if v, ok := r.Options[key]; ok && v != "" {
		return v
	}
	return def
}

// GenerationResult is the outcome of a generation. Content is meaningful when
// Success is true; ErrorKind when it is false.
type GenerationResult struct {
	Success    bool
	Content    string
	ErrorKind  ErrorKind
	Provenance Provenance
	// Diagnostic carries the underlying failure message for logs only.
	Diagnostic string
}

// Succeeded builds a successful result.
func Succeeded(content string, provenance Provenance) GenerationResult {
	return GenerationResult{Success: true, Content: content, Provenance: provenance}
}

// Failed builds a failed result with a diagnostic message.
func Failed(kind ErrorKind, diagnostic string) GenerationResult {
	return GenerationResult{Success: false, ErrorKind: kind, Diagnostic: diagnostic}
}
