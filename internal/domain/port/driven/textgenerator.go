package driven

import (
	"context"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

// TextGenerator defines the driven port for a remote text-generation provider.
// Failures are reported through the result's ErrorKind, never as errors.
type TextGenerator interface {
	// Configure binds secret to the generator, replacing any previous one.
	Configure(secret string)

	// Generate issues a single request for prompt. It returns
	// ErrorKindUnconfigured if Configure was never called with a non-empty
	// secret and ErrorKindRemoteFailure for any transport or response problem.
	Generate(ctx context.Context, prompt string) model.GenerationResult
}
