// Package assistant provides the text-completion collaborator used by the
// chat page and the summary/analysis overlays.
package assistant

import "context"

// Apology is returned in place of any internal failure; callers treat the
// client as infallible.
const Apology = "Sorry, there was an error contacting the AI."

// Client is a single round-trip text completion. No streaming, no
// cancellation beyond the context.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
