package assistant

import (
	"context"
	"fmt"
	"time"
)

// Simulated answers every prompt with a canned response after a fixed
// delay, standing in for the real model during device development.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns the default simulated client with the device's
// stand-in network delay.
func NewSimulated() *Simulated {
	return &Simulated{Delay: 1500 * time.Millisecond}
}

// Complete waits out the delay and returns the canned response. It only
// fails when the context is cancelled.
func (s *Simulated) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.Delay):
	}
	return fmt.Sprintf(
		"This is a simulated response from the AI based on your query about: %q. For real medical advice, always consult a qualified healthcare professional.",
		truncate(prompt, 50)), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
