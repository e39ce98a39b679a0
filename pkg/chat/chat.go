// Package chat defines the assistant transcript types.
package chat

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. The transcript is append-only and lives
// in memory for the session.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"message"`
}
