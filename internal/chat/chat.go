// Package chat defines the outbound messaging capability the
// dispatcher depends on. The concrete Google Chat implementation lives
// in the googlechat subpackage; tests substitute their own.
package chat

import (
	"context"

	"github.com/chaddon/internal/card"
)

// Message is a transport-neutral Chat message. Name is the resource
// name assigned by the Chat API; it is set on results and on messages
// being updated, and empty on messages being created.
type Message struct {
	Name       string
	Text       string
	ThreadName string
	Card       *card.Definition
}

// Client is the Chat API surface the app uses. Implementations must be
// safe for concurrent use: a single client is shared by all in-flight
// deliveries.
type Client interface {
	// CreateMessage posts a new message into the space named by
	// parent and returns the created message.
	CreateMessage(ctx context.Context, parent string, msg *Message) (*Message, error)

	// UpdateMessage patches the message identified by msg.Name,
	// restricted to the fields named in updateMask.
	UpdateMessage(ctx context.Context, msg *Message, updateMask []string) (*Message, error)
}
