// Package googlechat implements the chat.Client interface over the
// Google Chat REST API.
package googlechat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	chatv1 "google.golang.org/api/chat/v1"
	"google.golang.org/api/option"

	"github.com/chaddon/internal/chat"
)

// Config holds the settings for the Chat API client.
type Config struct {
	// Endpoint overrides the Chat API base URL. Empty uses the
	// library default.
	Endpoint string

	// CredentialsFile is the path to a service account key file.
	// Empty falls back to Application Default Credentials.
	CredentialsFile string

	// Scope is the OAuth scope requested for the credentials.
	// Empty defaults to the chat.bot scope.
	Scope string

	// RateLimit caps outbound API calls per second.
	RateLimit float64
}

const defaultRateLimit = 5

// Sender sends messages through the Google Chat API. It is safe for
// concurrent use; the generated service and the limiter both are.
type Sender struct {
	svc     *chatv1.Service
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New builds a Sender, acquiring Chat credentials up front. A process
// that cannot obtain credentials should not accept deliveries, so any
// credential failure is returned rather than degraded around.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Sender, error) {
	scope := cfg.Scope
	if scope == "" {
		scope = chatv1.ChatBotScope
	}

	var creds *google.Credentials
	var err error
	if cfg.CredentialsFile != "" {
		data, readErr := os.ReadFile(cfg.CredentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read credentials file %s: %w", cfg.CredentialsFile, readErr)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, scope)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, scope)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Chat credentials: %w", err)
	}

	opts := []option.ClientOption{option.WithCredentials(creds)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := chatv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Chat service: %w", err)
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("scope", scope).
		Float64("rate_limit", limit).
		Msg("Chat client initialized")

	return &Sender{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(limit), int(limit)+1),
		log:     logger,
	}, nil
}

// CreateMessage posts a new message into parent.
func (s *Sender) CreateMessage(ctx context.Context, parent string, msg *chat.Message) (*chat.Message, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}
	s.log.Debug().Str("parent", parent).Bool("card", msg.Card != nil).Msg("Creating Chat message")

	call := s.svc.Spaces.Messages.Create(parent, toWireMessage(msg)).Context(ctx)
	if msg.ThreadName != "" {
		// Reply into the existing thread; the API falls back to a
		// new thread if it no longer exists.
		call = call.MessageReplyOption("REPLY_MESSAGE_FALLBACK_TO_NEW_THREAD")
	}

	sent, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create message in %s: %w", parent, err)
	}
	return fromWireMessage(sent), nil
}

// UpdateMessage patches msg.Name, limited to the masked fields.
func (s *Sender) UpdateMessage(ctx context.Context, msg *chat.Message, updateMask []string) (*chat.Message, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}
	s.log.Debug().Str("name", msg.Name).Strs("mask", updateMask).Msg("Updating Chat message")

	updated, err := s.svc.Spaces.Messages.Patch(msg.Name, toWireMessage(msg)).
		UpdateMask(strings.Join(updateMask, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update message %s: %w", msg.Name, err)
	}
	return fromWireMessage(updated), nil
}
