// Package dispatch routes classified Chat events to their per-kind
// handlers and issues the resulting replies through the Chat client.
package dispatch

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chaddon/internal/card"
	"github.com/chaddon/internal/chat"
	"github.com/chaddon/internal/event"
	"github.com/chaddon/internal/metrics"
)

// Outcome is the terminal state of a dispatched event.
type Outcome string

const (
	// OutcomeHandled means a reply call was attempted. Send failures are
	// logged and swallowed, so Handled does not imply delivered.
	OutcomeHandled Outcome = "handled"
	// OutcomeDropped means the event was discarded without any reply.
	OutcomeDropped Outcome = "dropped"
)

type Dispatcher struct {
	client chat.Client
	log    zerolog.Logger
}

func New(client chat.Client, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{client: client, log: logger}
}

// Dispatch runs the handler for the event's kind and issues at most one
// outbound Chat call. Bot senders are suppressed before any handler runs
// to prevent reply loops, and events without a resolvable space are
// dropped silently. Log lines go through the delivery-scoped logger
// carried by ctx when one is attached.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *event.ChatEvent) Outcome {
	if ev.Kind == event.KindUnknown {
		return d.drop(ctx, ev, "unknown_shape")
	}
	if ev.Sender != nil && ev.Sender.Type == event.SenderBot {
		return d.drop(ctx, ev, "bot_sender")
	}
	if ev.SpaceName == "" {
		return d.drop(ctx, ev, "no_space")
	}

	var reply Reply
	switch ev.Kind {
	case event.KindMessage:
		reply = messageReply(ev)
	case event.KindAppCommand:
		reply = commandReply(ev)
	case event.KindCardClick:
		if ev.ActionID == card.ActionUpdateMessage && ev.MessageName == "" {
			logger := d.logger(ctx)
			logger.Error().
				Str("space", ev.SpaceName).
				Msg("Update action carried no message name, falling back to a plain reply")
		}
		reply = cardClickReply(ev)
	case event.KindAddedToSpace:
		reply = welcomeReply(ev)
	}

	d.send(ctx, ev.Kind, reply)
	return OutcomeHandled
}

// logger returns the delivery-scoped logger the HTTP handler attached
// to ctx, so drop warnings and send results carry the delivery ID. The
// dispatcher's own logger is the fallback when the context has none.
func (d *Dispatcher) logger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return d.log
}

func (d *Dispatcher) drop(ctx context.Context, ev *event.ChatEvent, reason string) Outcome {
	metrics.EventsDropped.WithLabelValues(reason).Inc()
	logger := d.logger(ctx)
	logger.Warn().
		Str("kind", string(ev.Kind)).
		Str("reason", reason).
		Msg("Dropping event without a reply")
	return OutcomeDropped
}

func (d *Dispatcher) send(ctx context.Context, kind event.Kind, r Reply) {
	logger := d.logger(ctx).With().Str("kind", string(kind)).Str("space", r.Parent).Logger()

	var (
		sent *chat.Message
		err  error
	)
	if r.UpdateTarget != "" {
		logger.Info().Str("target", r.UpdateTarget).Msg("Updating message")
		sent, err = d.client.UpdateMessage(ctx, &chat.Message{Name: r.UpdateTarget, Text: r.Text}, r.UpdateMask)
	} else {
		logger.Info().Str("thread", r.ThreadName).Msg("Sending reply")
		sent, err = d.client.CreateMessage(ctx, r.Parent, &chat.Message{
			Text:       r.Text,
			ThreadName: r.ThreadName,
			Card:       r.Card,
		})
	}
	if err != nil {
		metrics.RepliesFailed.WithLabelValues(string(kind)).Inc()
		logger.Error().Err(err).Msg("Failed to send reply")
		return
	}
	metrics.RepliesSent.WithLabelValues(string(kind)).Inc()
	logger.Info().Str("name", sent.Name).Msg("Reply sent")
}
