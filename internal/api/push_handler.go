package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/chaddon/internal/event"
	"github.com/chaddon/internal/metrics"
)

// handlePush processes one Pub/Sub push delivery. The response is HTTP
// 200 with an empty body in every case, including decode failures, so
// the subscription never redelivers a poison message.
func (s *Server) handlePush(c echo.Context) error {
	deliveryID := uuid.New().String()
	logger := s.log.With().Str("delivery_id", deliveryID).Logger()

	if identity := pushTokenIdentity(c.Request().Header.Get("Authorization")); identity != "" {
		logger.Debug().Str("identity", identity).Msg("Push delivery authorization claim")
	}

	metrics.EventsReceived.Inc()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		metrics.DecodeFailures.WithLabelValues("unreadable_body").Inc()
		logger.Warn().Err(err).Msg("Failed to read push body")
		return c.NoContent(http.StatusOK)
	}

	eventJSON, err := event.Decode(body)
	if err != nil {
		reason := decodeFailureReason(err)
		metrics.DecodeFailures.WithLabelValues(reason).Inc()
		warning := logger.Warn().Err(err).Str("reason", reason)
		if errors.Is(err, event.ErrMalformedEvent) {
			if preview := event.RepairPreview(body); preview != "" {
				warning = warning.Str("repaired", preview)
			}
		}
		warning.Msg("Discarding undecodable push delivery")
		return c.NoContent(http.StatusOK)
	}

	logger.Debug().RawJSON("event", eventJSON).Msg("Decoded event payload")

	ev := event.Classify(eventJSON)
	metrics.EventsClassified.WithLabelValues(string(ev.Kind)).Inc()

	// Carry the delivery-scoped logger into the dispatcher so its
	// lines correlate with this delivery.
	ctx := logger.WithContext(c.Request().Context())
	outcome := s.dispatcher.Dispatch(ctx, ev)
	logger.Info().
		Str("kind", string(ev.Kind)).
		Str("space", ev.SpaceName).
		Str("outcome", string(outcome)).
		Msg("Push delivery processed")

	return c.NoContent(http.StatusOK)
}

// decodeFailureReason maps the decode sentinels onto metric label values.
func decodeFailureReason(err error) string {
	switch {
	case errors.Is(err, event.ErrMalformedEnvelope):
		return "malformed_envelope"
	case errors.Is(err, event.ErrMissingPayload):
		return "missing_payload"
	case errors.Is(err, event.ErrBadEncoding):
		return "bad_encoding"
	case errors.Is(err, event.ErrMalformedEvent):
		return "malformed_event"
	}
	return "unknown"
}
