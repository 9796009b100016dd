// Package event decodes Cloud Pub/Sub push deliveries carrying Google
// Chat events and normalizes them into a single ChatEvent value. The
// upstream event schema is not one stable contract: the same logical
// event has shipped under several payload shapes over time, so both the
// shape detection and the field lookups run as ordered probes against
// the raw JSON tree rather than strict unmarshalling.
package event

// Kind identifies the shape of a Chat event. The values match the
// legacy top-level type discriminator Google Chat used before payloads
// moved under the "chat" sub-object.
type Kind string

const (
	KindMessage      Kind = "MESSAGE"
	KindAppCommand   Kind = "APP_COMMAND"
	KindCardClick    Kind = "CARD_CLICKED"
	KindAddedToSpace Kind = "ADDED_TO_SPACE"
	KindUnknown      Kind = "UNKNOWN"
)

// SenderType classifies who authored a message.
type SenderType string

const (
	SenderHuman   SenderType = "HUMAN"
	SenderBot     SenderType = "BOT"
	SenderUnknown SenderType = "UNKNOWN"
)

// ParseSenderType maps the wire string to a SenderType. Anything that
// is not a known value comes back as SenderUnknown.
func ParseSenderType(s string) SenderType {
	switch s {
	case string(SenderHuman):
		return SenderHuman
	case string(SenderBot):
		return SenderBot
	default:
		return SenderUnknown
	}
}

// Sender describes the user that triggered an event.
type Sender struct {
	DisplayName string
	Type        SenderType
}

// ChatEvent is the normalized form of a decoded Chat event. Only the
// fields relevant to the detected Kind are populated; everything else
// keeps its zero value.
type ChatEvent struct {
	Kind       Kind
	SpaceName  string
	ThreadName string
	Sender     *Sender

	// Text is the message body for KindMessage events.
	Text string

	// CommandID is the slash command identifier for KindAppCommand
	// events. Command IDs are assigned in the app manifest.
	CommandID int64

	// ActionID and Parameters describe the invoked function for
	// KindCardClick events.
	ActionID   string
	Parameters map[string]string

	// MessageName is the resource name of the clicked message, needed
	// by the update-message workflow.
	MessageName string

	// SelectedValues holds the values of the selection form input for
	// multi-select submissions, in form order.
	SelectedValues []string

	// Raw is the decoded event JSON, retained for logging only.
	Raw []byte
}
