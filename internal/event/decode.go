package event

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Decode failure taxonomy. All of these are poison-message conditions:
// the caller logs them and still acknowledges the delivery, because
// redelivering a payload that failed to decode can never succeed.
var (
	ErrMalformedEnvelope = errors.New("push envelope is not valid JSON")
	ErrMissingPayload    = errors.New("push envelope has no message.data field")
	ErrBadEncoding       = errors.New("message.data is not valid base64")
	ErrMalformedEvent    = errors.New("decoded event payload is not valid JSON")
)

// Decode unwraps a Pub/Sub push delivery body and returns the inner
// Chat event JSON. The push envelope nests the event as base64 text
// under message.data.
func Decode(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedEnvelope
	}

	data := gjson.GetBytes(body, "message.data")
	if !data.Exists() || data.String() == "" {
		return nil, ErrMissingPayload
	}

	decoded, err := base64.StdEncoding.DecodeString(data.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	if !gjson.ValidBytes(decoded) {
		return nil, ErrMalformedEvent
	}
	return decoded, nil
}
