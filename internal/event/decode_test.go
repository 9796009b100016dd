package event

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushEnvelope wraps an event JSON document the way Pub/Sub push
// deliveries do: base64 under message.data.
func pushEnvelope(t *testing.T, eventJSON string) []byte {
	t.Helper()
	data := base64.StdEncoding.EncodeToString([]byte(eventJSON))
	return []byte(`{"message":{"data":"` + data + `"}}`)
}

func TestDecodeValidEnvelope(t *testing.T) {
	inner := `{"chat":{"messagePayload":{"space":{"name":"spaces/AAA"}}}}`

	got, err := Decode(pushEnvelope(t, inner))
	require.NoError(t, err)
	assert.Equal(t, inner, string(got))
}

func TestDecodeFailures(t *testing.T) {
	notJSON := base64.StdEncoding.EncodeToString([]byte("this is not json"))

	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "malformed envelope",
			body: `{"message": oops`,
			want: ErrMalformedEnvelope,
		},
		{
			name: "missing message wrapper",
			body: `{"unrelated":true}`,
			want: ErrMissingPayload,
		},
		{
			name: "missing data field",
			body: `{"message":{"messageId":"1"}}`,
			want: ErrMissingPayload,
		},
		{
			name: "empty data field",
			body: `{"message":{"data":""}}`,
			want: ErrMissingPayload,
		},
		{
			name: "data is not base64",
			body: `{"message":{"data":"%%% definitely not base64 %%%"}}`,
			want: ErrBadEncoding,
		},
		{
			name: "decoded payload is not json",
			body: `{"message":{"data":"` + notJSON + `"}}`,
			want: ErrMalformedEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.body))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeRejectsEmptyBody(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}
