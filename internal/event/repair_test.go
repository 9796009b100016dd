package event

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestRepairPreviewRecoversTruncatedPayload(t *testing.T) {
	truncated := base64.StdEncoding.EncodeToString([]byte(`{"chat": {"messagePayload": {"message": {"text": "hi"`))
	body := []byte(`{"message":{"data":"` + truncated + `"}}`)

	preview := RepairPreview(body)
	assert.True(t, gjson.Valid(preview), "preview should be repaired into valid JSON")
	assert.Contains(t, preview, "hi")
}

func TestRepairPreviewEmptyWhenNothingRecoverable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data field", `{"message":{}}`},
		{"data not base64", `{"message":{"data":"%%%"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", RepairPreview([]byte(tt.body)))
		})
	}
}

func TestRepairPreviewTruncatesLongPayloads(t *testing.T) {
	long := `{"text": "` + strings.Repeat("a", 2*repairPreviewLimit) + `"`
	body := pushEnvelope(t, long)

	preview := RepairPreview(body)
	assert.NotEmpty(t, preview)
	assert.LessOrEqual(t, len(preview), repairPreviewLimit+len("..."))
	assert.True(t, strings.HasSuffix(preview, "..."))
}
