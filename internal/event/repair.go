package event

import (
	"encoding/base64"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

const repairPreviewLimit = 512

// RepairPreview produces a best-effort repaired rendering of an inner
// event payload that failed to parse, for the warning log only. The
// poison-message policy is unchanged: the delivery is still dropped.
// Returns "" when nothing useful can be recovered.
func RepairPreview(body []byte) string {
	data := gjson.GetBytes(body, "message.data").String()
	if data == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return ""
	}

	repaired, err := jsonrepair.JSONRepair(string(decoded))
	if err != nil || !gjson.Valid(repaired) {
		return ""
	}
	if len(repaired) > repairPreviewLimit {
		repaired = repaired[:repairPreviewLimit] + "..."
	}
	return repaired
}
