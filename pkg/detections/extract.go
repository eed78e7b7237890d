package detections

import (
	"encoding/json"
	"strings"
)

// ResolveValue returns the best available display value for a field.
//
// The rendered text wins when non-blank. Otherwise the structured payload
// is decoded and its "label" is preferred over its "text"; a payload with
// neither is re-encoded as a string. A payload that fails to decode is
// returned raw. Malformed values never raise an error - downstream
// consumers rely on this degrading quietly.
func ResolveValue(f Field) string {
	if strings.TrimSpace(f.Text) != "" {
		return f.Text
	}

	if strings.TrimSpace(f.Value) == "" {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(f.Value), &payload); err != nil {
		return f.Value
	}
	if label, ok := payload["label"].(string); ok {
		return label
	}
	if text, ok := payload["text"].(string); ok {
		return text
	}

	reencoded, err := json.Marshal(payload)
	if err != nil {
		return f.Value
	}
	return string(reencoded)
}
