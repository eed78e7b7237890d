package detections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "plain text wins",
			field: Field{Key: "status", Text: "Active", Value: `{"label":"Testing"}`},
			want:  "Active",
		},
		{
			name:  "text returned verbatim including whitespace",
			field: Field{Key: "description", Text: "  padded  "},
			want:  "  padded  ",
		},
		{
			name:  "blank text falls back to structured label",
			field: Field{Key: "status", Text: "   ", Value: `{"label":"Active","index":1}`},
			want:  "Active",
		},
		{
			name:  "structured text when no label",
			field: Field{Key: "notes", Value: `{"text":"free form"}`},
			want:  "free form",
		},
		{
			name:  "payload without label or text is re-encoded",
			field: Field{Key: "link", Value: `{"url":"https://example.com"}`},
			want:  `{"url":"https://example.com"}`,
		},
		{
			name:  "malformed payload returned raw",
			field: Field{Key: "broken", Value: `{"label":`},
			want:  `{"label":`,
		},
		{
			name:  "non-object payload returned raw",
			field: Field{Key: "count", Value: `42`},
			want:  `42`,
		},
		{
			name:  "empty field",
			field: Field{Key: "empty"},
			want:  "",
		},
		{
			name:  "whitespace-only structured value",
			field: Field{Key: "blank", Value: "  "},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveValue(tt.field))
		})
	}
}
