package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{"", Format(""), false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("json"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: "  "}

	err := f.Format(&buf, map[string]string{"name": "Suspicious Login"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Suspicious Login"}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}

	err := f.Format(&buf, map[string]string{"name": "Suspicious Login"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: Suspicious Login")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 3}`, buf.String())
}

func TestTableFormatterRendersRows(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, Data{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"123", "Suspicious Login"}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Suspicious Login")
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
}
