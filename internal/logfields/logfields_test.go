package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Stage", KeyStage, "compile", Stage("compile")},
		{"Tool", KeyTool, "npm", Tool("npm")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Archive", KeyArchive, "demo-0.1.0.vsix", Archive("demo-0.1.0.vsix")},
		{"Version", KeyVersion, "0.1.0", Version("0.1.0")},
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Outcome", KeyOutcome, "success", Outcome("success")},
	}

	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestErrorHelper(t *testing.T) {
	if Error(nil).Value.String() != "" {
		t.Error("nil error should map to empty string")
	}
	if Error(errors.New("boom")).Value.String() != "boom" {
		t.Error("error message not preserved")
	}
}

func TestDurationMS(t *testing.T) {
	attr := DurationMS(12.5)
	if attr.Key != KeyDurationMS {
		t.Errorf("key = %q, want %q", attr.Key, KeyDurationMS)
	}
	if attr.Value.Float64() != 12.5 {
		t.Errorf("value = %v, want 12.5", attr.Value.Float64())
	}
}
