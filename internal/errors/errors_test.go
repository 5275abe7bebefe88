package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBuilderErrorFormatting(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "configuration file not found")
	want := "config (fatal): configuration file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("permission denied")
	wrapped := Wrap(cause, CategoryFileSystem, SeverityWarning, "artifact delete failed")
	if wrapped.Error() != "filesystem (warning): artifact delete failed: permission denied" {
		t.Errorf("unexpected wrapped format: %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := ToolFailed("npm", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var be *BuilderError
	if !errors.As(fmt.Errorf("outer: %w", err), &be) {
		t.Error("errors.As should find BuilderError through wrapping")
	}
}

func TestCategoryHelpers(t *testing.T) {
	err := ManifestFieldMissing("main")

	if !IsCategory(err, CategoryManifest) {
		t.Error("IsCategory should match manifest")
	}
	if IsCategory(err, CategoryBuild) {
		t.Error("IsCategory should not match build")
	}
	if GetCategory(err) != CategoryManifest {
		t.Errorf("GetCategory = %v, want manifest", GetCategory(err))
	}
	if GetCategory(errors.New("plain")) != CategoryInternal {
		t.Error("plain errors should default to internal category")
	}
}

func TestWithContext(t *testing.T) {
	err := ToolNotFound("vsce", errors.New("not in PATH"))
	if err.Context["tool"] != "vsce" {
		t.Errorf("context tool = %v, want vsce", err.Context["tool"])
	}

	err.WithContext("hint", "npm install -g @vscode/vsce")
	if err.Context["hint"] == nil {
		t.Error("WithContext should add new keys")
	}
}
