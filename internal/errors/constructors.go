package errors

import "fmt"

// Convenience functions for common error patterns

// Config errors

func ValidationFailed(field, reason string) *BuilderError {
	return New(CategoryValidation, SeverityFatal, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Toolchain errors

func ToolNotFound(tool string, cause error) *BuilderError {
	return Wrap(cause, CategoryToolchain, SeverityFatal, "required tool not found").
		WithContext("tool", tool)
}

func ToolFailed(tool string, cause error) *BuilderError {
	return Wrap(cause, CategoryToolchain, SeverityFatal, "tool invocation failed").
		WithContext("tool", tool)
}

// Manifest errors

func ManifestUnreadable(path string, cause error) *BuilderError {
	return Wrap(cause, CategoryManifest, SeverityFatal, "manifest unreadable").
		WithContext("path", path)
}

func ManifestFieldMissing(field string) *BuilderError {
	return New(CategoryManifest, SeverityFatal, "manifest field missing").
		WithContext("field", field)
}

// Build pipeline errors

func BuildFailed(stage string, cause error) *BuilderError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

func ArtifactError(operation string, cause error) *BuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityWarning, "artifact operation failed").
		WithContext("operation", operation)
}
