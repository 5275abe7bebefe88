package build

import (
	"context"
	"fmt"
)

// StageName is a strongly-typed identifier for a build stage. All canonical
// stages are declared as constants here for compile-time safety.
type StageName string

// Canonical stage names, in execution order.
const (
	StagePrerequisites StageName = "prerequisites"
	StageClean         StageName = "clean"
	StageVersion       StageName = "version_prompt"
	StageEntrypoint    StageName = "capture_entrypoint"
	StageInstall       StageName = "install_dependencies"
	StageCompile       StageName = "compile"
	StageTest          StageName = "test"
	StagePackage       StageName = "package"
	StagePrune         StageName = "prune_archives"
	StageReport        StageName = "locate_report"
)

// Stage is a discrete unit of work in the build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Helpers to classify errors.
func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}
