package build

import (
	"fmt"
	"io"
	"time"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// BuildReport captures high-level metrics about a packaging run.
type BuildReport struct {
	RunID string
	Start time.Time
	End   time.Time

	Errors   []error // fatal errors causing build abortion (at most one today)
	Warnings []error // non-fatal issues (badge update failure, prune errors)

	StageDurations  map[StageName]time.Duration
	StageErrorKinds map[StageName]StageErrorKind // stage -> error kind (fatal|warning|canceled)

	Version     string // version the archive was built as
	Archive     string // located archive path, empty when packaging failed
	ArchiveSize int64

	Commit string // HEAD commit of the extension checkout, if available
	Dirty  bool   // uncommitted changes present at build time

	Outcome BuildOutcome
}

func newBuildReport(runID string) *BuildReport {
	return &BuildReport{
		RunID:           runID,
		Start:           time.Now(),
		StageDurations:  make(map[StageName]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
	}
}

// finalize stamps the end time and derives the overall outcome from the
// pipeline error (if any) and accumulated warnings.
func (r *BuildReport) finalize(pipelineErr error) {
	r.End = time.Now()

	switch {
	case pipelineErr == nil && len(r.Warnings) == 0:
		r.Outcome = OutcomeSuccess
	case pipelineErr == nil:
		r.Outcome = OutcomeWarning
	default:
		if se, ok := pipelineErr.(*StageError); ok && se.Kind == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
		} else {
			r.Outcome = OutcomeFailed
		}
	}
}

// Duration returns the wall-clock duration of the run.
func (r *BuildReport) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Succeeded reports whether the run may be treated as usable output.
func (r *BuildReport) Succeeded() bool {
	return r.Outcome == OutcomeSuccess || r.Outcome == OutcomeWarning
}

// WriteSummary prints the user-facing result block.
func (r *BuildReport) WriteSummary(w io.Writer) {
	if r.Succeeded() {
		fmt.Fprintln(w, "============================================================")
		fmt.Fprintln(w, "BUILD SUCCESSFUL")
		fmt.Fprintln(w, "============================================================")
		fmt.Fprintf(w, "Package created: %s (%.2f MB)\n", r.Archive, float64(r.ArchiveSize)/(1024*1024))
		fmt.Fprintln(w, "Next steps:")
		fmt.Fprintf(w, "  1. Test the package: code --install-extension %s\n", r.Archive)
		fmt.Fprintln(w, "  2. Publish to marketplace: vsce publish")
	} else {
		fmt.Fprintf(w, "Build %s\n", r.Outcome)
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  error: %v\n", err)
		}
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  warning: %v\n", warn)
	}
	fmt.Fprintf(w, "Total time: %s\n", r.Duration().Round(time.Millisecond))
}
