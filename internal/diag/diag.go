// Package diag delivers feasibility diagnostics to operators: every
// rejection or warning path produces exactly one report, unbatched.
package diag

import (
	"context"
	"sync"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/model"
)

// LogReporter writes diagnostics to the structured log.
type LogReporter struct {
	log logging.Logger
}

// NewLogReporter wraps a logger as a diagnostic reporter.
func NewLogReporter(log logging.Logger) *LogReporter {
	if log == nil {
		log = logging.Noop()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) ReportViolation(ctx context.Context, mission model.Mission, v core.Violation) {
	fields := []logging.Field{
		logging.String("storage_id", mission.StorageID),
		logging.String("code", string(v.Code)),
		logging.Int("item", v.Index),
	}
	if v.Severity == core.SeverityWarning {
		r.log.Warn(ctx, v.Message, fields...)
		return
	}
	r.log.Error(ctx, v.Message, fields...)
}

// Recorder collects diagnostics in memory. Used by the HTTP surface to
// return the violation batch, and by tests.
type Recorder struct {
	mu         sync.Mutex
	violations []core.Violation
}

func (r *Recorder) ReportViolation(_ context.Context, _ model.Mission, v core.Violation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = append(r.violations, v)
}

// Violations returns a copy of everything recorded so far.
func (r *Recorder) Violations() []core.Violation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = nil
}

// Multi fans each diagnostic out to every reporter.
type Multi []core.Reporter

func (m Multi) ReportViolation(ctx context.Context, mission model.Mission, v core.Violation) {
	for _, r := range m {
		if r != nil {
			r.ReportViolation(ctx, mission, v)
		}
	}
}
