package core

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/model"
)

// ItemStore is the read-only, fallible accessor for persisted mission items.
// Indexes are [0, mission.Count).
type ItemStore interface {
	ReadItem(storageID string, index int) (model.MissionItem, error)
}

// Geofence is the externally defined permitted-operating-area boundary.
// Check receives items whose altitude has already been resolved to AMSL.
type Geofence interface {
	IsHomeRequired() bool
	Valid() bool
	Check(item model.MissionItem) bool
}

// Reporter receives one diagnostic per rejection or warning path.
type Reporter interface {
	ReportViolation(ctx context.Context, mission model.Mission, v Violation)
}

// Recorder receives per-pass metrics. Implemented by the observability
// collector; nil-safe via the noop default.
type Recorder interface {
	RecordCheck(accepted, warning bool, elapsed time.Duration)
	RecordViolation(code string)
}

// Limits are the operator-configured distance bounds for a pass. A value
// <= 0 disables the corresponding check.
type Limits struct {
	MaxDistanceToFirstWaypoint  float64
	MaxDistanceBetweenWaypoints float64
}

// Checker validates uploaded missions against a vehicle's navigation
// capabilities. It holds only collaborators, no pass state, so a single
// Checker is safe for concurrent use.
type Checker struct {
	store    ItemStore
	fence    Geofence
	distance DistanceFunc
	reporter Reporter
	recorder Recorder
	log      logging.Logger
	tracer   trace.Tracer
}

// Option customises a Checker.
type Option func(*Checker)

// WithGeofence installs a boundary evaluator. Without one, geofence checks
// are skipped (no usable boundary configured).
func WithGeofence(f Geofence) Option { return func(c *Checker) { c.fence = f } }

// WithReporter installs the diagnostic channel.
func WithReporter(r Reporter) Option { return func(c *Checker) { c.reporter = r } }

// WithRecorder installs a metrics recorder.
func WithRecorder(r Recorder) Option { return func(c *Checker) { c.recorder = r } }

// WithLogger installs a structured logger.
func WithLogger(l logging.Logger) Option { return func(c *Checker) { c.log = l } }

// WithDistanceFunc replaces the default haversine great-circle distance.
func WithDistanceFunc(f DistanceFunc) Option { return func(c *Checker) { c.distance = f } }

// NewChecker builds a Checker over the given item store.
func NewChecker(store ItemStore, opts ...Option) *Checker {
	c := &Checker{
		store:    store,
		distance: DistanceMeters,
		log:      logging.Noop(),
		tracer:   otel.Tracer("flightcheck/core"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckMissionFeasible runs one full feasibility pass: every sub-check runs
// regardless of earlier failures, so a single pass yields the complete batch
// of diagnostics. The hard verdict and the advisory warning flag are derived
// from the collected violations afterwards.
//
// The pass is deterministic and synchronous; a storage read failure inside a
// sub-check stops that sub-check but never its siblings.
func (c *Checker) CheckMissionFeasible(ctx context.Context, mission model.Mission, vehicle model.VehicleContext, limits Limits) Report {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "feasibility.check",
		trace.WithAttributes(
			attribute.String("mission.storage_id", mission.StorageID),
			attribute.Int("mission.count", int(mission.Count)),
			attribute.String("vehicle.type", vehicle.Type.String()),
		),
	)
	defer span.End()

	var report Report

	// Trivial case: a mission with length zero cannot be valid. Rejected
	// without a diagnostic.
	if int(mission.Count) <= 0 {
		report.Violations = append(report.Violations, Violation{
			Code:     CodeEmptyMission,
			Severity: SeverityError,
			Message:  "mission has no items",
		})
		c.finish(ctx, span, mission, &report, start)
		return report
	}

	if !vehicle.Home.AltValid {
		report.Violations = append(report.Violations,
			errorf(CodeNoPositionLock, 0, "not yet ready for mission, no position lock"))
	} else {
		report.Violations = append(report.Violations,
			c.checkDistanceToFirstWaypoint(mission, vehicle, limits.MaxDistanceToFirstWaypoint)...)
	}

	state := PassState{}

	report.Violations = append(report.Violations, c.checkMissionItemValidity(mission, vehicle)...)
	report.Violations = append(report.Violations,
		c.checkDistancesBetweenWaypoints(mission, limits.MaxDistanceBetweenWaypoints)...)
	report.Violations = append(report.Violations, c.checkGeofence(mission, vehicle)...)
	report.Violations = append(report.Violations, c.checkHomePositionAltitude(mission, vehicle)...)

	var vs []Violation
	vs, state = c.checkTakeoff(mission, vehicle, state)
	report.Violations = append(report.Violations, vs...)

	switch vehicle.Type {
	case model.VehicleVTOL:
		vs, state = c.checkVTOLLanding(mission, state)
		report.Violations = append(report.Violations, vs...)
	case model.VehicleFixedWing:
		vs, state = c.checkFixedWingLanding(mission, vehicle, state)
		report.Violations = append(report.Violations, vs...)
	default:
		// Rotary-wing: only detect landing presence, no geometry applies.
		var found bool
		found, vs = c.hasMissionLanding(mission)
		state.HasLanding = found
		report.Violations = append(report.Violations, vs...)
	}

	report.Violations = append(report.Violations, c.checkTakeoffLandAvailable(vehicle, state)...)

	report.State = state
	c.finish(ctx, span, mission, &report, start)
	return report
}

// finish emits diagnostics, metrics, and the pass summary log line.
func (c *Checker) finish(ctx context.Context, span trace.Span, mission model.Mission, report *Report, start time.Time) {
	for _, v := range report.Violations {
		// The empty-mission rejection is the one path that carries no
		// operator diagnostic.
		if v.Code == CodeEmptyMission {
			continue
		}
		if c.reporter != nil {
			c.reporter.ReportViolation(ctx, mission, v)
		}
		if c.recorder != nil {
			c.recorder.RecordViolation(string(v.Code))
		}
	}

	accepted := report.Accepted()
	warning := report.Warning()

	if c.recorder != nil {
		c.recorder.RecordCheck(accepted, warning, time.Since(start))
	}

	span.SetAttributes(
		attribute.Bool("feasibility.accepted", accepted),
		attribute.Bool("feasibility.warning", warning),
		attribute.Int("feasibility.violations", len(report.Violations)),
	)

	c.log.Info(ctx, "mission feasibility pass complete",
		logging.String("storage_id", mission.StorageID),
		logging.Any("accepted", accepted),
		logging.Any("warning", warning),
		logging.Int("violations", len(report.Violations)),
	)
}

// readItem wraps a store read, translating failures into the fail-closed
// storage violation.
func (c *Checker) readItem(mission model.Mission, index int) (model.MissionItem, *Violation) {
	item, err := c.store.ReadItem(mission.StorageID, index)
	if err != nil {
		v := errorf(CodeStorageFailure, index+1, "cannot access mission storage: %v", err)
		return model.MissionItem{}, &v
	}
	return item, nil
}

// resolveAltitudeAMSL converts an item altitude to AMSL using the home
// altitude when the item uses relative altitude.
func resolveAltitudeAMSL(item model.MissionItem, homeAlt float64) float64 {
	if item.AltitudeIsRelative {
		return item.Altitude + homeAlt
	}
	return item.Altitude
}
