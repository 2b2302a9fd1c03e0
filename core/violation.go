package core

import "fmt"

// Severity splits findings into hard failures, which reject the mission, and
// advisories, which only raise the warning flag.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code identifies one rejection or warning path. Every path has exactly one
// code, so operators and audits can tell rejections apart without parsing
// message text.
type Code string

const (
	CodeEmptyMission       Code = "empty_mission"
	CodeNoPositionLock     Code = "no_position_lock"
	CodeStorageFailure     Code = "storage_failure"
	CodeUnsupportedCommand Code = "unsupported_command"
	CodeActuatorIndex      Code = "actuator_index_out_of_bounds"
	CodeActuatorValue      Code = "actuator_value_out_of_bounds"
	CodeStartsWithLanding  Code = "starts_with_landing"

	CodeGeofenceHomeRequired   Code = "geofence_home_required"
	CodeGeofenceViolation      Code = "geofence_violation"
	CodeRelativeAltitudeNoHome Code = "relative_altitude_without_home"
	CodeWaypointBelowHome      Code = "waypoint_below_home"

	CodeFirstWaypointTooFar Code = "first_waypoint_too_far"
	CodeWaypointsTooFar     Code = "waypoints_too_far_apart"
	CodeGateTooClose        Code = "gate_too_close_to_waypoint"

	CodeTakeoffTooLow     Code = "takeoff_altitude_too_low"
	CodeTakeoffNotFirst   Code = "takeoff_not_first"
	CodeMultipleLandStart Code = "multiple_land_start"

	CodeLandingAngleMissing  Code = "landing_angle_not_configured"
	CodeApproachBelowLanding Code = "approach_below_landing"
	CodeLandingInsideOrbit   Code = "landing_inside_orbit"
	CodeUnsupportedApproach  Code = "unsupported_landing_approach"
	CodeApproachRequired     Code = "landing_approach_required"
	CodeGlideSlopeTooSteep   Code = "glide_slope_too_steep"
	CodeLandStartBeforeRTL   Code = "land_start_before_rtl"
	CodeInvalidLandStart     Code = "invalid_land_start"

	CodeTakeoffMissing          Code = "takeoff_missing"
	CodeLandingMissing          Code = "landing_missing"
	CodeTakeoffOrLandingMissing Code = "takeoff_or_landing_missing"
	CodeAddLandingOrDropTakeoff Code = "add_landing_or_remove_takeoff"
	CodeAddTakeoffOrDropLanding Code = "add_takeoff_or_remove_landing"
)

// Violation is one diagnosable finding from a feasibility pass.
type Violation struct {
	Code     Code
	Severity Severity

	// Index is the 1-based mission item the finding refers to, or 0 when it
	// applies to the mission as a whole.
	Index int

	// Message is operator-facing: it names the offending value and, where
	// applicable, a remediation hint.
	Message string

	// RaisesWarning marks findings that set the advisory flag on the
	// result. Some hard failures raise it too, so the operator sees the
	// pass was degraded even when the rejection gets fixed.
	RaisesWarning bool
}

func (v Violation) String() string {
	if v.Index > 0 {
		return fmt.Sprintf("%s: item %d: %s [%s]", v.Severity, v.Index, v.Message, v.Code)
	}
	return fmt.Sprintf("%s: %s [%s]", v.Severity, v.Message, v.Code)
}

// Report is the outcome of one feasibility pass: the complete batch of
// findings from every sub-check, plus the pass-scoped takeoff/landing state.
type Report struct {
	Violations []Violation
	State      PassState
}

// Accepted derives the hard verdict: true iff no sub-check produced an
// error-severity violation.
func (r Report) Accepted() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Warning reports whether the advisory flag should be raised on the result.
func (r Report) Warning() bool {
	for _, v := range r.Violations {
		if v.RaisesWarning || v.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Has reports whether any finding carries the given code.
func (r Report) Has(code Code) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// PassState is the takeoff/landing presence state shared between sub-checks
// of a single pass. It is threaded through the landing and takeoff checks
// explicitly and never outlives one CheckMissionFeasible call.
type PassState struct {
	HasTakeoff bool
	HasLanding bool
}

func errorf(code Code, index int, format string, args ...any) Violation {
	return Violation{
		Code:     code,
		Severity: SeverityError,
		Index:    index,
		Message:  fmt.Sprintf(format, args...),
	}
}

func warnf(code Code, index int, format string, args ...any) Violation {
	return Violation{
		Code:          code,
		Severity:      SeverityWarning,
		Index:         index,
		Message:       fmt.Sprintf(format, args...),
		RaisesWarning: true,
	}
}

// withWarningFlag marks a hard violation as also raising the advisory flag.
func withWarningFlag(v Violation) Violation {
	v.RaisesWarning = true
	return v
}
