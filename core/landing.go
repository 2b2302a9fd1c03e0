package core

import (
	"math"

	"github.com/signalsfoundry/flightcheck/model"
)

// relativeAltitudeEpsilon is the smallest approach altitude above the
// landing point that still counts as "above".
const relativeAltitudeEpsilon = 1e-7

// landingRules parameterise the shared landing-sequence scan per vehicle
// type: which commands count as a landing, and how one landing item is
// validated. A nil validate means the vehicle type needs no geometric
// validation (VTOL), and any landing item with an approach counts as valid.
type landingRules struct {
	isLanding func(model.NavCommand) bool
	validate  func(index int, landing, approach model.MissionItem) ([]Violation, bool)
}

// scanLandingSequence enforces the ordering rules shared by the fixed-wing
// and VTOL landing checks: at most one DO_LAND_START, no landing as the
// first item, no RTL after a recorded DO_LAND_START, and a DO_LAND_START
// that does not trail the landing approach. Per-item validation is delegated
// to the rules.
func (c *Checker) scanLandingSequence(mission model.Mission, state PassState, rules landingRules) ([]Violation, PassState) {
	landStartIndex := -1
	approachIndex := -1
	landingValid := false

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}, state
		}

		switch {
		case item.NavCmd == model.NavCmdDoLandStart:
			if landStartIndex >= 0 {
				return []Violation{errorf(CodeMultipleLandStart, i+1,
					"more than one land start command")}, state
			}
			state.HasLanding = true
			landStartIndex = i

		case rules.isLanding(item.NavCmd):
			state.HasLanding = true

			if i == 0 {
				return []Violation{errorf(CodeStartsWithLanding, 1,
					"mission starts with a landing")}, state
			}

			approachIndex = i - 1
			approach, vErr := c.readItem(mission, approachIndex)
			if vErr != nil {
				return []Violation{*vErr}, state
			}

			if rules.validate == nil {
				landingValid = true
				break
			}

			vs, ok := rules.validate(i, item, approach)
			if len(vs) > 0 {
				return vs, state
			}
			if ok {
				landingValid = true
			}

		case item.NavCmd == model.NavCmdReturnToLaunch:
			if landStartIndex >= 0 && landStartIndex < i {
				return []Violation{errorf(CodeLandStartBeforeRTL, i+1,
					"land start item before RTL item is not possible")}, state
			}
		}
	}

	if state.HasLanding {
		effectiveApproach := approachIndex
		if effectiveApproach < 0 {
			effectiveApproach = 0
		}
		needsValid := rules.validate != nil

		if (needsValid && !landingValid) || landStartIndex > effectiveApproach {
			return []Violation{errorf(CodeInvalidLandStart, landStartIndex+1,
				"invalid land start")}, state
		}
	}

	return nil, state
}

// checkFixedWingLanding validates fixed-wing landing sequences: ordering via
// the shared scan, plus per-landing glide-slope geometry against the
// configured landing angle. The angle parameter is a safety setting; when it
// is not configured the landing is rejected fail-closed rather than checked
// against a substitute.
func (c *Checker) checkFixedWingLanding(mission model.Mission, vehicle model.VehicleContext, state PassState) ([]Violation, PassState) {
	rules := landingRules{
		isLanding: func(cmd model.NavCommand) bool { return cmd == model.NavCmdLand },
		validate: func(index int, landing, approach model.MissionItem) ([]Violation, bool) {
			return c.validateLandingApproach(index, landing, approach, vehicle)
		},
	}
	return c.scanLandingSequence(mission, state, rules)
}

// validateLandingApproach checks one LAND item against its approach leg, the
// item immediately before it.
func (c *Checker) validateLandingApproach(index int, landing, approach model.MissionItem, vehicle model.VehicleContext) ([]Violation, bool) {
	if vehicle.LandingAngleDeg == nil {
		return []Violation{errorf(CodeLandingAngleMissing, index+1,
			"landing angle parameter is not configured")}, false
	}
	landingAngle := *vehicle.LandingAngleDeg

	if !ItemContainsPosition(approach) {
		return []Violation{errorf(CodeApproachRequired, index+1,
			"landing approach is required")}, false
	}

	landAltAMSL := resolveAltitudeAMSL(landing, vehicle.Home.Alt)
	entranceAltAMSL := resolveAltitudeAMSL(approach, vehicle.Home.Alt)
	relativeApproachAltitude := entranceAltAMSL - landAltAMSL

	if relativeApproachAltitude < relativeAltitudeEpsilon {
		return []Violation{errorf(CodeApproachBelowLanding, index+1,
			"the approach waypoint must be above the landing point")}, false
	}

	var approachDistance float64

	switch approach.NavCmd {
	case model.NavCmdLoiterToAlt:
		// Fixed-wing landing pattern: orbit to altitude, tangent exit to
		// the landing approach, touchdown at the landing waypoint.
		centerDist := c.distance(approach.Lat, approach.Lon, landing.Lat, landing.Lon)
		orbitRadius := math.Abs(approach.LoiterRadius)

		if centerDist <= orbitRadius {
			return []Violation{errorf(CodeLandingInsideOrbit, index+1,
				"the landing point must be outside the orbit radius")}, false
		}
		approachDistance = orbitTangentDistance(centerDist, orbitRadius)

	case model.NavCmdWaypoint:
		// Approaching directly from the waypoint position.
		approachDistance = c.distance(approach.Lat, approach.Lon, landing.Lat, landing.Lon)

	default:
		return []Violation{errorf(CodeUnsupportedApproach, index+1,
			"unsupported landing approach entrance waypoint type, only loiter-to-alt or waypoint allowed")}, false
	}

	glideSlope := relativeApproachAltitude / approachDistance
	maxSlope := maxGlideSlope(landingAngle)

	if glideSlope > maxSlope {
		acceptableEntranceAlt := maxSlope * approachDistance
		acceptableLandingDist := math.Ceil(relativeApproachAltitude / maxSlope)

		return []Violation{errorf(CodeGlideSlopeTooSteep, index+1,
			"landing glide slope steeper than the vehicle setting of %.1f degrees; lower the entrance altitude to %.0f m or increase the landing approach distance to %.0f m",
			landingAngle, acceptableEntranceAlt, acceptableLandingDist)}, false
	}

	return nil, true
}

// checkVTOLLanding applies the shared landing ordering rules to VTOL
// missions. LAND and VTOL_LAND items only need a preceding item; no slope or
// orbit geometry is evaluated.
func (c *Checker) checkVTOLLanding(mission model.Mission, state PassState) ([]Violation, PassState) {
	rules := landingRules{
		isLanding: func(cmd model.NavCommand) bool {
			return cmd == model.NavCmdLand || cmd == model.NavCmdVTOLLand
		},
	}
	return c.scanLandingSequence(mission, state, rules)
}

// hasMissionLanding reports whether any item is a LAND command. Used for
// rotary-wing missions, which get no geometric landing validation.
func (c *Checker) hasMissionLanding(mission model.Mission) (bool, []Violation) {
	found := false

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return false, []Violation{*vErr}
		}
		if item.NavCmd == model.NavCmdLand {
			found = true
		}
	}

	return found, nil
}
