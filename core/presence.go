package core

import "github.com/signalsfoundry/flightcheck/model"

// checkTakeoffLandAvailable maps the configured required-items policy onto
// the takeoff/landing presence recorded during the pass. Unrecognised policy
// values pass, the fail-open default.
func (c *Checker) checkTakeoffLandAvailable(vehicle model.VehicleContext, state PassState) []Violation {
	switch vehicle.RequiredItems {
	case model.RequireNone:
		return nil

	case model.RequireTakeoff:
		if !state.HasTakeoff {
			return []Violation{errorf(CodeTakeoffMissing, 0, "takeoff waypoint required")}
		}

	case model.RequireLanding:
		if !state.HasLanding {
			return []Violation{errorf(CodeLandingMissing, 0, "landing waypoint or pattern required")}
		}

	case model.RequireTakeoffAndLanding:
		if !state.HasTakeoff || !state.HasLanding {
			return []Violation{errorf(CodeTakeoffOrLandingMissing, 0, "takeoff or landing item missing")}
		}

	case model.RequireTakeoffLandSymmetric:
		if state.HasTakeoff && !state.HasLanding {
			return []Violation{errorf(CodeAddLandingOrDropTakeoff, 0, "add landing item or remove takeoff")}
		}
		if state.HasLanding && !state.HasTakeoff {
			return []Violation{errorf(CodeAddTakeoffOrDropLanding, 0, "add takeoff item or remove landing")}
		}
	}

	return nil
}
