package core

import "github.com/signalsfoundry/flightcheck/model"

// navEpsilonPosition is the threshold below which an item's own acceptance
// radius counts as unset and the vehicle default applies.
const navEpsilonPosition = 0.001

// checkTakeoff validates every takeoff item's minimum height and the
// takeoff-first ordering rule, and records takeoff presence in the pass
// state.
//
// The takeoff height above home must strictly exceed the effective
// acceptance radius plus one metre, so the takeoff waypoint cannot be
// "reached" before the vehicle is actually airborne.
func (c *Checker) checkTakeoff(mission model.Mission, vehicle model.VehicleContext, state PassState) ([]Violation, PassState) {
	takeoffFirst := false
	takeoffIndex := -1

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}, state
		}

		if item.NavCmd != model.NavCmdTakeoff && item.NavCmd != model.NavCmdVTOLTakeoff {
			continue
		}

		takeoffAlt := item.Altitude
		if !item.AltitudeIsRelative {
			takeoffAlt = item.Altitude - vehicle.Home.Alt
		}

		acceptanceRadius := vehicle.DefaultAcceptanceRadius
		if item.AcceptanceRadius > navEpsilonPosition {
			acceptanceRadius = item.AcceptanceRadius
		}

		if takeoffAlt-1.0 < acceptanceRadius {
			return []Violation{errorf(CodeTakeoffTooLow, i+1,
				"takeoff altitude too low, minimum: %.1f m", acceptanceRadius+1.0)}, state
		}

		state.HasTakeoff = true

		if i == 0 {
			takeoffFirst = true
		} else if !takeoffFirst && takeoffIndex == -1 {
			takeoffIndex = i
		}
	}

	if takeoffIndex != -1 {
		// The takeoff is not item 0; it still counts as "first" when every
		// item ahead of it belongs to the pre-takeoff-tolerable subset.
		takeoffFirst = true
		for i := 0; i < takeoffIndex && takeoffFirst; i++ {
			item, vErr := c.readItem(mission, i)
			if vErr != nil {
				return []Violation{*vErr}, state
			}
			takeoffFirst = preTakeoffTolerable(item.NavCmd)
		}
	}

	if state.HasTakeoff && !takeoffFirst {
		return []Violation{errorf(CodeTakeoffNotFirst, takeoffIndex+1,
			"takeoff is not the first waypoint item")}, state
	}

	return nil, state
}
