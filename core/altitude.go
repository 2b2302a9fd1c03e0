package core

import "github.com/signalsfoundry/flightcheck/model"

// checkHomePositionAltitude is mostly advisory: a waypoint resolved below
// the home altitude only raises the warning flag and the scan continues. Two
// conditions stay hard: a position-bearing item using relative altitude
// while the home altitude is unknown, and a storage read failure (which also
// raises the warning flag, so the operator sees the pass was incomplete).
func (c *Checker) checkHomePositionAltitude(mission model.Mission, vehicle model.VehicleContext) []Violation {
	var out []Violation

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			out = append(out, withWarningFlag(*vErr))
			return out
		}

		if item.AltitudeIsRelative && !vehicle.Home.AltValid && ItemContainsPosition(item) {
			out = append(out, withWarningFlag(errorf(CodeRelativeAltitudeNoHome, i+1,
				"no home position, waypoint %d uses relative altitude", i+1)))
			return out
		}

		wpAlt := resolveAltitudeAMSL(item, vehicle.Home.Alt)
		if vehicle.Home.AltValid && vehicle.Home.Alt > wpAlt && ItemContainsPosition(item) {
			out = append(out, warnf(CodeWaypointBelowHome, i+1, "waypoint %d below home", i+1))
		}
	}

	return out
}
