package core

import "github.com/signalsfoundry/flightcheck/model"

// checkGeofence verifies that every position-bearing item sits inside the
// configured boundary, with altitudes resolved to AMSL first. Without a
// usable boundary the check passes.
func (c *Checker) checkGeofence(mission model.Mission, vehicle model.VehicleContext) []Violation {
	if c.fence == nil {
		return nil
	}

	if c.fence.IsHomeRequired() && !vehicle.Home.Valid {
		return []Violation{errorf(CodeGeofenceHomeRequired, 0,
			"geofence requires a valid home position")}
	}

	if !c.fence.Valid() {
		return nil
	}

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}
		}

		if item.AltitudeIsRelative && !vehicle.Home.Valid {
			return []Violation{errorf(CodeGeofenceHomeRequired, i+1,
				"geofence requires a valid home position")}
		}

		// The fence checks against AMSL altitude.
		item.Altitude = resolveAltitudeAMSL(item, vehicle.Home.Alt)
		item.AltitudeIsRelative = false

		if ItemContainsPosition(item) && !c.fence.Check(item) {
			return []Violation{errorf(CodeGeofenceViolation, i+1,
				"geofence violation for waypoint %d", i+1)}
		}
	}

	return nil
}
