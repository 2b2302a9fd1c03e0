package core

import "github.com/signalsfoundry/flightcheck/model"

// minGateSpacingM is the spacing under which two consecutive position items
// no longer define a usable direction vector. Only condition gates care.
const minGateSpacingM = 0.05

// checkDistanceToFirstWaypoint finds the first position-bearing item and
// verifies it lies within maxDistance of home. Disabled when maxDistance is
// not positive; a mission with no position-bearing items passes.
func (c *Checker) checkDistanceToFirstWaypoint(mission model.Mission, vehicle model.VehicleContext, maxDistance float64) []Violation {
	if maxDistance <= 0 {
		return nil
	}

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}
		}

		if !ItemContainsPosition(item) {
			continue
		}

		dist := c.distance(item.Lat, item.Lon, vehicle.Home.Lat, vehicle.Home.Lon)
		if dist < maxDistance {
			return nil
		}

		return []Violation{withWarningFlag(errorf(CodeFirstWaypointTooFar, i+1,
			"first waypoint too far away: %.0f m (maximum: %.0f m)", dist, maxDistance))}
	}

	// No waypoints at all, so the vehicle will not fly far away.
	return nil
}

// checkDistancesBetweenWaypoints compares each position-bearing item against
// the previous position-bearing item (non-position items are skipped and do
// not reset the comparison point). A spacing strictly over maxDistance
// rejects. Separately, two consecutive position items closer than
// minGateSpacingM reject only when one of them is a condition gate; plain
// coincident waypoints are tolerated.
func (c *Checker) checkDistancesBetweenWaypoints(mission model.Mission, maxDistance float64) []Violation {
	if maxDistance <= 0 {
		return nil
	}

	havePrev := false
	var prevLat, prevLon float64
	var prevCmd model.NavCommand

	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}
		}

		if !ItemContainsPosition(item) {
			continue
		}

		if havePrev {
			dist := c.distance(item.Lat, item.Lon, prevLat, prevLon)

			if dist > maxDistance {
				return []Violation{withWarningFlag(errorf(CodeWaypointsTooFar, i+1,
					"distance between waypoints too far: %.0f m (maximum: %.0f m)", dist, maxDistance))}
			}

			if dist < minGateSpacingM &&
				(item.NavCmd == model.NavCmdConditionGate || prevCmd == model.NavCmdConditionGate) {
				return []Violation{withWarningFlag(errorf(CodeGateTooClose, i+1,
					"distance between waypoint and gate too close: %.3f m (minimum: %.3f m)",
					dist, minGateSpacingM))}
			}
		}

		havePrev = true
		prevLat = item.Lat
		prevLon = item.Lon
		prevCmd = item.NavCmd
	}

	return nil
}
