package core

import "github.com/signalsfoundry/flightcheck/model"

// checkMissionItemValidity scans every item against the command support
// table and the per-command parameter bounds. The scan stops at the first
// hard violation; the orchestrator still runs the remaining sub-checks.
func (c *Checker) checkMissionItemValidity(mission model.Mission, vehicle model.VehicleContext) []Violation {
	for i := 0; i < int(mission.Count); i++ {
		item, vErr := c.readItem(mission, i)
		if vErr != nil {
			return []Violation{*vErr}
		}

		if !CommandSupported(item.NavCmd) {
			return []Violation{errorf(CodeUnsupportedCommand, i+1,
				"unsupported command %d", item.NavCmd)}
		}

		if item.NavCmd == model.NavCmdDoSetServo {
			// Params[0] is the actuator index, Params[1] the commanded value.
			if item.Params[0] < 0 || item.Params[0] > 5 {
				return []Violation{errorf(CodeActuatorIndex, i+1,
					"actuator number %d is out of bounds 0..5", int(item.Params[0]))}
			}

			max := vehicle.ActuatorMax()
			if item.Params[1] < -max || item.Params[1] > max {
				return []Violation{errorf(CodeActuatorValue, i+1,
					"actuator value %d is out of bounds -%d..%d",
					int(item.Params[1]), int(max), int(max))}
			}
		}

		// A mission must not start with a land command while the vehicle is
		// still on the ground.
		if i == 0 && item.NavCmd == model.NavCmdLand && vehicle.Landed {
			return []Violation{errorf(CodeStartsWithLanding, 1,
				"mission starts with a landing while the vehicle is landed")}
		}
	}

	return nil
}
