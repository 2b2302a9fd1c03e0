package core

import "github.com/signalsfoundry/flightcheck/model"

// capability is a bitmask describing how the checker may treat a command.
type capability uint8

const (
	// capSupported marks commands the vehicle understands at all. Anything
	// else rejects the mission outright.
	capSupported capability = 1 << iota

	// capPosition marks commands whose items carry meaningful coordinates.
	capPosition

	// capPreTakeoff marks commands tolerated before the first takeoff item.
	// This is deliberately narrower than capSupported: idle and set-actuator
	// are understood commands but are not allowed ahead of a takeoff.
	capPreTakeoff
)

// commandCaps is the single source of truth for command classification. A
// command absent from the table is unsupported.
var commandCaps = map[model.NavCommand]capability{
	model.NavCmdIdle:             capSupported,
	model.NavCmdWaypoint:         capSupported | capPosition,
	model.NavCmdLoiterUnlimited:  capSupported | capPosition,
	model.NavCmdLoiterTimeLimit:  capSupported | capPosition,
	model.NavCmdReturnToLaunch:   capSupported,
	model.NavCmdLand:             capSupported | capPosition,
	model.NavCmdTakeoff:          capSupported | capPosition,
	model.NavCmdLoiterToAlt:      capSupported | capPosition,
	model.NavCmdVTOLTakeoff:      capSupported | capPosition,
	model.NavCmdVTOLLand:         capSupported | capPosition,
	model.NavCmdDelay:            capSupported | capPreTakeoff,
	model.NavCmdConditionGate:    capSupported | capPosition,
	model.NavCmdDoWinch:          capSupported,
	model.NavCmdDoGripper:        capSupported,
	model.NavCmdDoJump:           capSupported | capPreTakeoff,
	model.NavCmdDoChangeSpeed:    capSupported | capPreTakeoff,
	model.NavCmdDoSetHome:        capSupported | capPreTakeoff,
	model.NavCmdDoSetServo:       capSupported | capPreTakeoff,
	model.NavCmdDoSetActuator:    capSupported,
	model.NavCmdDoLandStart:      capSupported | capPreTakeoff,
	model.NavCmdDoTriggerControl: capSupported | capPreTakeoff,
	model.NavCmdDoDigicamControl: capSupported | capPreTakeoff,

	model.NavCmdImageStartCapture: capSupported | capPreTakeoff,
	model.NavCmdImageStopCapture:  capSupported | capPreTakeoff,
	model.NavCmdVideoStartCapture: capSupported | capPreTakeoff,
	model.NavCmdVideoStopCapture:  capSupported | capPreTakeoff,
	model.NavCmdDoControlVideo:    capSupported | capPreTakeoff,

	model.NavCmdDoMountConfigure:         capSupported | capPreTakeoff,
	model.NavCmdDoMountControl:           capSupported | capPreTakeoff,
	model.NavCmdDoGimbalManagerPitchYaw:  capSupported | capPreTakeoff,
	model.NavCmdDoGimbalManagerConfigure: capSupported | capPreTakeoff,

	model.NavCmdDoSetROI:             capSupported | capPreTakeoff,
	model.NavCmdDoSetROILocation:     capSupported | capPreTakeoff,
	model.NavCmdDoSetROIWPNextOffset: capSupported | capPreTakeoff,
	model.NavCmdDoSetROINone:         capSupported | capPreTakeoff,

	model.NavCmdDoSetCamTriggerDist:     capSupported | capPreTakeoff,
	model.NavCmdObliqueSurvey:           capSupported | capPreTakeoff,
	model.NavCmdDoSetCamTriggerInterval: capSupported | capPreTakeoff,
	model.NavCmdSetCameraMode:           capSupported | capPreTakeoff,
	model.NavCmdSetCameraZoom:           capSupported | capPreTakeoff,
	model.NavCmdSetCameraFocus:          capSupported | capPreTakeoff,
	model.NavCmdDoVTOLTransition:        capSupported | capPreTakeoff,
}

// CommandSupported reports whether the command is in the support table.
func CommandSupported(cmd model.NavCommand) bool {
	return commandCaps[cmd]&capSupported != 0
}

// ItemContainsPosition reports whether the item carries meaningful
// coordinates that distance and geofence checks should look at.
func ItemContainsPosition(item model.MissionItem) bool {
	return commandCaps[item.NavCmd]&capPosition != 0
}

// preTakeoffTolerable reports whether the command may appear before the
// first takeoff item without invalidating the takeoff-first rule.
func preTakeoffTolerable(cmd model.NavCommand) bool {
	return commandCaps[cmd]&capPreTakeoff != 0
}
