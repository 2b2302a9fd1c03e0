package model

// NavCommand identifies what a mission item does. Values follow the MAVLink
// MAV_CMD numbering so that uploaded plans round-trip without translation.
type NavCommand uint16

const (
	NavCmdIdle                     NavCommand = 0
	NavCmdWaypoint                 NavCommand = 16
	NavCmdLoiterUnlimited          NavCommand = 17
	NavCmdLoiterTimeLimit          NavCommand = 19
	NavCmdReturnToLaunch           NavCommand = 20
	NavCmdLand                     NavCommand = 21
	NavCmdTakeoff                  NavCommand = 22
	NavCmdLoiterToAlt              NavCommand = 31
	NavCmdVTOLTakeoff              NavCommand = 84
	NavCmdVTOLLand                 NavCommand = 85
	NavCmdDelay                    NavCommand = 93
	NavCmdDoWinch                  NavCommand = 42600
	NavCmdDoGripper                NavCommand = 211
	NavCmdDoJump                   NavCommand = 177
	NavCmdDoChangeSpeed            NavCommand = 178
	NavCmdDoSetHome                NavCommand = 179
	NavCmdDoSetServo               NavCommand = 183
	NavCmdDoSetActuator            NavCommand = 187
	NavCmdDoLandStart              NavCommand = 189
	NavCmdDoSetROILocation         NavCommand = 195
	NavCmdDoSetROIWPNextOffset     NavCommand = 196
	NavCmdDoSetROINone             NavCommand = 197
	NavCmdDoControlVideo           NavCommand = 200
	NavCmdDoSetROI                 NavCommand = 201
	NavCmdDoDigicamControl         NavCommand = 203
	NavCmdDoMountConfigure         NavCommand = 204
	NavCmdDoMountControl           NavCommand = 205
	NavCmdDoSetCamTriggerDist      NavCommand = 206
	NavCmdDoSetCamTriggerInterval  NavCommand = 214
	NavCmdObliqueSurvey            NavCommand = 260
	NavCmdSetCameraMode            NavCommand = 530
	NavCmdSetCameraZoom            NavCommand = 531
	NavCmdSetCameraFocus           NavCommand = 532
	NavCmdDoGimbalManagerPitchYaw  NavCommand = 1000
	NavCmdDoGimbalManagerConfigure NavCommand = 1001
	NavCmdImageStartCapture        NavCommand = 2000
	NavCmdImageStopCapture         NavCommand = 2001
	NavCmdDoTriggerControl         NavCommand = 2003
	NavCmdVideoStartCapture        NavCommand = 2500
	NavCmdVideoStopCapture         NavCommand = 2501
	NavCmdConditionGate            NavCommand = 4501
	NavCmdDoVTOLTransition         NavCommand = 3000
)

// Mission identifies one uploaded flight plan: the number of stored items and
// the opaque handle used to read them back from the item store. It is
// immutable for the duration of a feasibility check.
type Mission struct {
	Count     uint
	StorageID string
}

// MissionItem is one step of an uploaded plan, either a navigation command or
// an auxiliary "DO" command.
type MissionItem struct {
	NavCmd NavCommand `msgpack:"cmd" json:"cmd"`

	Lat float64 `msgpack:"lat" json:"lat"`
	Lon float64 `msgpack:"lon" json:"lon"`

	// Altitude is metres, AMSL unless AltitudeIsRelative is set, in which
	// case it is relative to the home position.
	Altitude           float64 `msgpack:"alt" json:"alt"`
	AltitudeIsRelative bool    `msgpack:"alt_rel" json:"alt_rel"`

	// AcceptanceRadius <= 0 means the vehicle default applies.
	AcceptanceRadius float64 `msgpack:"accept_radius" json:"accept_radius"`

	// LoiterRadius is signed; the sign encodes the turn direction.
	LoiterRadius float64 `msgpack:"loiter_radius" json:"loiter_radius"`

	// Params carries command-specific values, e.g. actuator index and value
	// for a set-servo item.
	Params [4]float64 `msgpack:"params" json:"params"`
}
