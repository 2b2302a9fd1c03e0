package model

// VehicleType is the airframe class the mission will fly on. The feasibility
// rules branch on it for landing validation.
type VehicleType int

const (
	VehicleRotaryWing VehicleType = iota
	VehicleFixedWing
	VehicleVTOL
)

func (t VehicleType) String() string {
	switch t {
	case VehicleRotaryWing:
		return "rotary-wing"
	case VehicleFixedWing:
		return "fixed-wing"
	case VehicleVTOL:
		return "vtol"
	default:
		return "unknown"
	}
}

// RequiredItemsPolicy selects which structural items a mission must carry to
// be accepted.
type RequiredItemsPolicy int

const (
	RequireNone RequiredItemsPolicy = iota
	RequireTakeoff
	RequireLanding
	RequireTakeoffAndLanding
	// RequireTakeoffLandSymmetric accepts a mission with both a takeoff and
	// a landing, or neither, but not one without the other.
	RequireTakeoffLandSymmetric
)

// HomePosition is the vehicle's home/launch reference point. Validity is
// split: the horizontal fix and the altitude reference can be known
// independently.
type HomePosition struct {
	Valid    bool // lat/lon are usable
	AltValid bool // altitude reference is usable
	Lat      float64
	Lon      float64
	Alt      float64 // metres AMSL
}

// DefaultActuatorPWMMax bounds set-servo actuator values when the vehicle
// context does not configure a range (microseconds, symmetric around zero).
const DefaultActuatorPWMMax = 2000

// VehicleContext is everything the checker needs to know about the vehicle
// and its configuration. It is a read-only snapshot for one check pass.
type VehicleContext struct {
	Type   VehicleType
	Landed bool
	Home   HomePosition

	// DefaultAcceptanceRadius applies to items that do not set their own
	// acceptance radius (metres).
	DefaultAcceptanceRadius float64

	// LandingAngleDeg is the configured maximum landing glide angle in
	// degrees. Nil means the parameter is not configured; fixed-wing
	// landings are then rejected fail-closed.
	LandingAngleDeg *float64

	// ActuatorPWMMax overrides DefaultActuatorPWMMax when positive.
	ActuatorPWMMax float64

	RequiredItems RequiredItemsPolicy
}

// ActuatorMax returns the configured symmetric actuator value bound.
func (v VehicleContext) ActuatorMax() float64 {
	if v.ActuatorPWMMax > 0 {
		return v.ActuatorPWMMax
	}
	return DefaultActuatorPWMMax
}
