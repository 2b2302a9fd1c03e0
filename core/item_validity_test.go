package core

import (
	"strings"
	"testing"

	"github.com/signalsfoundry/flightcheck/model"
)

func setServo(index, value float64) model.MissionItem {
	item := cmd(model.NavCmdDoSetServo)
	item.Params[0] = index
	item.Params[1] = value
	return item
}

// An unsupported command rejects, citing the 1-based item index and the
// command code.
func TestItemValidity_UnsupportedCommandCitesItem(t *testing.T) {
	items := []model.MissionItem{
		cmd(model.NavCmdDelay),
		{NavCmd: model.NavCommand(666)},
	}
	checker, mission := newTestChecker(t, items)

	vs := checker.checkMissionItemValidity(mission, mcVehicle())
	if len(vs) != 1 {
		t.Fatalf("expected one violation, got %v", vs)
	}
	if vs[0].Code != CodeUnsupportedCommand {
		t.Fatalf("unexpected code %s", vs[0].Code)
	}
	if vs[0].Index != 2 {
		t.Fatalf("expected item 2, got %d", vs[0].Index)
	}
	if !strings.Contains(vs[0].Message, "666") {
		t.Fatalf("message does not name the command: %q", vs[0].Message)
	}
}

// Actuator index bound is inclusive: 5 passes, 6 rejects.
func TestItemValidity_ActuatorIndexBoundary(t *testing.T) {
	checker, mission := newTestChecker(t, []model.MissionItem{setServo(5, 1500)})
	if vs := checker.checkMissionItemValidity(mission, mcVehicle()); len(vs) != 0 {
		t.Fatalf("index 5 should pass, got %v", vs)
	}

	checker, mission = newTestChecker(t, []model.MissionItem{setServo(6, 1500)})
	vs := checker.checkMissionItemValidity(mission, mcVehicle())
	if len(vs) != 1 || vs[0].Code != CodeActuatorIndex {
		t.Fatalf("index 6 should reject with actuator-index, got %v", vs)
	}
}

// Actuator value must lie in the symmetric configured range.
func TestItemValidity_ActuatorValueRange(t *testing.T) {
	vehicle := mcVehicle() // unconfigured: default 2000

	checker, mission := newTestChecker(t, []model.MissionItem{setServo(0, 2000)})
	if vs := checker.checkMissionItemValidity(mission, vehicle); len(vs) != 0 {
		t.Fatalf("value 2000 should pass, got %v", vs)
	}

	checker, mission = newTestChecker(t, []model.MissionItem{setServo(0, -2001)})
	vs := checker.checkMissionItemValidity(mission, vehicle)
	if len(vs) != 1 || vs[0].Code != CodeActuatorValue {
		t.Fatalf("value -2001 should reject with actuator-value, got %v", vs)
	}

	// tighter configured range applies
	vehicle.ActuatorPWMMax = 1000
	checker, mission = newTestChecker(t, []model.MissionItem{setServo(0, 1500)})
	vs = checker.checkMissionItemValidity(mission, vehicle)
	if len(vs) != 1 || vs[0].Code != CodeActuatorValue {
		t.Fatalf("value outside configured range should reject, got %v", vs)
	}
}

// A mission whose first item is LAND is rejected only while the vehicle is
// on the ground.
func TestItemValidity_StartsWithLandingWhileLanded(t *testing.T) {
	items := []model.MissionItem{
		{NavCmd: model.NavCmdLand, Lat: homeLat, Lon: homeLon},
	}

	vehicle := mcVehicle()
	vehicle.Landed = true
	checker, mission := newTestChecker(t, items)
	vs := checker.checkMissionItemValidity(mission, vehicle)
	if len(vs) != 1 || vs[0].Code != CodeStartsWithLanding {
		t.Fatalf("expected starts-with-landing, got %v", vs)
	}

	vehicle.Landed = false
	if vs := checker.checkMissionItemValidity(mission, vehicle); len(vs) != 0 {
		t.Fatalf("airborne vehicle should pass, got %v", vs)
	}
}

func TestItemValidity_StorageFailure(t *testing.T) {
	checker := NewChecker(failingStore{})
	vs := checker.checkMissionItemValidity(model.Mission{Count: 1, StorageID: "x"}, mcVehicle())
	if len(vs) != 1 || vs[0].Code != CodeStorageFailure {
		t.Fatalf("expected storage-failure, got %v", vs)
	}
}
