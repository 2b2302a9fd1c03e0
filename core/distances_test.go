package core

import (
	"testing"

	"github.com/signalsfoundry/flightcheck/model"
)

func TestDistanceToFirstWaypoint(t *testing.T) {
	target := wp(homeLat+0.005, homeLon, 50) // ~556 m north of home
	dist := DistanceMeters(target.Lat, target.Lon, homeLat, homeLon)

	t.Run("within limit", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{target})
		if vs := checker.checkDistanceToFirstWaypoint(mission, fwVehicle(), dist*1.01); len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
	})

	t.Run("at the limit rejects", func(t *testing.T) {
		// the comparison is strict: only dist < max passes
		checker, mission := newTestChecker(t, []model.MissionItem{target})
		vs := checker.checkDistanceToFirstWaypoint(mission, fwVehicle(), dist)
		if len(vs) != 1 || vs[0].Code != CodeFirstWaypointTooFar {
			t.Fatalf("expected first-waypoint-too-far, got %v", vs)
		}
		if !vs[0].RaisesWarning {
			t.Fatal("distance rejections should raise the warning flag")
		}
	})

	t.Run("auxiliary items are skipped", func(t *testing.T) {
		items := []model.MissionItem{cmd(model.NavCmdDelay), target}
		checker, mission := newTestChecker(t, items)
		vs := checker.checkDistanceToFirstWaypoint(mission, fwVehicle(), dist*0.5)
		if len(vs) != 1 || vs[0].Index != 2 {
			t.Fatalf("expected rejection citing item 2, got %v", vs)
		}
	})

	t.Run("disabled when non-positive", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{target})
		if vs := checker.checkDistanceToFirstWaypoint(mission, fwVehicle(), 0); len(vs) != 0 {
			t.Fatalf("zero limit should disable the check, got %v", vs)
		}
	})

	t.Run("no position items pass", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{cmd(model.NavCmdDelay)})
		if vs := checker.checkDistanceToFirstWaypoint(mission, fwVehicle(), 1); len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
	})
}

func TestDistancesBetweenWaypoints(t *testing.T) {
	a := wp(homeLat, homeLon, 50)
	b := wp(homeLat+0.01, homeLon, 50) // ~1.1 km from a
	legDist := DistanceMeters(a.Lat, a.Lon, b.Lat, b.Lon)

	t.Run("at the limit passes", func(t *testing.T) {
		// only dist > max rejects
		checker, mission := newTestChecker(t, []model.MissionItem{a, b})
		if vs := checker.checkDistancesBetweenWaypoints(mission, legDist); len(vs) != 0 {
			t.Fatalf("expected pass at exactly the limit, got %v", vs)
		}
	})

	t.Run("over the limit rejects", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{a, b})
		vs := checker.checkDistancesBetweenWaypoints(mission, legDist*0.99)
		if len(vs) != 1 || vs[0].Code != CodeWaypointsTooFar {
			t.Fatalf("expected waypoints-too-far, got %v", vs)
		}
		if vs[0].Index != 2 || !vs[0].RaisesWarning {
			t.Fatalf("unexpected violation shape: %+v", vs[0])
		}
	})

	t.Run("auxiliary item does not reset the leg", func(t *testing.T) {
		items := []model.MissionItem{a, cmd(model.NavCmdDoSetServo), b}
		checker, mission := newTestChecker(t, items)
		vs := checker.checkDistancesBetweenWaypoints(mission, legDist*0.99)
		if len(vs) != 1 || vs[0].Code != CodeWaypointsTooFar {
			t.Fatalf("expected waypoints-too-far across the auxiliary item, got %v", vs)
		}
	})

	t.Run("coincident waypoints tolerated", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{a, a})
		if vs := checker.checkDistancesBetweenWaypoints(mission, 1000); len(vs) != 0 {
			t.Fatalf("coincident plain waypoints should pass, got %v", vs)
		}
	})

	t.Run("gate on top of a waypoint rejects", func(t *testing.T) {
		gate := a
		gate.NavCmd = model.NavCmdConditionGate

		checker, mission := newTestChecker(t, []model.MissionItem{a, gate})
		vs := checker.checkDistancesBetweenWaypoints(mission, 1000)
		if len(vs) != 1 || vs[0].Code != CodeGateTooClose {
			t.Fatalf("expected gate-too-close, got %v", vs)
		}

		// same result with the gate first
		checker, mission = newTestChecker(t, []model.MissionItem{gate, a})
		vs = checker.checkDistancesBetweenWaypoints(mission, 1000)
		if len(vs) != 1 || vs[0].Code != CodeGateTooClose {
			t.Fatalf("expected gate-too-close with gate first, got %v", vs)
		}
	})
}
