package core

import (
	"testing"

	"github.com/signalsfoundry/flightcheck/model"
)

func TestTakeoffMinimumHeight(t *testing.T) {
	// fwVehicle has a default acceptance radius of 10 m, so the takeoff
	// altitude must be at least 11 m above home.
	t.Run("at the minimum passes", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{takeoff(11.0)})
		vs, state := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if !state.HasTakeoff {
			t.Fatal("takeoff presence not recorded")
		}
	})

	t.Run("below the minimum rejects", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{takeoff(10.999)})
		vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 1 || vs[0].Code != CodeTakeoffTooLow {
			t.Fatalf("expected takeoff-too-low, got %v", vs)
		}
	})

	t.Run("item radius overrides the vehicle default", func(t *testing.T) {
		item := takeoff(11.0)
		item.AcceptanceRadius = 20

		checker, mission := newTestChecker(t, []model.MissionItem{item})
		vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 1 || vs[0].Code != CodeTakeoffTooLow {
			t.Fatalf("expected takeoff-too-low with item radius 20, got %v", vs)
		}

		item.Altitude = 21.0
		checker, mission = newTestChecker(t, []model.MissionItem{item})
		if vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{}); len(vs) != 0 {
			t.Fatalf("expected pass at 21 m, got %v", vs)
		}
	})

	t.Run("near-zero item radius falls back to the default", func(t *testing.T) {
		item := takeoff(11.0)
		item.AcceptanceRadius = 0.0005 // below the position epsilon

		checker, mission := newTestChecker(t, []model.MissionItem{item})
		if vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{}); len(vs) != 0 {
			t.Fatalf("expected pass against the default radius, got %v", vs)
		}
	})

	t.Run("absolute altitude resolved against home", func(t *testing.T) {
		item := takeoff(homeAlt + 11.0)
		item.AltitudeIsRelative = false

		checker, mission := newTestChecker(t, []model.MissionItem{item})
		if vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{}); len(vs) != 0 {
			t.Fatalf("expected pass with AMSL altitude, got %v", vs)
		}
	})
}

func TestTakeoffOrdering(t *testing.T) {
	t.Run("auxiliary items before takeoff are fine", func(t *testing.T) {
		items := []model.MissionItem{
			cmd(model.NavCmdDoSetHome),
			cmd(model.NavCmdDoChangeSpeed),
			takeoff(50),
		}
		checker, mission := newTestChecker(t, items)
		vs, state := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if !state.HasTakeoff {
			t.Fatal("takeoff presence not recorded")
		}
	})

	t.Run("later takeoffs do not spoil a takeoff at item 0", func(t *testing.T) {
		items := []model.MissionItem{
			takeoff(50),
			cmd(model.NavCmdDelay),
			takeoff(50),
		}
		checker, mission := newTestChecker(t, items)
		vs, state := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if !state.HasTakeoff {
			t.Fatal("takeoff presence not recorded")
		}
	})

	t.Run("waypoint before takeoff rejects", func(t *testing.T) {
		items := []model.MissionItem{
			wp(homeLat, homeLon, 50),
			takeoff(50),
		}
		checker, mission := newTestChecker(t, items)
		vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 1 || vs[0].Code != CodeTakeoffNotFirst {
			t.Fatalf("expected takeoff-not-first, got %v", vs)
		}
		if vs[0].Index != 2 {
			t.Fatalf("expected the takeoff item cited, got %d", vs[0].Index)
		}
	})

	t.Run("idle before takeoff rejects", func(t *testing.T) {
		// idle is supported but not tolerated before the takeoff
		items := []model.MissionItem{
			cmd(model.NavCmdIdle),
			takeoff(50),
		}
		checker, mission := newTestChecker(t, items)
		vs, _ := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 1 || vs[0].Code != CodeTakeoffNotFirst {
			t.Fatalf("expected takeoff-not-first, got %v", vs)
		}
	})

	t.Run("no takeoff at all passes", func(t *testing.T) {
		items := []model.MissionItem{wp(homeLat, homeLon, 50)}
		checker, mission := newTestChecker(t, items)
		vs, state := checker.checkTakeoff(mission, fwVehicle(), PassState{})
		if len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if state.HasTakeoff {
			t.Fatal("takeoff presence wrongly recorded")
		}
	})

	t.Run("vtol takeoff counts", func(t *testing.T) {
		item := cmd(model.NavCmdVTOLTakeoff)
		item.Lat = homeLat
		item.Lon = homeLon
		item.Altitude = 50
		item.AltitudeIsRelative = true

		checker, mission := newTestChecker(t, []model.MissionItem{item})
		vs, state := checker.checkTakeoff(mission, vtolVehicle(), PassState{})
		if len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if !state.HasTakeoff {
			t.Fatal("vtol takeoff presence not recorded")
		}
	})
}
