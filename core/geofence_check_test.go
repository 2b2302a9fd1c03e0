package core

import (
	"testing"

	"github.com/signalsfoundry/flightcheck/model"
)

// fakeFence rejects items above a ceiling and records what it saw.
type fakeFence struct {
	homeRequired bool
	valid        bool
	ceiling      float64
	seen         []model.MissionItem
}

func (f *fakeFence) IsHomeRequired() bool { return f.homeRequired }
func (f *fakeFence) Valid() bool          { return f.valid }

func (f *fakeFence) Check(item model.MissionItem) bool {
	f.seen = append(f.seen, item)
	return item.Altitude <= f.ceiling
}

func TestGeofence(t *testing.T) {
	t.Run("no fence passes", func(t *testing.T) {
		checker, mission := newTestChecker(t, []model.MissionItem{wp(homeLat, homeLon, 50)})
		if vs := checker.checkGeofence(mission, fwVehicle()); len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
	})

	t.Run("home required without home rejects", func(t *testing.T) {
		fence := &fakeFence{homeRequired: true, valid: true, ceiling: 1000}
		vehicle := fwVehicle()
		vehicle.Home.Valid = false

		checker, mission := newTestChecker(t, []model.MissionItem{wp(homeLat, homeLon, 50)},
			WithGeofence(fence))
		vs := checker.checkGeofence(mission, vehicle)
		if len(vs) != 1 || vs[0].Code != CodeGeofenceHomeRequired {
			t.Fatalf("expected geofence-home-required, got %v", vs)
		}
	})

	t.Run("invalid fence passes", func(t *testing.T) {
		fence := &fakeFence{valid: false, ceiling: 0}
		checker, mission := newTestChecker(t, []model.MissionItem{wp(homeLat, homeLon, 50)},
			WithGeofence(fence))
		if vs := checker.checkGeofence(mission, fwVehicle()); len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if len(fence.seen) != 0 {
			t.Fatal("invalid fence should not be consulted")
		}
	})

	t.Run("altitude resolved to AMSL before checking", func(t *testing.T) {
		fence := &fakeFence{valid: true, ceiling: homeAlt + 100}
		checker, mission := newTestChecker(t, []model.MissionItem{wp(homeLat, homeLon, 50)},
			WithGeofence(fence))

		if vs := checker.checkGeofence(mission, fwVehicle()); len(vs) != 0 {
			t.Fatalf("expected pass, got %v", vs)
		}
		if len(fence.seen) != 1 {
			t.Fatalf("expected one fence consultation, got %d", len(fence.seen))
		}
		got := fence.seen[0]
		if got.AltitudeIsRelative || got.Altitude != homeAlt+50 {
			t.Fatalf("fence saw unresolved altitude: %+v", got)
		}
	})

	t.Run("breach cites the item", func(t *testing.T) {
		fence := &fakeFence{valid: true, ceiling: homeAlt + 100}
		items := []model.MissionItem{
			wp(homeLat, homeLon, 50),
			wp(homeLat+0.001, homeLon, 200), // above the ceiling once resolved
		}
		checker, mission := newTestChecker(t, items, WithGeofence(fence))
		vs := checker.checkGeofence(mission, fwVehicle())
		if len(vs) != 1 || vs[0].Code != CodeGeofenceViolation {
			t.Fatalf("expected geofence-violation, got %v", vs)
		}
		if vs[0].Index != 2 {
			t.Fatalf("expected item 2 cited, got %d", vs[0].Index)
		}
	})

	t.Run("relative altitude without home rejects", func(t *testing.T) {
		fence := &fakeFence{valid: true, ceiling: 1000}
		vehicle := fwVehicle()
		vehicle.Home.Valid = false

		checker, mission := newTestChecker(t, []model.MissionItem{wp(homeLat, homeLon, 50)},
			WithGeofence(fence))
		vs := checker.checkGeofence(mission, vehicle)
		if len(vs) != 1 || vs[0].Code != CodeGeofenceHomeRequired {
			t.Fatalf("expected geofence-home-required, got %v", vs)
		}
		if vs[0].Index != 1 {
			t.Fatalf("expected item 1 cited, got %d", vs[0].Index)
		}
	})
}
