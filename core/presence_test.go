package core

import (
	"testing"

	"github.com/signalsfoundry/flightcheck/model"
)

func TestTakeoffLandAvailable(t *testing.T) {
	checker := NewChecker(failingStore{}) // the policy check never touches storage

	cases := []struct {
		name   string
		policy model.RequiredItemsPolicy
		state  PassState
		want   Code
	}{
		{"none never complains", model.RequireNone, PassState{}, ""},
		{"takeoff present", model.RequireTakeoff, PassState{HasTakeoff: true}, ""},
		{"takeoff missing", model.RequireTakeoff, PassState{}, CodeTakeoffMissing},
		{"landing present", model.RequireLanding, PassState{HasLanding: true}, ""},
		{"landing missing", model.RequireLanding, PassState{HasTakeoff: true}, CodeLandingMissing},
		{"both present", model.RequireTakeoffAndLanding, PassState{HasTakeoff: true, HasLanding: true}, ""},
		{"both, takeoff missing", model.RequireTakeoffAndLanding, PassState{HasLanding: true}, CodeTakeoffOrLandingMissing},
		{"both, landing missing", model.RequireTakeoffAndLanding, PassState{HasTakeoff: true}, CodeTakeoffOrLandingMissing},
		{"symmetric, neither", model.RequireTakeoffLandSymmetric, PassState{}, ""},
		{"symmetric, both", model.RequireTakeoffLandSymmetric, PassState{HasTakeoff: true, HasLanding: true}, ""},
		{"symmetric, takeoff only", model.RequireTakeoffLandSymmetric, PassState{HasTakeoff: true}, CodeAddLandingOrDropTakeoff},
		{"symmetric, landing only", model.RequireTakeoffLandSymmetric, PassState{HasLanding: true}, CodeAddTakeoffOrDropLanding},
		{"unknown policy passes", model.RequiredItemsPolicy(99), PassState{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vehicle := mcVehicle()
			vehicle.RequiredItems = tc.policy

			vs := checker.checkTakeoffLandAvailable(vehicle, tc.state)
			if tc.want == "" {
				if len(vs) != 0 {
					t.Fatalf("expected pass, got %v", vs)
				}
				return
			}
			if len(vs) != 1 || vs[0].Code != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, vs)
			}
		})
	}
}
