package diag

import (
	"context"
	"testing"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/model"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	mission := model.Mission{Count: 2, StorageID: "m1"}

	r.ReportViolation(context.Background(), mission, core.Violation{Code: core.CodeTakeoffTooLow, Index: 1})
	r.ReportViolation(context.Background(), mission, core.Violation{Code: core.CodeLandingMissing})

	got := r.Violations()
	if len(got) != 2 || got[0].Code != core.CodeTakeoffTooLow || got[1].Code != core.CodeLandingMissing {
		t.Fatalf("unexpected recordings: %+v", got)
	}

	// the returned slice is a copy
	got[0].Code = "mutated"
	if r.Violations()[0].Code != core.CodeTakeoffTooLow {
		t.Fatal("Violations returned an aliased slice")
	}

	r.Reset()
	if len(r.Violations()) != 0 {
		t.Fatal("Reset did not clear the recorder")
	}
}

func TestMulti(t *testing.T) {
	a := &Recorder{}
	b := &Recorder{}
	m := Multi{a, nil, b} // nil entries are skipped

	m.ReportViolation(context.Background(), model.Mission{StorageID: "m1"},
		core.Violation{Code: core.CodeGeofenceViolation, Index: 3})

	if len(a.Violations()) != 1 || len(b.Violations()) != 1 {
		t.Fatalf("fan-out failed: a=%d b=%d", len(a.Violations()), len(b.Violations()))
	}
}
