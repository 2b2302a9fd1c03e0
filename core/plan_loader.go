package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signalsfoundry/flightcheck/model"
)

// Plan is an uploaded mission plan: the stored items plus the handle they
// will be stored under. Plans are what the CLI and the HTTP surface ingest;
// the checker itself only ever sees the store.
type Plan struct {
	StorageID string              `json:"storage_id"`
	Items     []model.MissionItem `json:"items"`
}

// Mission returns the mission header describing this plan.
func (p *Plan) Mission() model.Mission {
	return model.Mission{
		Count:     uint(len(p.Items)),
		StorageID: p.StorageID,
	}
}

// LoadPlan reads a JSON mission plan from r.
//
// It fails only on JSON/structural errors. Semantic problems (unsupported
// commands, bad geometry, ordering) are deliberately left to the feasibility
// pass, so a structurally sound but unflyable plan still produces the full
// diagnostic batch instead of a parse error.
func LoadPlan(r io.Reader) (*Plan, error) {
	var plan Plan
	dec := json.NewDecoder(r)
	if err := dec.Decode(&plan); err != nil {
		return nil, fmt.Errorf("LoadPlan: decode failed: %w", err)
	}

	if strings.TrimSpace(plan.StorageID) == "" {
		plan.StorageID = "inline"
	}

	return &plan, nil
}
