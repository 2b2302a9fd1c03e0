// Package api is the HTTP surface of flightcheckd: mission plans come in as
// JSON, one feasibility pass runs, and the full violation batch goes back
// with the verdict.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/internal/diag"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/internal/observability"
	"github.com/signalsfoundry/flightcheck/model"
	"github.com/signalsfoundry/flightcheck/store"
)

// CheckRequest is one inline mission to validate.
type CheckRequest struct {
	StorageID string              `json:"storage_id"`
	Items     []model.MissionItem `json:"items"`

	// VehicleType optionally overrides the configured airframe class for
	// this request: rotary-wing | fixed-wing | vtol.
	VehicleType string `json:"vehicle_type,omitempty"`
}

// CheckResponse mirrors the feasibility result plus the diagnostic batch.
type CheckResponse struct {
	Accepted   bool                `json:"accepted"`
	Warning    bool                `json:"warning"`
	Violations []ViolationResponse `json:"violations"`
}

// ViolationResponse is one finding in API form.
type ViolationResponse struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Item     int    `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Server handles feasibility requests against a configured vehicle context.
type Server struct {
	vehicle   model.VehicleContext
	limits    core.Limits
	fence     core.Geofence
	reporters diag.Multi
	collector *observability.CheckCollector
	log       logging.Logger
}

// NewServer builds the API surface. fence, reporters, and collector may be
// nil/empty.
func NewServer(vehicle model.VehicleContext, limits core.Limits, fence core.Geofence,
	reporters diag.Multi, collector *observability.CheckCollector, log logging.Logger) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		vehicle:   vehicle,
		limits:    limits,
		fence:     fence,
		reporters: reporters,
		collector: collector,
		log:       log,
	}
}

// Routes returns the handler tree, with metrics middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/missions/check", s.collector.Middleware("/v1/missions/check", http.HandlerFunc(s.handleCheck)))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, log := logging.WithRequestLogger(r.Context(), s.log)

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if err := ValidateCheckRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	vehicle := s.vehicle
	if req.VehicleType != "" {
		vt, err := parseVehicleType(req.VehicleType)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
			return
		}
		vehicle.Type = vt
	}

	storageID := req.StorageID
	if storageID == "" {
		storageID = "inline-" + logging.RequestIDFromContext(ctx)
	}

	// Each request gets its own store and recorder; the checker itself is
	// stateless across passes.
	missionStore := store.NewMemoryStore()
	if err := missionStore.PutMission(storageID, req.Items); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	recorder := &diag.Recorder{}
	reporters := append(diag.Multi{recorder}, s.reporters...)

	checker := core.NewChecker(missionStore,
		core.WithGeofence(s.fence),
		core.WithReporter(reporters),
		core.WithRecorder(s.collector),
		core.WithLogger(log),
	)

	mission := model.Mission{Count: uint(len(req.Items)), StorageID: storageID}
	report := checker.CheckMissionFeasible(ctx, mission, vehicle, s.limits)

	resp := CheckResponse{
		Accepted:   report.Accepted(),
		Warning:    report.Warning(),
		Violations: make([]ViolationResponse, 0, len(report.Violations)),
	}
	for _, v := range report.Violations {
		resp.Violations = append(resp.Violations, ViolationResponse{
			Severity: v.Severity.String(),
			Code:     string(v.Code),
			Item:     v.Index,
			Message:  v.Message,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseVehicleType(s string) (model.VehicleType, error) {
	switch s {
	case "rotary-wing":
		return model.VehicleRotaryWing, nil
	case "fixed-wing":
		return model.VehicleFixedWing, nil
	case "vtol":
		return model.VehicleVTOL, nil
	default:
		return 0, fmt.Errorf("unknown vehicle type %q", s)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	type errBody struct {
		Error string `json:"error"`
	}
	msg := "internal error"
	if errors.Is(err, ErrInvalidRequest) || status < http.StatusInternalServerError {
		msg = err.Error()
	}
	writeJSON(w, status, errBody{Error: msg})
}
