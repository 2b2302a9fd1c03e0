// flightcheck validates a mission plan file against a configured vehicle and
// prints every diagnostic the feasibility pass produces. The exit code
// reflects the verdict: 0 accepted, 1 rejected, 2 on setup errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/geofence"
	"github.com/signalsfoundry/flightcheck/internal/config"
	"github.com/signalsfoundry/flightcheck/internal/diag"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/store"
)

func main() {
	configPath := flag.String("config", "", "path to the flightcheck config file")
	planPath := flag.String("plan", "", "path to a JSON mission plan")
	persist := flag.Bool("persist", false, "also save the plan into the configured mission store")
	flag.Parse()

	if *planPath == "" {
		fmt.Fprintln(os.Stderr, "flightcheck: -plan is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}

	log := logging.New(cfg.Logging)
	ctx := context.Background()

	vehicle, err := cfg.VehicleContext()
	if err != nil {
		fatalf("vehicle config: %v", err)
	}

	f, err := os.Open(*planPath)
	if err != nil {
		fatalf("open plan: %v", err)
	}
	plan, err := core.LoadPlan(f)
	f.Close()
	if err != nil {
		fatalf("load plan: %v", err)
	}

	missionStore := store.NewMemoryStore()
	if err := missionStore.PutMission(plan.StorageID, plan.Items); err != nil {
		fatalf("stage mission: %v", err)
	}

	if *persist {
		if cfg.MissionDir == "" {
			fatalf("persist requested but mission_dir is not configured")
		}
		fileStore, err := store.NewFileStore(cfg.MissionDir, cfg.MissionCacheSize)
		if err != nil {
			fatalf("open mission store: %v", err)
		}
		if err := fileStore.SaveMission(plan.StorageID, plan.Items); err != nil {
			fatalf("save mission: %v", err)
		}
		log.Info(ctx, "mission persisted",
			logging.String("storage_id", plan.StorageID),
			logging.String("dir", cfg.MissionDir),
		)
	}

	opts := []core.Option{core.WithLogger(log)}

	if cfg.GeofenceFile != "" {
		gf, err := os.Open(cfg.GeofenceFile)
		if err != nil {
			fatalf("open geofence: %v", err)
		}
		fence, err := geofence.Load(gf)
		gf.Close()
		if err != nil {
			fatalf("load geofence: %v", err)
		}
		opts = append(opts, core.WithGeofence(fence))
	}

	recorder := &diag.Recorder{}
	opts = append(opts, core.WithReporter(diag.Multi{recorder, diag.NewLogReporter(log)}))

	checker := core.NewChecker(missionStore, opts...)
	report := checker.CheckMissionFeasible(ctx, plan.Mission(), vehicle, cfg.CheckLimits())

	for _, v := range report.Violations {
		fmt.Println(v)
	}

	if !report.Accepted() {
		fmt.Printf("mission %q rejected (%d findings)\n", plan.StorageID, len(report.Violations))
		os.Exit(1)
	}
	if report.Warning() {
		fmt.Printf("mission %q accepted with warnings\n", plan.StorageID)
		return
	}
	fmt.Printf("mission %q accepted\n", plan.StorageID)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "flightcheck: "+format+"\n", args...)
	os.Exit(2)
}
