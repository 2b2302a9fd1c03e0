// flightcheckd serves mission feasibility checks over HTTP, with Prometheus
// metrics and optional OTLP tracing and MQTT fleet diagnostics.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/geofence"
	"github.com/signalsfoundry/flightcheck/internal/api"
	"github.com/signalsfoundry/flightcheck/internal/config"
	"github.com/signalsfoundry/flightcheck/internal/diag"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/internal/observability"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the check API listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	configPath := flag.String("config", "", "path to the flightcheck config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("flightcheckd: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.Logging)
	ctx := context.Background()

	vehicle, err := cfg.VehicleContext()
	if err != nil {
		log.Error(ctx, "invalid vehicle config", logging.Err(err))
		os.Exit(1)
	}

	collector, err := observability.NewCheckCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		os.Exit(1)
	}

	tracingCfg := cfg.Tracing
	if !tracingCfg.Enabled {
		tracingCfg = observability.TracingConfigFromEnv()
	}
	shutdownTracing, err := observability.InitTracing(ctx, tracingCfg, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}

	var fence core.Geofence
	if cfg.GeofenceFile != "" {
		f, err := os.Open(cfg.GeofenceFile)
		if err != nil {
			log.Error(ctx, "failed to open geofence", logging.String("path", cfg.GeofenceFile), logging.Err(err))
			os.Exit(1)
		}
		loaded, err := geofence.Load(f)
		f.Close()
		if err != nil {
			log.Error(ctx, "failed to load geofence", logging.Err(err))
			os.Exit(1)
		}
		fence = loaded
		log.Info(ctx, "geofence loaded", logging.String("path", cfg.GeofenceFile))
	}

	reporters := diag.Multi{diag.NewLogReporter(log)}
	if cfg.MQTT.BrokerURL != "" {
		client, err := diag.Connect(cfg.MQTT.BrokerURL, "flightcheckd-"+cfg.MQTT.DeviceID)
		if err != nil {
			log.Error(ctx, "failed to connect to MQTT broker", logging.Err(err))
			os.Exit(1)
		}
		defer client.Disconnect(250)
		reporters = append(reporters, diag.NewMQTTReporter(client, cfg.MQTT.DeviceID, log))
		log.Info(ctx, "fleet diagnostics enabled",
			logging.String("broker", cfg.MQTT.BrokerURL),
			logging.String("device_id", cfg.MQTT.DeviceID),
		)
	}

	metricsSrv := serveMetrics(*metricsAddr, collector, log)

	server := api.NewServer(vehicle, cfg.CheckLimits(), fence, reporters, collector, log)
	apiSrv := &http.Server{
		Addr:    *addr,
		Handler: server.Routes(),
	}

	log.Info(ctx, "starting check API",
		logging.String("addr", *addr),
		logging.String("vehicle_type", vehicle.Type.String()),
	)
	go func() {
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "check API exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func serveMetrics(addr string, collector *observability.CheckCollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
