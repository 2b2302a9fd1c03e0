// Package config loads flightcheck configuration from YAML with a .env
// overlay for deployment-specific values.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/internal/observability"
	"github.com/signalsfoundry/flightcheck/model"
)

// Config is the full flightcheck configuration.
type Config struct {
	Vehicle VehicleConfig `yaml:"vehicle"`
	Limits  LimitsConfig  `yaml:"limits"`

	// GeofenceFile points at a JSON fence definition; empty means no fence.
	GeofenceFile string `yaml:"geofence_file"`

	// MissionDir is where the file-backed mission store keeps its records.
	MissionDir       string `yaml:"mission_dir"`
	MissionCacheSize int    `yaml:"mission_cache_size"`

	MQTT MQTTConfig `yaml:"mqtt"`

	Logging logging.Config              `yaml:"logging"`
	Tracing observability.TracingConfig `yaml:"tracing"`
}

// VehicleConfig describes the vehicle the missions will be validated for.
type VehicleConfig struct {
	Type   string     `yaml:"type"` // rotary-wing | fixed-wing | vtol
	Landed bool       `yaml:"landed"`
	Home   HomeConfig `yaml:"home"`

	DefaultAcceptanceRadius float64  `yaml:"default_acceptance_radius"`
	LandingAngleDeg         *float64 `yaml:"landing_angle_deg"`
	ActuatorPWMMax          float64  `yaml:"actuator_pwm_max"`

	RequiredItems string `yaml:"required_items"` // none | takeoff | landing | both | symmetric
}

// HomeConfig is the home position snapshot used for offline validation.
type HomeConfig struct {
	Valid    bool    `yaml:"valid"`
	AltValid bool    `yaml:"alt_valid"`
	Lat      float64 `yaml:"lat"`
	Lon      float64 `yaml:"lon"`
	Alt      float64 `yaml:"alt"`
}

// LimitsConfig carries the distance bounds; values <= 0 disable a check.
type LimitsConfig struct {
	MaxDistanceToFirstWaypoint  float64 `yaml:"max_distance_to_first_waypoint"`
	MaxDistanceBetweenWaypoints float64 `yaml:"max_distance_between_waypoints"`
}

// MQTTConfig configures the optional fleet diagnostic publisher.
type MQTTConfig struct {
	BrokerURL string `yaml:"broker_url" env:"FLIGHTCHECK_MQTT_BROKER"`
	DeviceID  string `yaml:"device_id" env:"FLIGHTCHECK_DEVICE_ID"`
}

// Load reads the configuration file, defaulting the path from
// FLIGHTCHECK_CONFIG and then "config.yaml". A .env file in the working
// directory is loaded first so YAML values can reference the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("FLIGHTCHECK_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.MQTT.BrokerURL == "" {
		cfg.MQTT.BrokerURL = os.Getenv("FLIGHTCHECK_MQTT_BROKER")
	}
	if cfg.MQTT.DeviceID == "" {
		cfg.MQTT.DeviceID = os.Getenv("FLIGHTCHECK_DEVICE_ID")
	}
	if cfg.MissionCacheSize <= 0 {
		cfg.MissionCacheSize = 16
	}

	return &cfg, nil
}

// VehicleContext converts the vehicle section into the checker's context.
func (c *Config) VehicleContext() (model.VehicleContext, error) {
	vt, err := parseVehicleType(c.Vehicle.Type)
	if err != nil {
		return model.VehicleContext{}, err
	}
	policy, err := parsePolicy(c.Vehicle.RequiredItems)
	if err != nil {
		return model.VehicleContext{}, err
	}

	return model.VehicleContext{
		Type:   vt,
		Landed: c.Vehicle.Landed,
		Home: model.HomePosition{
			Valid:    c.Vehicle.Home.Valid,
			AltValid: c.Vehicle.Home.AltValid,
			Lat:      c.Vehicle.Home.Lat,
			Lon:      c.Vehicle.Home.Lon,
			Alt:      c.Vehicle.Home.Alt,
		},
		DefaultAcceptanceRadius: c.Vehicle.DefaultAcceptanceRadius,
		LandingAngleDeg:         c.Vehicle.LandingAngleDeg,
		ActuatorPWMMax:          c.Vehicle.ActuatorPWMMax,
		RequiredItems:           policy,
	}, nil
}

// CheckLimits converts the limits section.
func (c *Config) CheckLimits() core.Limits {
	return core.Limits{
		MaxDistanceToFirstWaypoint:  c.Limits.MaxDistanceToFirstWaypoint,
		MaxDistanceBetweenWaypoints: c.Limits.MaxDistanceBetweenWaypoints,
	}
}

func parseVehicleType(s string) (model.VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rotary-wing", "rotary", "multicopter", "mc":
		return model.VehicleRotaryWing, nil
	case "fixed-wing", "fw":
		return model.VehicleFixedWing, nil
	case "vtol":
		return model.VehicleVTOL, nil
	default:
		return 0, fmt.Errorf("unknown vehicle type %q", s)
	}
}

func parsePolicy(s string) (model.RequiredItemsPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return model.RequireNone, nil
	case "takeoff":
		return model.RequireTakeoff, nil
	case "landing":
		return model.RequireLanding, nil
	case "both":
		return model.RequireTakeoffAndLanding, nil
	case "symmetric":
		return model.RequireTakeoffLandSymmetric, nil
	default:
		return 0, fmt.Errorf("unknown required_items policy %q", s)
	}
}
