// Package geofence evaluates permitted-operating-area boundaries for the
// feasibility checker. A fence is a set of inclusion shapes (polygons and
// circles) plus an optional altitude ceiling; an item passes when it lies
// inside at least one shape and below the ceiling.
package geofence

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/signalsfoundry/flightcheck/model"
)

// earthRadiusM matches the checker's great-circle geometry.
const earthRadiusM = 6371000.0

// Point is a fence vertex in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Polygon is an inclusion area described by its vertices, implicitly closed.
type Polygon struct {
	Points []Point `json:"points"`
}

// Circle is an inclusion area around a centre point.
type Circle struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"` // metres
}

// Fence is a boundary evaluator. The zero value is an unconfigured fence
// that validates nothing.
type Fence struct {
	HomeRequired bool      `json:"home_required"`
	MaxAltitude  float64   `json:"max_altitude"` // metres AMSL; <= 0 disables
	Polygons     []Polygon `json:"polygons"`
	Circles      []Circle  `json:"circles"`
}

// Load reads a fence definition from JSON.
func Load(r io.Reader) (*Fence, error) {
	var f Fence
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("geofence: decode failed: %w", err)
	}

	for i, poly := range f.Polygons {
		if len(poly.Points) < 3 {
			return nil, fmt.Errorf("geofence: polygon %d has %d points, need at least 3", i, len(poly.Points))
		}
	}
	for i, c := range f.Circles {
		if c.Radius <= 0 {
			return nil, fmt.Errorf("geofence: circle %d has non-positive radius", i)
		}
	}

	return &f, nil
}

// IsHomeRequired reports whether the fence needs a valid home position.
func (f *Fence) IsHomeRequired() bool {
	return f != nil && f.HomeRequired
}

// Valid reports whether a usable boundary is configured.
func (f *Fence) Valid() bool {
	if f == nil {
		return false
	}
	return len(f.Polygons) > 0 || len(f.Circles) > 0 || f.MaxAltitude > 0
}

// Check reports whether the item lies inside the boundary. The item's
// altitude must already be resolved to AMSL.
func (f *Fence) Check(item model.MissionItem) bool {
	if f.MaxAltitude > 0 && item.Altitude > f.MaxAltitude {
		return false
	}

	if len(f.Polygons) == 0 && len(f.Circles) == 0 {
		return true
	}

	for _, poly := range f.Polygons {
		if poly.contains(item.Lat, item.Lon) {
			return true
		}
	}
	for _, c := range f.Circles {
		if haversineM(item.Lat, item.Lon, c.Lat, c.Lon) <= c.Radius {
			return true
		}
	}

	return false
}

// contains runs a standard ray cast over the polygon edges. Good enough for
// operating-area fences; degenerate antimeridian-spanning fences are out of
// scope.
func (p Polygon) contains(lat, lon float64) bool {
	inside := false
	n := len(p.Points)
	j := n - 1

	for i := 0; i < n; i++ {
		pi, pj := p.Points[i], p.Points[j]
		if (pi.Lat > lat) != (pj.Lat > lat) &&
			lon < (pj.Lon-pi.Lon)*(lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lon {
			inside = !inside
		}
		j = i
	}

	return inside
}

func haversineM(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dPhi := rad(lat2 - lat1)
	dLambda := rad(lon2 - lon1)
	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(rad(lat1))*math.Cos(rad(lat2))*sinLambda*sinLambda
	return 2 * earthRadiusM * math.Asin(math.Sqrt(math.Min(a, 1)))
}
