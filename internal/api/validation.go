package api

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid check request")

// maxRequestItems bounds inline mission uploads; anything larger belongs in
// the file store.
const maxRequestItems = 10000

// ValidateCheckRequest performs structural validation only. Semantic
// problems (unsupported commands, geometry, ordering) are the feasibility
// pass's job and come back as violations, not request errors.
func ValidateCheckRequest(req *CheckRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", ErrInvalidRequest)
	}
	if len(req.Items) > maxRequestItems {
		return fmt.Errorf("%w: %d items exceeds the limit of %d", ErrInvalidRequest, len(req.Items), maxRequestItems)
	}
	if strings.ContainsRune(req.StorageID, '/') {
		return fmt.Errorf("%w: storage_id must not contain '/'", ErrInvalidRequest)
	}

	for i, item := range req.Items {
		if !isFinite(item.Lat) || !isFinite(item.Lon) || !isFinite(item.Altitude) {
			return fmt.Errorf("%w: item %d has a non-finite coordinate", ErrInvalidRequest, i+1)
		}
		if item.Lat < -90 || item.Lat > 90 {
			return fmt.Errorf("%w: item %d latitude %g out of range", ErrInvalidRequest, i+1, item.Lat)
		}
		if item.Lon < -180 || item.Lon > 180 {
			return fmt.Errorf("%w: item %d longitude %g out of range", ErrInvalidRequest, i+1, item.Lon)
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
