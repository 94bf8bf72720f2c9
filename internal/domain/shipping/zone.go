package shipping

import (
	"errors"
	"strings"
)

var (
	ErrZoneNotFound    = errors.New("shipping zone not found")
	ErrRegionRequired  = errors.New("a delivery region must be selected")
	ErrTownNotInRegion = errors.New("town is not served in the selected region")
)

// Zone is a named delivery region with a flat fee and a closed set of towns.
type Zone struct {
	region string
	fee    float64
	towns  []string
}

func NewZone(region string, fee float64, towns []string) Zone {
	return Zone{region: region, fee: fee, towns: towns}
}

func (z Zone) Region() string  { return z.region }
func (z Zone) Fee() float64    { return z.fee }
func (z Zone) Towns() []string { return append([]string(nil), z.towns...) }

// HasTown reports whether the town belongs to this zone's enumeration.
// Matching ignores case and surrounding whitespace.
func (z Zone) HasTown(town string) bool {
	town = strings.TrimSpace(town)
	for _, t := range z.towns {
		if strings.EqualFold(t, town) {
			return true
		}
	}
	return false
}

// Resolver answers region lookups against the static zone table.
type Resolver struct {
	zones   []Zone
	byLower map[string]Zone
}

func NewResolver(zones []Zone) *Resolver {
	byLower := make(map[string]Zone, len(zones))
	for _, z := range zones {
		byLower[strings.ToLower(z.region)] = z
	}
	return &Resolver{zones: zones, byLower: byLower}
}

func (r *Resolver) Zones() []Zone {
	return append([]Zone(nil), r.zones...)
}

func (r *Resolver) ResolveZone(region string) (Zone, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return Zone{}, ErrRegionRequired
	}
	z, ok := r.byLower[strings.ToLower(region)]
	if !ok {
		return Zone{}, ErrZoneNotFound
	}
	return z, nil
}

// ResolveDestination validates a region/town pair. Selecting a region
// invalidates any town outside its enumeration, so a town carried over from a
// previous region selection is rejected rather than silently kept.
func (r *Resolver) ResolveDestination(region, town string) (Zone, error) {
	z, err := r.ResolveZone(region)
	if err != nil {
		return Zone{}, err
	}
	if !z.HasTown(town) {
		return Zone{}, ErrTownNotInRegion
	}
	return z, nil
}
