// Package geometry validates plot boundaries supplied as GeoJSON and
// extracts simplified outer-ring coordinates from stored geometry.
package geometry

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrUnsupportedType is returned for any geometry that is not a Polygon or
// MultiPolygon.
var ErrUnsupportedType = errors.New("only Polygon or MultiPolygon geometries are supported")

// ParseBoundary accepts a plot boundary as a GeoJSON geometry document or a
// JSON-encoded string containing one, and returns the canonical GeoJSON
// bytes to hand to the database. Geometry types other than Polygon and
// MultiPolygon are rejected with ErrUnsupportedType.
func ParseBoundary(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrUnsupportedType
	}

	doc := []byte(raw)

	// Clients may ship the boundary as a JSON string wrapping the
	// geometry document.
	var inner string
	if err := json.Unmarshal(doc, &inner); err == nil {
		doc = []byte(inner)
	}

	// Check the declared type before parsing so that Features, geometry
	// collections and misspelled types all read as unsupported rather
	// than as parse failures.
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(doc, &peek); err != nil {
		return nil, fmt.Errorf("parsing boundary geometry: %w", err)
	}
	switch peek.Type {
	case "Polygon", "MultiPolygon":
	default:
		return nil, ErrUnsupportedType
	}

	geom, err := geojson.UnmarshalGeometry(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing boundary geometry: %w", err)
	}

	return geom.MarshalJSON()
}

// OuterRing extracts the flat outline of a stored boundary rendered as
// GeoJSON: the outer ring of a Polygon, or the outer ring of the first
// member of a MultiPolygon. Holes and further members are discarded.
// Geometries of any other type yield an empty ring.
func OuterRing(stored []byte) (orb.Ring, error) {
	if len(stored) == 0 {
		return orb.Ring{}, nil
	}

	geom, err := geojson.UnmarshalGeometry(stored)
	if err != nil {
		return nil, fmt.Errorf("parsing stored geometry: %w", err)
	}

	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		if len(g) > 0 {
			return g[0], nil
		}
	case orb.MultiPolygon:
		if len(g) > 0 && len(g[0]) > 0 {
			return g[0][0], nil
		}
	}
	return orb.Ring{}, nil
}
