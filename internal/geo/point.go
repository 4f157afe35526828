// Package geo holds the GeoJSON point type shared by user and pet records.
package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000

// Point is a GeoJSON point. Coordinates are stored in GeoJSON order:
// [longitude, latitude].
type Point struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

func NewPoint(lng, lat float64) Point {
	return Point{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

func (p Point) Lng() float64 { return p.Coordinates[0] }
func (p Point) Lat() float64 { return p.Coordinates[1] }

// Validate checks the coordinate bounds: -180 <= lng <= 180, -90 <= lat <= 90.
func (p Point) Validate() error {
	lng, lat := p.Lng(), p.Lat()
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	return nil
}

// ParsePoint decodes a stringified GeoJSON Point, the wire shape used by the
// multipart registration and pet forms.
func ParsePoint(data []byte) (Point, error) {
	var p Point
	if err := json.Unmarshal(data, &p); err != nil {
		return Point{}, fmt.Errorf("invalid GeoJSON point: %w", err)
	}
	if p.Type == "" {
		p.Type = "Point"
	}
	if p.Type != "Point" {
		return Point{}, fmt.Errorf("unsupported GeoJSON type %q", p.Type)
	}
	return p, nil
}

// Distance returns the great-circle distance between two points in meters
// (haversine formula).
func Distance(a, b Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lng() - a.Lng()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
