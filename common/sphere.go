package common

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// LatLng returns the s2 coordinate of an orb [lon, lat] point.
func LatLng(p orb.Point) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat(), p.Lon())
}

// GreatCircleMeters is the haversine distance between two points on a sphere of
// EarthRadiusMeters.
func GreatCircleMeters(a, b orb.Point) float64 {
	return float64(LatLng(a).Distance(LatLng(b))) * EarthRadiusMeters
}

// GreatCircleMiles is GreatCircleMeters in miles.
func GreatCircleMiles(a, b orb.Point) float64 {
	return MetersToMiles(GreatCircleMeters(a, b))
}

// MetersToAngle converts a distance along the surface to the angle it subtends.
func MetersToAngle(m float64) s1.Angle {
	return s1.Angle(m / EarthRadiusMeters)
}
