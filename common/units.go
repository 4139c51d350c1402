package common

// Receivers report speed over ground in knots.
// Event thresholds are tuned in miles per hour and miles.

const KnotsToMPH = 1.1508

const MetersPerMile = 1609.344

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371008.8

func MPH(knots float64) float64 {
	return knots * KnotsToMPH
}

func MetersToMiles(m float64) float64 {
	return m / MetersPerMile
}
