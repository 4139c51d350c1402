package common

import "math"

// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func DecimalToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

// SignedAngularDiff returns the difference a-b between two headings (degrees),
// normalized to the range [-180, 180).
// A negative value means b is clockwise of a (the heading increased, a right turn),
// positive means b is counter-clockwise of a (a left turn).
//   SignedAngularDiff(358, 2) == -4
//   SignedAngularDiff(90, 0)  == 90
func SignedAngularDiff(a, b float64) float64 {
	d := math.Mod(a-b+540, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
