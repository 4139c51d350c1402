package common

/*
https://en.wikipedia.org/wiki/Decimal_degrees?useskin=vector

places 	degrees 	Object that can be unambiguously recognized at this scale
5 	0.00001 	individual trees, houses
6 	0.000001 	individual cats
7 	0.0000001 	practical limit of commercial surveying
*/

const (
	// GPSPrecision5 is the precision for individual trees, houses
	GPSPrecision5 = 5
	// GPSPrecision6 is the precision for individual cats
	GPSPrecision6 = 6
	// GPSPrecision7 is the precision for practical limit of commercial surveying
	GPSPrecision7 = 7
)
