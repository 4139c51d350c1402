package params

// LonLat is a geographic coordinate in degrees.
type LonLat struct {
	Lon float64 `mapstructure:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `mapstructure:"lat" validate:"gte=-90,lte=90"`
}

type CorridorConfig struct {
	// A and B are the two ends of the known route.
	// Trips may run A to B or B to A.
	A LonLat `mapstructure:"a"`
	B LonLat `mapstructure:"b"`

	// Radius is the great-circle distance in meters a trip's first and last points
	// may be from the route ends.
	Radius float64 `mapstructure:"radius" validate:"gt=0"`
}

// DefaultCorridorConfig ends were taken from recorded logs with valid fixes.
func DefaultCorridorConfig() *CorridorConfig {
	return &CorridorConfig{
		A:      LonLat{Lon: -77.68016333333334, Lat: 43.085848333333324},
		B:      LonLat{Lon: -77.43771166666667, Lat: 43.138343333333324},
		Radius: 175,
	}
}

type MotionConfig struct {
	// StartSpeed is the raw reported speed (knots) a trip must exceed before
	// any point is considered a turn or stop candidate.
	// Points before motion begins would otherwise count as stops.
	StartSpeed float64 `mapstructure:"start_speed" validate:"gte=0"`
}

func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{StartSpeed: 10}
}

type TurnConfig struct {
	// Window is the number of points between the two headings compared.
	Window int `mapstructure:"window" validate:"gt=0"`

	// MinAngle and MaxAngle bound (exclusively) the absolute heading change
	// across the window that counts as a turn.
	MinAngle float64 `mapstructure:"min_angle" validate:"gte=0,ltefield=MaxAngle"`
	MaxAngle float64 `mapstructure:"max_angle" validate:"lte=180"`

	// WrapClockwise also counts right turns across north, where the heading
	// drops past 0 (e.g. 350 to 80). Off, those are not turns.
	WrapClockwise bool `mapstructure:"wrap_clockwise"`
}

func DefaultTurnConfig() *TurnConfig {
	return &TurnConfig{
		Window:   30,
		MinAngle: 60,
		MaxAngle: 120,
	}
}

type StopConfig struct {
	// SpeedThreshold is the converted speed (mph) at or below which the vehicle is dwelling.
	SpeedThreshold float64 `mapstructure:"speed_threshold" validate:"gte=0"`

	// MaxDisplacement is the distance in miles between the dwell start and
	// the point motion resumes below which the dwell is an event.
	MaxDisplacement float64 `mapstructure:"max_displacement" validate:"gt=0"`

	// StopSignMax is the longest dwell (seconds, inclusive) classified as a stop sign.
	StopSignMax float64 `mapstructure:"stop_sign_max" validate:"gte=0,ltefield=SignalMax"`

	// SignalMax is the longest dwell (seconds, inclusive) classified as a traffic signal.
	// Anything longer is an errand.
	SignalMax float64 `mapstructure:"signal_max" validate:"gte=0"`
}

func DefaultStopConfig() *StopConfig {
	return &StopConfig{
		SpeedThreshold:  10,
		MaxDisplacement: 0.09,
		StopSignMax:     7,
		SignalMax:       50,
	}
}
