package params

const (
	// CostModeFull sums all five weighted terms.
	CostModeFull = "full"
	// CostModeLegacy sums only the duration, dwell and turn terms,
	// reproducing scores from the first version of the route study.
	CostModeLegacy = "legacy"
)

// CostTerm is a weight and the value a term's input is divided by before weighting.
type CostTerm struct {
	Weight    float64 `mapstructure:"weight" validate:"gte=0"`
	Normalize float64 `mapstructure:"normalize" validate:"gt=0"`
}

type CostConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=full legacy"`

	// Duration is normalized in minutes.
	Duration CostTerm `mapstructure:"duration"`
	// Dwell is the time spent at classified stops, normalized in minutes.
	Dwell CostTerm `mapstructure:"dwell"`
	// Turns is the count of detected turns.
	Turns CostTerm `mapstructure:"turns"`
	// Events is the count of all events, turns included.
	Events CostTerm `mapstructure:"events"`
	// MaxSpeed is normalized in mph.
	MaxSpeed CostTerm `mapstructure:"max_speed"`
}

func DefaultCostConfig() *CostConfig {
	return &CostConfig{
		Mode:     CostModeFull,
		Duration: CostTerm{Weight: 0.5, Normalize: 30},
		Dwell:    CostTerm{Weight: 0.15, Normalize: 15},
		Turns:    CostTerm{Weight: 0.15, Normalize: 40},
		Events:   CostTerm{Weight: 0.10, Normalize: 20},
		MaxSpeed: CostTerm{Weight: 0.10, Normalize: 60},
	}
}
