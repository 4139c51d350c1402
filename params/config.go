package params

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the whole configuration of one analysis run.
type Config struct {
	Parser   ParserConfig   `mapstructure:"parser"`
	Corridor CorridorConfig `mapstructure:"corridor"`
	Motion   MotionConfig   `mapstructure:"motion"`
	Turns    TurnConfig     `mapstructure:"turns"`
	Stops    StopConfig     `mapstructure:"stops"`
	Cost     CostConfig     `mapstructure:"cost"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Export   ExportConfig   `mapstructure:"export"`
	Influx   InfluxConfig   `mapstructure:"influx"`
}

func DefaultConfig() *Config {
	return &Config{
		Parser:   *DefaultParserConfig(),
		Corridor: *DefaultCorridorConfig(),
		Motion:   *DefaultMotionConfig(),
		Turns:    *DefaultTurnConfig(),
		Stops:    *DefaultStopConfig(),
		Cost:     *DefaultCostConfig(),
		Batch:    *DefaultBatchConfig(),
		Export:   *DefaultExportConfig(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every threshold and option of the config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
