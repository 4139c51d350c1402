package params

type ParserConfig struct {
	// SkipLines is the number of preamble lines skipped at the top of every log,
	// regardless of their content.
	SkipLines int `mapstructure:"skip_lines" validate:"gte=0"`

	// SentenceType is the first field of the position/velocity sentences.
	SentenceType string `mapstructure:"sentence_type" validate:"required"`

	// ValidFlag is the status field value marking a sentence as a valid fix.
	ValidFlag string `mapstructure:"valid_flag" validate:"required"`

	// FieldCount is the exact number of comma-separated fields an accepted sentence has.
	// Truncated or overlong sentences are dropped.
	FieldCount int `mapstructure:"field_count" validate:"gte=10"`
}

func DefaultParserConfig() *ParserConfig {
	return &ParserConfig{
		SkipLines:    5,
		SentenceType: "$GPRMC",
		ValidFlag:    "A",
		FieldCount:   13,
	}
}
