package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MachineEntry describes one machine whose result file takes part in an analysis.
// Frequency is the nominal CPU frequency in GHz, used to normalize operation
// rates into operations per cycle.
type MachineEntry struct {
	CPU       string  `mapstructure:"cpu" validate:"required"`
	Core      string  `mapstructure:"core"`
	Frequency float64 `mapstructure:"frequency" validate:"gt=0"`
	File      string  `mapstructure:"file" validate:"required"`
}

// AnalysisSettings holds the list of machines to compare in an analysis run.
type AnalysisSettings struct {
	Machines []MachineEntry `mapstructure:"machines" validate:"required,min=1,dive"`
}

// Validate checks that all fields in AnalysisSettings are valid
func (s *AnalysisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AnalysisSettings: %w", err)
	}

	return nil
}
