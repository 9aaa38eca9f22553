package domain

import "time"

// Reference defaults for the simulation grid and diagnostics.
const (
	DefaultSteps                = 100
	DefaultTrajectoriesToRecord = 5
	DefaultConfidenceLevel      = 0.95
)

// OptionParameters describes an up-and-out European call.
// Values are immutable once handed to a pricer.
type OptionParameters struct {
	Spot          float64 `yaml:"spot" json:"spot" validate:"gt=0"`
	Strike        float64 `yaml:"strike" json:"strike" validate:"gt=0"`
	Volatility    float64 `yaml:"volatility" json:"volatility" validate:"gte=0"`
	RiskFreeRate  float64 `yaml:"risk_free_rate" json:"risk_free_rate"`
	MaturityYears float64 `yaml:"maturity_years,omitempty" json:"maturity_years" validate:"gt=0"`
	Barrier       float64 `yaml:"barrier" json:"barrier" validate:"gtfield=Spot"`
	NumPaths      int     `yaml:"num_paths" json:"num_paths" validate:"gte=1"`

	// Optional calendar form of the maturity. When both are set the config
	// layer derives MaturityYears from them.
	ValuationDate *time.Time `yaml:"valuation_date,omitempty" json:"valuation_date,omitempty"`
	ExpiryDate    *time.Time `yaml:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	DayCount      string     `yaml:"day_count,omitempty" json:"day_count,omitempty"`
}

// SimulationSettings holds the knobs that are not part of the contract itself.
type SimulationSettings struct {
	Seed                 int64   `yaml:"seed" json:"seed"`
	Steps                int     `yaml:"steps" json:"steps" validate:"gte=1"`
	TrajectoriesToRecord int     `yaml:"trajectories_to_record" json:"trajectories_to_record" validate:"gte=0"`
	ConfidenceLevel      float64 `yaml:"confidence_level" json:"confidence_level" validate:"gt=0,lt=1"`
	// Strict turns degenerate survivor samples into ErrInsufficientSurvivors.
	Strict bool `yaml:"strict" json:"strict"`
}

// WithDefaults fills zero-valued settings with the reference defaults.
func (s SimulationSettings) WithDefaults() SimulationSettings {
	if s.Steps == 0 {
		s.Steps = DefaultSteps
	}
	if s.ConfidenceLevel == 0 {
		s.ConfidenceLevel = DefaultConfidenceLevel
	}
	return s
}

// PricingConfiguration is the top-level document read from YAML.
type PricingConfiguration struct {
	Option     OptionParameters   `yaml:"option" json:"option"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// ReferenceOption returns the parameter set of the reference pricing run.
func ReferenceOption() OptionParameters {
	return OptionParameters{
		Spot:          100.0,
		Strike:        110.0,
		Volatility:    0.25,
		RiskFreeRate:  0.05,
		MaturityYears: 0.75,
		Barrier:       130.0,
		NumPaths:      10000,
	}
}

// ReferenceSettings returns the default simulation settings with seed 42.
func ReferenceSettings() SimulationSettings {
	return SimulationSettings{
		Seed:                 42,
		Steps:                DefaultSteps,
		TrajectoriesToRecord: DefaultTrajectoriesToRecord,
		ConfidenceLevel:      DefaultConfidenceLevel,
	}
}
