package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rpgo/barrier-pricer/internal/domain"
	"github.com/rpgo/barrier-pricer/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of pricing configuration files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// LoadFromFile loads and validates a pricing configuration from a YAML file.
// Keys the file omits keep the reference values from CreateExampleConfiguration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PricingConfiguration, error) {
	config, err := ip.DecodeFile(filename)
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// DecodeFile reads a YAML file like LoadFromFile but leaves the parameter
// checks to the caller.
func (ip *InputParser) DecodeFile(filename string) (*domain.PricingConfiguration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Decode(data)
}

// Decode overlays YAML bytes on the reference configuration and resolves
// calendar maturities. Parameter values are not validated.
func (ip *InputParser) Decode(data []byte) (*domain.PricingConfiguration, error) {
	config := ip.CreateExampleConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := resolveFileMaturity(data, &config.Option); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	config.Simulation = config.Simulation.WithDefaults()
	return config, nil
}

// resolveFileMaturity rejects files that give maturity_years alongside the
// calendar dates, then applies ResolveMaturity.
func resolveFileMaturity(data []byte, option *domain.OptionParameters) error {
	if option.ValuationDate != nil || option.ExpiryDate != nil {
		var raw struct {
			Option map[string]any `yaml:"option"`
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		if _, ok := raw.Option["maturity_years"]; ok {
			return fmt.Errorf("maturity_years cannot be combined with valuation_date and expiry_date")
		}
	}
	return ResolveMaturity(option)
}

// ResolveMaturity derives MaturityYears from the valuation and expiry dates
// when both are present.
func ResolveMaturity(option *domain.OptionParameters) error {
	if option.ValuationDate == nil && option.ExpiryDate == nil {
		return nil
	}
	if option.ValuationDate == nil || option.ExpiryDate == nil {
		return fmt.Errorf("valuation_date and expiry_date must be given together")
	}
	dc, err := dateutil.ParseDayCount(option.DayCount)
	if err != nil {
		return err
	}
	if !option.ExpiryDate.After(*option.ValuationDate) {
		return fmt.Errorf("expiry_date must be after valuation_date")
	}
	option.MaturityYears = dateutil.YearFraction(*option.ValuationDate, *option.ExpiryDate, dc)
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.PricingConfiguration) error {
	if err := ip.ValidateOption(&config.Option); err != nil {
		return fmt.Errorf("option validation failed: %w", err)
	}
	if err := ip.validateSettings(&config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}
	return nil
}

// ValidateOption checks the contract parameters. The pricer itself accepts
// anything; this is the hardened entry used by the file and CLI paths.
func (ip *InputParser) ValidateOption(option *domain.OptionParameters) error {
	return describe(ip.validate.Struct(option))
}

func (ip *InputParser) validateSettings(settings *domain.SimulationSettings) error {
	return describe(ip.validate.Struct(settings))
}

// describe flattens validator errors into a single readable error.
func describe(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.Join(msgs...)
}

var fieldNames = map[string]string{
	"Spot":                 "spot",
	"Strike":               "strike",
	"Volatility":           "volatility",
	"MaturityYears":        "maturity_years",
	"Barrier":              "barrier",
	"NumPaths":             "num_paths",
	"Steps":                "steps",
	"TrajectoriesToRecord": "trajectories_to_record",
	"ConfidenceLevel":      "confidence_level",
}

func fieldError(fe validator.FieldError) error {
	name := fieldNames[fe.StructField()]
	if name == "" {
		name = fe.StructField()
	}
	switch fe.Tag() {
	case "gt":
		return fmt.Errorf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Errorf("%s must be at least %s", name, fe.Param())
	case "lt":
		return fmt.Errorf("%s must be less than %s", name, fe.Param())
	case "gtfield":
		return fmt.Errorf("%s must be above %s for an up-and-out barrier", name, fieldNames[fe.Param()])
	default:
		return fmt.Errorf("%s failed %s validation", name, fe.Tag())
	}
}

// CreateExampleConfiguration returns the reference pricing run:
// S0=100, K=110, sigma=0.25, r=0.05, T=0.75, barrier=130, 10000 paths, seed 42.
func (ip *InputParser) CreateExampleConfiguration() *domain.PricingConfiguration {
	return &domain.PricingConfiguration{
		Option:     domain.ReferenceOption(),
		Simulation: domain.ReferenceSettings(),
	}
}

// SaveConfiguration writes config as YAML to filename. A maturity derived
// from calendar dates is left out so the file reloads cleanly.
func SaveConfiguration(config *domain.PricingConfiguration, filename string) error {
	out := *config
	if out.Option.ValuationDate != nil || out.Option.ExpiryDate != nil {
		out.Option.MaturityYears = 0
	}
	b, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
