package domain

import "time"

// PathState is the terminal classification of a simulated path.
type PathState int

const (
	PathAlive PathState = iota
	PathKnockedOut
	PathSurvived
)

func (s PathState) String() string {
	switch s {
	case PathAlive:
		return "alive"
	case PathKnockedOut:
		return "knocked_out"
	case PathSurvived:
		return "survived"
	default:
		return "unknown"
	}
}

// Trajectory is a recorded diagnostic path. BreachStep is 1-based and only
// meaningful when State is PathKnockedOut.
type Trajectory struct {
	Path        int       `json:"path"`
	State       PathState `json:"-"`
	BreachStep  int       `json:"breach_step,omitempty"`
	BreachPrice float64   `json:"breach_price,omitempty"`
	Spots       []float64 `json:"spots"`
}

// KnockedOut reports whether the path breached the barrier.
func (t Trajectory) KnockedOut() bool { return t.State == PathKnockedOut }

// SimulationResult holds the estimator outputs of one pricing run.
// Mean, StdDev and everything derived from them are NaN or ±Inf when the
// survivor sample is too small; they are never replaced by sentinels.
type SimulationResult struct {
	Price          float64 `json:"price"`
	StdDev         float64 `json:"stddev"`
	BarrierHits    int     `json:"barrierHits"`
	Survivors      int     `json:"survivors"`
	NumPaths       int     `json:"num_paths"`
	Mean           float64 `json:"mean_payoff"`
	DiscountFactor float64 `json:"discount_factor"`
	StandardError  float64 `json:"standard_error"`
	ConfidenceLow  float64 `json:"confidence_low"`
	ConfidenceHigh float64 `json:"confidence_high"`
	// DriftedSpot is S0*exp(rT - 0.5*sigma^2*T); informational only.
	DriftedSpot  float64      `json:"drifted_spot"`
	Trajectories []Trajectory `json:"trajectories,omitempty"`
}

// SurvivalRate is the fraction of paths that never touched the barrier.
func (r SimulationResult) SurvivalRate() float64 {
	if r.NumPaths == 0 {
		return 0
	}
	return float64(r.Survivors) / float64(r.NumPaths)
}

// PricingReport bundles a result with the inputs that produced it.
type PricingReport struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Option      OptionParameters   `json:"option"`
	Settings    SimulationSettings `json:"settings"`
	Result      SimulationResult   `json:"result"`
}
