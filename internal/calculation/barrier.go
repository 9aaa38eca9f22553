package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rpgo/barrier-pricer/internal/domain"
)

// ErrInsufficientSurvivors is returned in strict mode when fewer than two
// paths survive, leaving the sample mean or variance undefined.
var ErrInsufficientSurvivors = errors.New("insufficient surviving paths")

// BarrierPricer prices an up-and-out European call by simulating GBM paths.
// Paths are stepped strictly one after another against a single Normal source.
type BarrierPricer struct {
	Params   domain.OptionParameters
	Settings domain.SimulationSettings
	Normals  Normal
	Logger   Logger
}

// NewBarrierPricer stores params verbatim; no validation is performed here.
func NewBarrierPricer(params domain.OptionParameters, normals Normal, settings domain.SimulationSettings) *BarrierPricer {
	return &BarrierPricer{
		Params:   params,
		Settings: settings.WithDefaults(),
		Normals:  normals,
		Logger:   NopLogger{},
	}
}

// NewSeededBarrierPricer builds a pricer with its own generator seeded from
// settings.Seed (or seedFunc when the seed is zero).
func NewSeededBarrierPricer(params domain.OptionParameters, settings domain.SimulationSettings) *BarrierPricer {
	settings.Seed = ResolveSeed(settings.Seed)
	normals := NewNormalVariateSource(NewSeededUniform(settings.Seed))
	return NewBarrierPricer(params, normals, settings)
}

// pathOutcome is the terminal state of one path plus its final spot.
type pathOutcome struct {
	state      domain.PathState
	spot       float64
	breachStep int
	spots      []float64
}

// Price runs the simulation and returns the discounted payoff estimate.
//
// The returned error is non-nil only in strict mode, where a survivor
// sample of size < 2 yields ErrInsufficientSurvivors alongside the
// (NaN-bearing) result.
func (bp *BarrierPricer) Price() (*domain.SimulationResult, error) {
	log := loggerOrNop(bp.Logger)
	p := bp.Params
	steps := bp.Settings.Steps
	toRecord := bp.Settings.TrajectoriesToRecord

	variance := p.Volatility * p.Volatility * p.MaturityYears
	itoCorrection := -0.5 * variance
	driftedSpot := p.Spot * math.Exp(p.RiskFreeRate*p.MaturityYears+itoCorrection)

	dt := p.MaturityYears / float64(steps)
	drift := (p.RiskFreeRate - 0.5*p.Volatility*p.Volatility) * dt
	diffusion := p.Volatility * math.Sqrt(dt)

	log.Debugf("pricing %d paths x %d steps (dt=%g, barrier=%g)", p.NumPaths, steps, dt, p.Barrier)

	var (
		runningSum   float64
		barrierHits  int
		payoffs      = make([]float64, 0, max(p.NumPaths, 0))
		trajectories []domain.Trajectory
	)

	for i := 0; i < p.NumPaths; i++ {
		out := bp.simulatePath(steps, drift, diffusion, i < toRecord)

		switch out.state {
		case domain.PathSurvived:
			payoff := math.Max(out.spot-p.Strike, 0)
			runningSum += payoff
			payoffs = append(payoffs, payoff)
		case domain.PathKnockedOut:
			barrierHits++
		}

		if i < toRecord {
			tr := domain.Trajectory{Path: i + 1, State: out.state, Spots: out.spots}
			if out.state == domain.PathKnockedOut {
				tr.BreachStep = out.breachStep
				tr.BreachPrice = out.spot
			}
			trajectories = append(trajectories, tr)
		}
	}

	mean, stddev := survivorStats(payoffs, runningSum)
	discount := math.Exp(-p.RiskFreeRate * p.MaturityYears)
	price := mean * discount
	stderr, low, high := confidenceBand(price, stddev, len(payoffs), discount, bp.Settings.ConfidenceLevel)

	result := &domain.SimulationResult{
		Price:          price,
		StdDev:         stddev,
		BarrierHits:    barrierHits,
		Survivors:      len(payoffs),
		NumPaths:       p.NumPaths,
		Mean:           mean,
		DiscountFactor: discount,
		StandardError:  stderr,
		ConfidenceLow:  low,
		ConfidenceHigh: high,
		DriftedSpot:    driftedSpot,
		Trajectories:   trajectories,
	}

	log.Infof("priced %g with %d/%d paths knocked out", price, barrierHits, p.NumPaths)

	if len(payoffs) < 2 {
		log.Warnf("only %d surviving paths; estimator statistics are undefined", len(payoffs))
		if bp.Settings.Strict {
			return result, fmt.Errorf("%w: %d of %d paths survived", ErrInsufficientSurvivors, len(payoffs), p.NumPaths)
		}
	}
	return result, nil
}

// simulatePath steps one path from the initial spot. A path is Alive until
// the first step whose spot reaches the barrier, at which point it is
// KnockedOut and no further steps are drawn. A path that completes every
// step is Survived. Visited spots are kept only when record is set.
func (bp *BarrierPricer) simulatePath(steps int, drift, diffusion float64, record bool) pathOutcome {
	out := pathOutcome{state: domain.PathAlive, spot: bp.Params.Spot}
	if record {
		out.spots = make([]float64, 0, max(steps, 0))
	}

	for t := 0; t < steps; t++ {
		z := bp.Normals.Draw()
		// float64() forces rounding of the product so it is never fused into an FMA.
		out.spot *= math.Exp(drift + float64(diffusion*z))

		if record {
			out.spots = append(out.spots, out.spot)
		}

		if out.spot >= bp.Params.Barrier {
			out.state = domain.PathKnockedOut
			out.breachStep = t + 1
			return out
		}
	}

	out.state = domain.PathSurvived
	return out
}

// NewPricingReport stamps a result with a run identifier and the inputs
// that produced it.
func NewPricingReport(params domain.OptionParameters, settings domain.SimulationSettings, result *domain.SimulationResult) *domain.PricingReport {
	return &domain.PricingReport{
		RunID:       uuid.NewString(),
		GeneratedAt: nowFunc().UTC(),
		Option:      params,
		Settings:    settings,
		Result:      *result,
	}
}
