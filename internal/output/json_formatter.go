package output

import (
	"encoding/json"
	"math"
	"time"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// JSONFormatter serializes the pricing report as pretty-printed JSON.
// Undefined statistics (NaN, ±Inf) are emitted as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// jsonFloat marshals non-finite values as null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type jsonTrajectory struct {
	Path        int         `json:"path"`
	State       string      `json:"state"`
	BreachStep  int         `json:"breach_step,omitempty"`
	BreachPrice jsonFloat   `json:"breach_price,omitempty"`
	Spots       []jsonFloat `json:"spots"`
}

type jsonReport struct {
	RunID          string                    `json:"run_id"`
	GeneratedAt    time.Time                 `json:"generated_at"`
	Price          jsonFloat                 `json:"price"`
	StdDev         jsonFloat                 `json:"stddev"`
	BarrierHits    int                       `json:"barrierHits"`
	Survivors      int                       `json:"survivors"`
	NumPaths       int                       `json:"num_paths"`
	Mean           jsonFloat                 `json:"mean_payoff"`
	DiscountFactor jsonFloat                 `json:"discount_factor"`
	StandardError  jsonFloat                 `json:"standard_error"`
	ConfidenceLow  jsonFloat                 `json:"confidence_low"`
	ConfidenceHigh jsonFloat                 `json:"confidence_high"`
	DriftedSpot    jsonFloat                 `json:"drifted_spot"`
	Option         domain.OptionParameters   `json:"option"`
	Settings       domain.SimulationSettings `json:"settings"`
	Trajectories   []jsonTrajectory          `json:"trajectories,omitempty"`
}

func (j JSONFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	res := report.Result
	out := jsonReport{
		RunID:          report.RunID,
		GeneratedAt:    report.GeneratedAt,
		Price:          jsonFloat(res.Price),
		StdDev:         jsonFloat(res.StdDev),
		BarrierHits:    res.BarrierHits,
		Survivors:      res.Survivors,
		NumPaths:       res.NumPaths,
		Mean:           jsonFloat(res.Mean),
		DiscountFactor: jsonFloat(res.DiscountFactor),
		StandardError:  jsonFloat(res.StandardError),
		ConfidenceLow:  jsonFloat(res.ConfidenceLow),
		ConfidenceHigh: jsonFloat(res.ConfidenceHigh),
		DriftedSpot:    jsonFloat(res.DriftedSpot),
		Option:         report.Option,
		Settings:       report.Settings,
	}
	for _, tr := range res.Trajectories {
		jt := jsonTrajectory{
			Path:        tr.Path,
			State:       tr.State.String(),
			BreachStep:  tr.BreachStep,
			BreachPrice: jsonFloat(tr.BreachPrice),
			Spots:       make([]jsonFloat, len(tr.Spots)),
		}
		for i, s := range tr.Spots {
			jt.Spots[i] = jsonFloat(s)
		}
		out.Trajectories = append(out.Trajectories, jt)
	}
	return json.MarshalIndent(out, "", "  ")
}
