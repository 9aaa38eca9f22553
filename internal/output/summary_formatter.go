package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// SummaryFormatter prints a labelled report with the contract, the
// simulation settings and the full set of estimator statistics.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	opt := report.Option
	set := report.Settings
	res := report.Result

	fmt.Fprintln(&buf, "UP-AND-OUT BARRIER CALL")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Run:        %s (%s)\n", report.RunID, timestamp(report.GeneratedAt))
	fmt.Fprintf(&buf, "Spot:       %s\n", FormatCurrency(opt.Spot))
	fmt.Fprintf(&buf, "Strike:     %s\n", FormatCurrency(opt.Strike))
	fmt.Fprintf(&buf, "Barrier:    %s\n", FormatCurrency(opt.Barrier))
	fmt.Fprintf(&buf, "Volatility: %s\n", FormatPercentage(opt.Volatility))
	fmt.Fprintf(&buf, "Rate:       %s\n", FormatPercentage(opt.RiskFreeRate))
	fmt.Fprintf(&buf, "Maturity:   %s years\n", FormatNumber(opt.MaturityYears))
	fmt.Fprintf(&buf, "Paths:      %d x %d steps (seed %d)\n", opt.NumPaths, set.Steps, set.Seed)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Price:            %s\n", FormatPremium(res.Price))
	fmt.Fprintf(&buf, "Per contract:     %s (x%d)\n", FormatContractPremium(res.Price, ContractMultiplier), ContractMultiplier)
	fmt.Fprintf(&buf, "Standard error:   %s\n", FormatPremium(res.StandardError))
	fmt.Fprintf(&buf, "%s CI:           [%s, %s]\n", FormatPercentage(set.ConfidenceLevel), FormatPremium(res.ConfidenceLow), FormatPremium(res.ConfidenceHigh))
	fmt.Fprintf(&buf, "Mean payoff:      %s\n", FormatPremium(res.Mean))
	fmt.Fprintf(&buf, "Payoff std dev:   %s\n", FormatPremium(res.StdDev))
	fmt.Fprintf(&buf, "Discount factor:  %s\n", FormatNumber(res.DiscountFactor))
	fmt.Fprintf(&buf, "Barrier hits:     %d of %d (%s survive)\n", res.BarrierHits, res.NumPaths, FormatPercentage(res.SurvivalRate()))
	fmt.Fprintf(&buf, "Drifted spot:     %s\n", FormatCurrency(res.DriftedSpot))

	if res.Survivors < 2 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Warning: %d surviving paths; statistics are undefined.\n", res.Survivors)
	}
	return buf.Bytes(), nil
}
