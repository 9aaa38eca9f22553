package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// CSVSummarizer writes one metric per row.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PricingReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	res := report.Result

	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"price", floatCell(res.Price), "Discounted mean payoff of surviving paths"},
		{"stddev", floatCell(res.StdDev), "Sample standard deviation of surviving payoffs"},
		{"barrierHits", strconv.Itoa(res.BarrierHits), "Paths that touched the barrier"},
		{"survivors", strconv.Itoa(res.Survivors), "Paths that never touched the barrier"},
		{"num_paths", strconv.Itoa(res.NumPaths), "Total simulated paths"},
		{"standard_error", floatCell(res.StandardError), "Standard error of the price"},
		{"confidence_low", floatCell(res.ConfidenceLow), "Lower confidence bound"},
		{"confidence_high", floatCell(res.ConfidenceHigh), "Upper confidence bound"},
		{"discount_factor", floatCell(res.DiscountFactor), "exp(-rT)"},
		{"seed", strconv.FormatInt(report.Settings.Seed, 10), "Generator seed"},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// floatCell keeps full precision; non-finite values print as NaN/+Inf/-Inf.
func floatCell(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
