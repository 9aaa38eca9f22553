package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// ConsoleFormatter reproduces the plain text of the reference pricing run:
// breach notices for the recorded paths, the recorded spot sequences, then
// the price, hit count and payoff standard deviation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer
	res := report.Result

	for _, tr := range res.Trajectories {
		if tr.KnockedOut() {
			fmt.Fprintf(&buf, "Trajectory %d: barrier reached at time step %d with price %s\n",
				tr.Path, tr.BreachStep, FormatNumber(tr.BreachPrice))
		}
	}
	for _, tr := range res.Trajectories {
		fmt.Fprintf(&buf, "Trajectory %d: ", tr.Path)
		for _, spot := range tr.Spots {
			buf.WriteString(FormatNumber(spot))
			buf.WriteByte(' ')
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "Price of the up-and-out barrier call: %s\n", FormatNumber(res.Price))
	fmt.Fprintf(&buf, "Paths exceeding the barrier: %d out of %d\n", res.BarrierHits, res.NumPaths)
	fmt.Fprintf(&buf, "Standard deviation of the price: %s\n", FormatNumber(res.StdDev))
	return buf.Bytes(), nil
}
