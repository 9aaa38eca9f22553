package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// TrajectoryCSVExporter writes every recorded spot, one row per path step.
type TrajectoryCSVExporter struct{}

func (t TrajectoryCSVExporter) Name() string { return "trajectories-csv" }

func (t TrajectoryCSVExporter) Format(report *domain.PricingReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"path", "step", "spot", "state"}); err != nil {
		return nil, err
	}
	for _, tr := range report.Result.Trajectories {
		for i, spot := range tr.Spots {
			state := domain.PathAlive.String()
			if i == len(tr.Spots)-1 {
				state = tr.State.String()
			}
			row := []string{strconv.Itoa(tr.Path), strconv.Itoa(i + 1), floatCell(spot), state}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
