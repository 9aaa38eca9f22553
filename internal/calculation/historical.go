package calculation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/rpgo/barrier-pricer/pkg/decimal"
	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear annualizes daily log-return volatility.
const TradingDaysPerYear = 252

// HistoricalPricePoint is one closing price.
type HistoricalPricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// HistoricalPriceSeries is a chronologically ordered set of closes used to
// calibrate the volatility input.
type HistoricalPriceSeries struct {
	Source string                 `json:"source"`
	Points []HistoricalPricePoint `json:"points"`
}

// LoadHistoricalPrices reads a CSV with a header row and date,close columns.
// Dates are YYYY-MM-DD. Rows with an unparsable date or a non-positive close
// are skipped.
func LoadHistoricalPrices(filePath string) (*HistoricalPriceSeries, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	series, err := ReadHistoricalPrices(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	series.Source = filePath
	return series, nil
}

// ReadHistoricalPrices parses the CSV form accepted by LoadHistoricalPrices.
func ReadHistoricalPrices(r io.Reader) (*HistoricalPriceSeries, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var points []HistoricalPricePoint
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			continue
		}
		closePx, err := decimal.NewMoneyFromString(record[1])
		if err != nil || !closePx.IsPositive() {
			continue
		}
		points = append(points, HistoricalPricePoint{Date: date, Close: closePx.InexactFloat64()})
	}

	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 valid closes, found %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Date.After(points[i-1].Date) {
			return nil, fmt.Errorf("closes must be in ascending date order (row %d)", i+2)
		}
	}
	return &HistoricalPriceSeries{Points: points}, nil
}

// LogReturns returns ln(C[i]/C[i-1]) for consecutive closes.
func (s *HistoricalPriceSeries) LogReturns() []float64 {
	returns := make([]float64, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		returns = append(returns, math.Log(s.Points[i].Close/s.Points[i-1].Close))
	}
	return returns
}

// RealizedVolatility is the sample standard deviation of log returns scaled
// by sqrt(periodsPerYear).
func (s *HistoricalPriceSeries) RealizedVolatility(periodsPerYear float64) float64 {
	return stat.StdDev(s.LogReturns(), nil) * math.Sqrt(periodsPerYear)
}

// LastClose returns the most recent close, a natural spot input.
func (s *HistoricalPriceSeries) LastClose() HistoricalPricePoint {
	return s.Points[len(s.Points)-1]
}
