package output

import (
	"math"
	"strconv"

	"github.com/rpgo/barrier-pricer/pkg/decimal"
)

// FormatNumber renders v with six significant digits in %g style, the way a
// default-configured C++ ostream does; non-finite values become nan/inf.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatCurrency renders a price with cents, or "n/a" when undefined.
func FormatCurrency(v float64) string {
	m, ok := decimal.NewMoney(v)
	if !ok {
		return "n/a"
	}
	return m.Format()
}

// FormatPremium renders a price at quoting precision, or "n/a" when undefined.
func FormatPremium(v float64) string {
	m, ok := decimal.NewMoney(v)
	if !ok {
		return "n/a"
	}
	return m.String()
}

// ContractMultiplier is the share count of a standard listed equity option.
const ContractMultiplier = 100

// FormatContractPremium quotes a per-share price at four decimals and scales
// it to one contract of multiplier shares.
func FormatContractPremium(v float64, multiplier int64) string {
	m, ok := decimal.NewMoney(v)
	if !ok {
		return "n/a"
	}
	return m.Round(4).PerContract(multiplier).Format()
}

// FormatPercentage renders a fraction as a percentage with 2 decimals.
func FormatPercentage(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(fraction*100, 'f', 2, 64) + "%"
}
