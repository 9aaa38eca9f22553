package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/barrier-pricer/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport writes report to w using the named formatter.
func GenerateReport(report *domain.PricingReport, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, w)
}
