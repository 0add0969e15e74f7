package cli

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/services"
)

// parseHours parses an hours argument into a decimal value
func parseHours(value string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.NewInvalidInputError("hours", value, "must be a decimal number")
	}
	return hours, nil
}

// parseDateRange builds an inclusive date range from optional --from and
// --to flag values
func parseDateRange(from, to string) (services.DateRange, error) {
	var dateRange services.DateRange

	if from != "" {
		start, err := time.Parse(domain.DateLayout, from)
		if err != nil {
			return dateRange, errors.NewInvalidInputError("from", from, "must be a date in YYYY-MM-DD form")
		}
		dateRange.Start = &start
	}
	if to != "" {
		end, err := time.Parse(domain.DateLayout, to)
		if err != nil {
			return dateRange, errors.NewInvalidInputError("to", to, "must be a date in YYYY-MM-DD form")
		}
		dateRange.End = &end
	}

	return dateRange, nil
}

// buildSelector assembles an entry selector from the --id flag or the
// employee/project/date triple flags. Completeness of the triple is
// checked by the service layer.
func buildSelector(entryID int64, employee, project, date string) services.Selector {
	if entryID > 0 {
		return services.ByID(entryID)
	}
	return services.ByKey(employee, project, date)
}
