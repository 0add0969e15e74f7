package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/services"
)

// OverworkedCommand handles the overworked command
type OverworkedCommand struct {
	app          *App
	errorHandler *ErrorHandler

	From string
	To   string
}

// NewOverworkedCommand creates a new overworked command handler
func NewOverworkedCommand(app *App) *OverworkedCommand {
	return &OverworkedCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists employees whose long-day pattern crosses the configured
// threshold and day floor
func (c *OverworkedCommand) Execute(ctx context.Context) error {
	dateRange, err := parseDateRange(c.From, c.To)
	if err != nil {
		return err
	}

	spec := services.OverworkSpec{
		Range:     dateRange,
		Threshold: decimal.NewFromFloat(c.app.config.Report.OverworkThreshold),
		Days:      c.app.config.Report.OverworkDays,
	}

	flagged, err := c.app.api.Overworked(ctx, spec)
	if err != nil {
		return c.errorHandler.Handle("detect overwork", err)
	}

	if len(flagged) == 0 {
		fmt.Fprintln(c.app.out, "No overworked employees")
		return nil
	}

	for _, employee := range flagged {
		fmt.Fprintln(c.app.out, employee)
	}
	return nil
}
