package cli

import (
	"context"
	"fmt"

	"github.com/skywardcloud/projectmgt/internal/errors"
)

// DistributionCommand handles the distribution command
type DistributionCommand struct {
	app          *App
	errorHandler *ErrorHandler

	From string
	To   string
}

// NewDistributionCommand creates a new distribution command handler
func NewDistributionCommand(app *App) *DistributionCommand {
	return &DistributionCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints one employee's hours broken down per project
func (c *DistributionCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "distribution",
			"usage: timesheet distribution EMPLOYEE")
	}

	dateRange, err := parseDateRange(c.From, c.To)
	if err != nil {
		return err
	}

	distribution, err := c.app.api.EmployeeDistribution(ctx, args[0], dateRange)
	if err != nil {
		return c.errorHandler.Handle("compute distribution", err)
	}

	if len(distribution) == 0 {
		fmt.Fprintln(c.app.out, "No entries found")
		return nil
	}

	for _, row := range distribution {
		fmt.Fprintf(c.app.out, "%s: %s\n", row.Project, row.TotalHours.String())
	}
	return nil
}
