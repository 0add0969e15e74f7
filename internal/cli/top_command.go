package cli

import (
	"context"
	"fmt"

	"github.com/skywardcloud/projectmgt/internal/services"
)

// TopCommand handles the top command
type TopCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Project string
	From    string
	To      string
	Limit   int
}

// NewTopCommand creates a new top command handler
func NewTopCommand(app *App) *TopCommand {
	return &TopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute ranks employees by total hours and prints the leading rows
func (c *TopCommand) Execute(ctx context.Context) error {
	spec := services.TopSpec{Limit: c.Limit}
	if spec.Limit <= 0 {
		spec.Limit = c.app.config.Report.TopLimit
	}
	if c.Project != "" {
		spec.Project = &c.Project
	}

	dateRange, err := parseDateRange(c.From, c.To)
	if err != nil {
		return err
	}
	spec.Range = dateRange

	ranked, err := c.app.api.TopEmployees(ctx, spec)
	if err != nil {
		return c.errorHandler.Handle("rank employees", err)
	}

	if len(ranked) == 0 {
		fmt.Fprintln(c.app.out, "No entries found")
		return nil
	}

	for i, row := range ranked {
		fmt.Fprintf(c.app.out, "%d. %s: %s\n", i+1, row.Employee, row.TotalHours.String())
	}
	return nil
}
