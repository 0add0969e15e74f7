package cli

import (
	"context"
	"fmt"

	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/services"
)

// LogCommand handles the log command
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Remarks is an optional note attached to the entry
	Remarks string
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute records a time entry from EMPLOYEE PROJECT HOURS DATE arguments
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errors.NewInvalidInputError("command", "log",
			"usage: timesheet log EMPLOYEE PROJECT HOURS DATE")
	}

	hours, err := parseHours(args[2])
	if err != nil {
		return err
	}

	req := services.LogRequest{
		Employee: args[0],
		Project:  args[1],
		Hours:    hours,
		Date:     args[3],
		Today:    timeNow(),
	}
	if c.Remarks != "" {
		remarks := c.Remarks
		req.Remarks = &remarks
	}

	id, err := c.app.api.LogEntry(ctx, req)
	if err != nil {
		return c.errorHandler.Handle("log entry", err)
	}

	fmt.Fprintf(c.app.out, "Logged %s hours for %s on %s against %s (entry %d)\n",
		hours.String(), args[0], args[3], args[1], id)
	return nil
}
