package cli

import (
	"context"
	"fmt"

	"github.com/skywardcloud/projectmgt/internal/services"
)

// UpdateCommand handles the update command. The entry is selected either
// by --id or by the --employee/--project/--date triple; --hours and
// --new-date carry the replacement values.
type UpdateCommand struct {
	app          *App
	errorHandler *ErrorHandler

	EntryID  int64
	Employee string
	Project  string
	Date     string
	Hours    string
	NewDate  string
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute applies the requested changes to the selected entry
func (c *UpdateCommand) Execute(ctx context.Context) error {
	changes := services.EntryChanges{Today: timeNow()}

	if c.Hours != "" {
		hours, err := parseHours(c.Hours)
		if err != nil {
			return err
		}
		changes.Hours = &hours
	}
	if c.NewDate != "" {
		date := c.NewDate
		changes.Date = &date
	}

	sel := buildSelector(c.EntryID, c.Employee, c.Project, c.Date)
	id, err := c.app.api.UpdateEntry(ctx, sel, changes)
	if err != nil {
		return c.errorHandler.Handle("update entry", err)
	}

	fmt.Fprintf(c.app.out, "Updated entry %d\n", id)
	return nil
}
