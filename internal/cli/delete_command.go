package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command, selecting the entry by --id or
// by the --employee/--project/--date triple
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler

	EntryID  int64
	Employee string
	Project  string
	Date     string
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes the selected entry
func (c *DeleteCommand) Execute(ctx context.Context) error {
	sel := buildSelector(c.EntryID, c.Employee, c.Project, c.Date)
	id, err := c.app.api.DeleteEntry(ctx, sel)
	if err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Fprintf(c.app.out, "Deleted entry %d\n", id)
	return nil
}
