package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/services"
)

// RegisterCommand handles the add-employee and add-project commands
type RegisterCommand struct {
	app          *App
	kind         services.Kind
	errorHandler *ErrorHandler
}

// NewRegisterCommand creates a registration handler for the given kind
func NewRegisterCommand(app *App, kind services.Kind) *RegisterCommand {
	return &RegisterCommand{
		app:          app,
		kind:         kind,
		errorHandler: NewErrorHandler(),
	}
}

// Execute registers the name given on the command line
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", string(c.kind),
			fmt.Sprintf("usage: timesheet add-%s \"name\"", c.kind))
	}
	name := strings.Join(args, " ")

	res, err := c.app.api.ResolveOrCreate(ctx, c.kind, name)
	if err != nil {
		return c.errorHandler.Handle(fmt.Sprintf("add %s", c.kind), err)
	}

	if res.Created {
		fmt.Fprintf(c.app.out, "Added %s %q (id %d)\n", c.kind, strings.TrimSpace(name), res.ID)
	} else {
		fmt.Fprintf(c.app.out, "%s %q already exists (id %d)\n", c.kind, strings.TrimSpace(name), res.ID)
	}
	return nil
}
