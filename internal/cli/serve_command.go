package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/skywardcloud/projectmgt/internal/web"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app *App

	Addr string
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute starts the HTTP server and blocks until it stops or the context
// is cancelled
func (c *ServeCommand) Execute(ctx context.Context) error {
	addr := c.Addr
	if addr == "" {
		addr = c.app.config.Server.Addr
	}

	handler := web.NewHandler(c.app.api)
	router := web.NewRouter(handler, c.app.config.Server.AllowedOrigins)

	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	fmt.Fprintf(c.app.out, "Listening on %s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
