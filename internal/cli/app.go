package cli

import (
	"io"
	"os"
	"time"

	"github.com/skywardcloud/projectmgt/internal/api"
	"github.com/skywardcloud/projectmgt/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application. Command handlers write their
// output to Out so tests can capture it.
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}

// NewAppWithOutput creates an application writing to the given writer
func NewAppWithOutput(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    out,
	}
}
