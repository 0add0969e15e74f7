package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/skywardcloud/projectmgt/internal/api"
	"github.com/skywardcloud/projectmgt/internal/config"
	"github.com/skywardcloud/projectmgt/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timesheet",
		Short: "A timesheet validation, registry and aggregation engine",
		Long: `Timesheet is a command-line application for logging, validating and
aggregating employee time entries.

EXAMPLES:
  timesheet add-employee "Alice"                  # Register an employee
  timesheet add-project "Apollo"                  # Register a project
  timesheet log Alice Apollo 7.5 2024-03-01       # Log a time entry
  timesheet update --id 3 --hours 6               # Replace an entry's hours
  timesheet delete --id 3                         # Remove an entry
  timesheet report --project Apollo               # Flat report for a project
  timesheet report --group-by employee,period --period weekly
  timesheet top --limit 5                         # Rank employees by hours
  timesheet overworked                            # Detect long-day patterns
  timesheet distribution Alice                    # Hours per project
  timesheet serve                                 # Start the HTTP API

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  TS_DB_DIR                       Database directory (default: ~/.timesheet)
  TS_DB_FILENAME                  Database filename (default: timesheet.db)
  TS_REPORT_TOP_LIMIT             Default ranking size (default: 10)
  TS_REPORT_OVERWORK_THRESHOLD    Daily hours threshold (default: 9.0)
  TS_REPORT_OVERWORK_DAYS         Long-day floor (default: 3)
  TS_SERVER_ADDR                  HTTP listen address (default: :8080)
  TS_CONFIG                       Config file path (default: ~/.timesheet/config.toml)
  TS_DEBUG                        Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Int("top-limit", 0, "Default ranking size (overrides TS_REPORT_TOP_LIMIT)")
	flags.Float64("overwork-threshold", 0, "Daily hours threshold (overrides TS_REPORT_OVERWORK_THRESHOLD)")
	flags.Int("overwork-days", 0, "Long-day floor (overrides TS_REPORT_OVERWORK_DAYS)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TS_APP_VERBOSE)")
}

// getConfigFromFlags applies global flag overrides to the configuration
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("top-limit") {
		if limit, err := flags.GetInt("top-limit"); err == nil {
			r.config.Report.TopLimit = limit
		}
	}
	if flags.Changed("overwork-threshold") {
		if threshold, err := flags.GetFloat64("overwork-threshold"); err == nil {
			r.config.Report.OverworkThreshold = threshold
		}
	}
	if flags.Changed("overwork-days") {
		if days, err := flags.GetInt("overwork-days"); err == nil {
			r.config.Report.OverworkDays = days
		}
	}
	if flags.Changed("verbose") {
		if verbose, err := flags.GetBool("verbose"); err == nil {
			r.config.Application.Verbose = verbose
		}
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addEmployeeCmd := &cobra.Command{
		Use:   "add-employee [name]",
		Short: "Register an employee",
		Long:  "Register an employee name. Registering an existing name reports the existing identifier.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewRegisterCommand(r.app, services.KindEmployee).Execute(ctx, args)
		},
	}

	addProjectCmd := &cobra.Command{
		Use:   "add-project [name]",
		Short: "Register a project",
		Long:  "Register a project name. Registering an existing name reports the existing identifier.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewRegisterCommand(r.app, services.KindProject).Execute(ctx, args)
		},
	}

	logHandler := NewLogCommand(r.app)
	logCmd := &cobra.Command{
		Use:   "log EMPLOYEE PROJECT HOURS DATE",
		Short: "Log a time entry",
		Long: `Log a validated time entry. Hours must be a positive multiple of 0.5
up to 24, and the date must be today or earlier in YYYY-MM-DD form.
Unknown employee and project names are registered automatically.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return logHandler.Execute(ctx, args)
		},
	}
	logCmd.Flags().StringVar(&logHandler.Remarks, "remarks", "", "Optional note attached to the entry")

	updateHandler := NewUpdateCommand(r.app)
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing entry",
		Long: `Update the hours and/or date of an existing entry. Select the entry
with --id, or with the --employee, --project and --date triple.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return updateHandler.Execute(ctx)
		},
	}
	updateCmd.Flags().Int64Var(&updateHandler.EntryID, "id", 0, "Entry identifier")
	updateCmd.Flags().StringVar(&updateHandler.Employee, "employee", "", "Employee name of the entry")
	updateCmd.Flags().StringVar(&updateHandler.Project, "project", "", "Project name of the entry")
	updateCmd.Flags().StringVar(&updateHandler.Date, "date", "", "Date of the entry (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateHandler.Hours, "hours", "", "Replacement hours value")
	updateCmd.Flags().StringVar(&updateHandler.NewDate, "new-date", "", "Replacement date (YYYY-MM-DD)")

	deleteHandler := NewDeleteCommand(r.app)
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an entry",
		Long: `Delete an existing entry. Select the entry with --id, or with the
--employee, --project and --date triple.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return deleteHandler.Execute(ctx)
		},
	}
	deleteCmd.Flags().Int64Var(&deleteHandler.EntryID, "id", 0, "Entry identifier")
	deleteCmd.Flags().StringVar(&deleteHandler.Employee, "employee", "", "Employee name of the entry")
	deleteCmd.Flags().StringVar(&deleteHandler.Project, "project", "", "Project name of the entry")
	deleteCmd.Flags().StringVar(&deleteHandler.Date, "date", "", "Date of the entry (YYYY-MM-DD)")

	reportHandler := NewReportCommand(r.app)
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report logged hours",
		Long: `Report logged hours, filtered by employee, project and date range.
Without --group-by, entries are listed one per line with a running total.
With --group-by, hours are summed per bucket; dimensions are project,
employee and period, and --period selects daily, weekly or monthly
bucketing for the period dimension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return reportHandler.Execute(ctx)
		},
	}
	reportCmd.Flags().StringVar(&reportHandler.Employee, "employee", "", "Filter by employee name")
	reportCmd.Flags().StringVar(&reportHandler.Project, "project", "", "Filter by project name")
	reportCmd.Flags().StringVar(&reportHandler.From, "from", "", "Start of the date range (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportHandler.To, "to", "", "End of the date range (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportHandler.GroupBy, "group-by", "", "Comma separated grouping dimensions")
	reportCmd.Flags().StringVar(&reportHandler.Period, "period", "", "Period bucketing: daily, weekly or monthly")

	topHandler := NewTopCommand(r.app)
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Rank employees by total hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return topHandler.Execute(ctx)
		},
	}
	topCmd.Flags().StringVar(&topHandler.Project, "project", "", "Restrict the ranking to one project")
	topCmd.Flags().StringVar(&topHandler.From, "from", "", "Start of the date range (YYYY-MM-DD)")
	topCmd.Flags().StringVar(&topHandler.To, "to", "", "End of the date range (YYYY-MM-DD)")
	topCmd.Flags().IntVar(&topHandler.Limit, "limit", 0, "Number of employees to show")

	overworkedHandler := NewOverworkedCommand(r.app)
	overworkedCmd := &cobra.Command{
		Use:   "overworked",
		Short: "Detect employees with a pattern of long days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return overworkedHandler.Execute(ctx)
		},
	}
	overworkedCmd.Flags().StringVar(&overworkedHandler.From, "from", "", "Start of the date range (YYYY-MM-DD)")
	overworkedCmd.Flags().StringVar(&overworkedHandler.To, "to", "", "End of the date range (YYYY-MM-DD)")

	distributionHandler := NewDistributionCommand(r.app)
	distributionCmd := &cobra.Command{
		Use:   "distribution EMPLOYEE",
		Short: "Break an employee's hours down per project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return distributionHandler.Execute(ctx, args)
		},
	}
	distributionCmd.Flags().StringVar(&distributionHandler.From, "from", "", "Start of the date range (YYYY-MM-DD)")
	distributionCmd.Flags().StringVar(&distributionHandler.To, "to", "", "End of the date range (YYYY-MM-DD)")

	serveHandler := NewServeCommand(r.app)
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the server runs until interrupted; no timeout
			return serveHandler.Execute(context.Background())
		},
	}
	serveCmd.Flags().StringVar(&serveHandler.Addr, "addr", "", "Listen address (overrides TS_SERVER_ADDR)")

	r.cmd.AddCommand(addEmployeeCmd, addProjectCmd, logCmd, updateCmd, deleteCmd,
		reportCmd, topCmd, overworkedCmd, distributionCmd, serveCmd)
}

// commandContext builds the bounded context every non-server command runs
// under
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}
