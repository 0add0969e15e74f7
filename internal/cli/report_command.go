package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skywardcloud/projectmgt/internal/services"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Employee string
	Project  string
	From     string
	To       string
	GroupBy  string
	Period   string
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report and renders it: grouped rows when dimensions
// were requested, otherwise the flat audit view with running totals.
func (c *ReportCommand) Execute(ctx context.Context) error {
	spec := services.ReportSpec{
		Period: services.Granularity(c.Period),
	}
	if c.Employee != "" {
		spec.Employee = &c.Employee
	}
	if c.Project != "" {
		spec.Project = &c.Project
	}

	dateRange, err := parseDateRange(c.From, c.To)
	if err != nil {
		return err
	}
	spec.Range = dateRange

	if c.GroupBy != "" {
		for _, dim := range strings.Split(c.GroupBy, ",") {
			spec.GroupBy = append(spec.GroupBy, services.Dimension(strings.TrimSpace(dim)))
		}
	}

	report, err := c.app.api.Report(ctx, spec)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	if report.Empty() {
		fmt.Fprintln(c.app.out, "No entries found")
		return nil
	}

	if report.Grouped {
		for _, row := range report.Rows {
			fmt.Fprintf(c.app.out, "%s: %s\n", strings.Join(row.Keys, " / "), row.TotalHours.String())
		}
	} else {
		for _, row := range report.Entries {
			fmt.Fprintf(c.app.out, "%s  %-20s %-20s %6s  (running %s)\n",
				row.Entry.DateString(), row.Entry.EmployeeName, row.Entry.ProjectName,
				row.Entry.Hours.String(), row.RunningTotal.String())
		}
	}
	fmt.Fprintf(c.app.out, "Total: %s\n", report.TotalHours.String())
	return nil
}
