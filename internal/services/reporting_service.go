package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
)

// Validate rejects grouping dimensions and granularities outside the
// declared sets, so a mistyped query parameter fails instead of producing
// an empty-keyed bucket.
func (s ReportSpec) Validate() error {
	for _, dim := range s.GroupBy {
		switch dim {
		case DimensionProject, DimensionEmployee, DimensionPeriod:
		default:
			return errors.NewInvalidInputError("group_by", string(dim),
				fmt.Sprintf("must be one of %q, %q or %q", DimensionProject, DimensionEmployee, DimensionPeriod))
		}
	}

	switch s.Period {
	case "", GranularityNone, GranularityDaily, GranularityWeekly, GranularityMonthly:
		return nil
	default:
		return errors.NewInvalidInputError("period", string(s.Period),
			fmt.Sprintf("must be one of %q, %q, %q or %q",
				GranularityNone, GranularityDaily, GranularityWeekly, GranularityMonthly))
	}
}

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository) ReportingService {
	return &reportingServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Report interprets a ReportSpec against the committed entry set. With
// grouping dimensions it returns summed buckets ordered lexicographically
// by the keys in declaration order; without dimensions it returns the flat
// audit view ordered by date then employee, each row carrying a running
// grand total. An empty result means nothing matched the filter.
func (r *reportingServiceImpl) Report(ctx context.Context, spec ReportSpec) (*Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	records, err := r.repo.SearchEntries(ctx, sqlite.SearchOptions{
		EmployeeName: spec.Employee,
		ProjectName:  spec.Project,
		StartDate:    spec.Range.Start,
		EndDate:      spec.Range.End,
	})
	if err != nil {
		return nil, err
	}

	entries := r.mapper.Entry.FromRecordSlice(records)

	if len(spec.GroupBy) == 0 {
		return flatReport(entries), nil
	}

	rows := Aggregate(entries, spec.GroupBy, spec.Period)
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalHours)
	}

	return &Report{Grouped: true, Rows: rows, TotalHours: total}, nil
}

// flatReport builds the per-entry audit view. Entries arrive already
// ordered by date then employee name.
func flatReport(entries []domain.Entry) *Report {
	report := &Report{TotalHours: decimal.Zero}
	running := decimal.Zero
	for _, entry := range entries {
		running = running.Add(entry.Hours)
		report.Entries = append(report.Entries, ReportEntry{Entry: entry, RunningTotal: running})
	}
	report.TotalHours = running
	return report
}

// Aggregate buckets entries by the cross product of the requested grouping
// dimensions and sums hours within each bucket. Result rows are ordered
// lexicographically by the grouping keys in declaration order, ascending.
// This is the single routine every grouped view goes through.
func Aggregate(entries []domain.Entry, groupBy []Dimension, period Granularity) []GroupRow {
	buckets := make(map[string]*GroupRow)

	for _, entry := range entries {
		keys := groupKeys(entry, groupBy, period)
		compound := compoundKey(keys)

		row, ok := buckets[compound]
		if !ok {
			row = &GroupRow{Keys: keys, TotalHours: decimal.Zero}
			buckets[compound] = row
		}
		row.TotalHours = row.TotalHours.Add(entry.Hours)
	}

	rows := make([]GroupRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return lessKeys(rows[i].Keys, rows[j].Keys)
	})

	return rows
}

// groupKeys derives the bucket key values for one entry in dimension
// declaration order
func groupKeys(entry domain.Entry, groupBy []Dimension, period Granularity) []string {
	keys := make([]string, len(groupBy))
	for i, dim := range groupBy {
		switch dim {
		case DimensionProject:
			keys[i] = entry.ProjectName
		case DimensionEmployee:
			keys[i] = entry.EmployeeName
		case DimensionPeriod:
			keys[i] = PeriodKey(entry, period)
		}
	}
	return keys
}

// PeriodKey buckets an entry date at the requested granularity: the date
// itself for daily, the ISO week for weekly, the year-month for monthly.
// Granularity none degrades to daily, the identity bucketing.
func PeriodKey(entry domain.Entry, period Granularity) string {
	switch period {
	case GranularityWeekly:
		year, week := entry.EntryDate.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonthly:
		return entry.EntryDate.Format("2006-01")
	default:
		return entry.DateString()
	}
}

// compoundKey joins key values with a separator that cannot appear in a
// date and is vanishingly unlikely in a name, keeping distinct key tuples
// distinct in the bucket map
func compoundKey(keys []string) string {
	compound := ""
	for i, key := range keys {
		if i > 0 {
			compound += "\x1f"
		}
		compound += key
	}
	return compound
}

// lessKeys compares key tuples lexicographically element by element
func lessKeys(a, b []string) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
