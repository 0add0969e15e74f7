package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/domain"
	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
)

// rankingServiceImpl implements the RankingService interface
type rankingServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewRankingService creates a new RankingService instance
func NewRankingService(repo sqlite.Repository) RankingService {
	return &rankingServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// TopEmployees sums hours per employee within the range (optionally
// restricted to one project), orders descending by total with ties broken
// by name ascending, and returns the first Limit rows.
func (r *rankingServiceImpl) TopEmployees(ctx context.Context, spec TopSpec) ([]EmployeeHours, error) {
	entries, err := r.searchEntries(ctx, spec.Project, nil, spec.Range)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		totals[entry.EmployeeName] = totals[entry.EmployeeName].Add(entry.Hours)
	}

	ranked := make([]EmployeeHours, 0, len(totals))
	for employee, total := range totals {
		ranked = append(ranked, EmployeeHours{Employee: employee, TotalHours: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].TotalHours.Equal(ranked[j].TotalHours) {
			return ranked[i].TotalHours.GreaterThan(ranked[j].TotalHours)
		}
		return ranked[i].Employee < ranked[j].Employee
	})

	limit := spec.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// Overworked detects employees with a pattern of long days. Stage one sums
// the hours each employee logged per distinct day; stage two counts, per
// employee, the days whose sum strictly exceeds the threshold. Employees
// whose count reaches the day floor are returned, names ascending. Partial
// entries on one day are summed before the threshold test, so a single
// short entry never trips the flag on its own.
func (r *rankingServiceImpl) Overworked(ctx context.Context, spec OverworkSpec) ([]string, error) {
	entries, err := r.searchEntries(ctx, nil, nil, spec.Range)
	if err != nil {
		return nil, err
	}

	threshold := spec.Threshold
	if threshold.IsZero() {
		threshold = DefaultOverworkThreshold
	}
	days := spec.Days
	if days <= 0 {
		days = DefaultOverworkDays
	}

	type dayKey struct {
		employee string
		date     string
	}
	dailyTotals := make(map[dayKey]decimal.Decimal)
	for _, entry := range entries {
		key := dayKey{employee: entry.EmployeeName, date: entry.DateString()}
		dailyTotals[key] = dailyTotals[key].Add(entry.Hours)
	}

	longDays := make(map[string]int)
	for key, total := range dailyTotals {
		if total.GreaterThan(threshold) {
			longDays[key.employee]++
		}
	}

	var flagged []string
	for employee, count := range longDays {
		if count >= days {
			flagged = append(flagged, employee)
		}
	}
	sort.Strings(flagged)

	return flagged, nil
}

// EmployeeDistribution sums one employee's hours per project within the
// range, ordered by hours descending with ties broken by project name.
func (r *rankingServiceImpl) EmployeeDistribution(ctx context.Context, employee string, dateRange DateRange) ([]ProjectHours, error) {
	entries, err := r.searchEntries(ctx, nil, &employee, dateRange)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		totals[entry.ProjectName] = totals[entry.ProjectName].Add(entry.Hours)
	}

	distribution := make([]ProjectHours, 0, len(totals))
	for project, total := range totals {
		distribution = append(distribution, ProjectHours{Project: project, TotalHours: total})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if !distribution[i].TotalHours.Equal(distribution[j].TotalHours) {
			return distribution[i].TotalHours.GreaterThan(distribution[j].TotalHours)
		}
		return distribution[i].Project < distribution[j].Project
	})

	return distribution, nil
}

func (r *rankingServiceImpl) searchEntries(ctx context.Context, project, employee *string, dateRange DateRange) ([]domain.Entry, error) {
	records, err := r.repo.SearchEntries(ctx, sqlite.SearchOptions{
		ProjectName:  project,
		EmployeeName: employee,
		StartDate:    dateRange.Start,
		EndDate:      dateRange.End,
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.Entry.FromRecordSlice(records), nil
}
