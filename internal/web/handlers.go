package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/api"
	"github.com/skywardcloud/projectmgt/internal/domain"
	apperrors "github.com/skywardcloud/projectmgt/internal/errors"
	"github.com/skywardcloud/projectmgt/internal/services"
	"github.com/skywardcloud/projectmgt/internal/validation"
)

// Handler holds the dependencies for all HTTP handlers
type Handler struct {
	API api.API

	// now supplies the reference date for the future-date rule;
	// overridable in tests
	now func() time.Time
}

// NewHandler creates a new handler over the timesheet API
func NewHandler(a api.API) *Handler {
	return &Handler{API: a, now: time.Now}
}

// RegisterEmployee registers an employee name.
// POST /api/employees
func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	h.resolveName(w, r, services.KindEmployee)
}

// RegisterProject registers a project name.
// POST /api/projects
func (h *Handler) RegisterProject(w http.ResponseWriter, r *http.Request) {
	h.resolveName(w, r, services.KindProject)
}

func (h *Handler) resolveName(w http.ResponseWriter, r *http.Request, kind services.Kind) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	res, err := h.API.ResolveOrCreate(r.Context(), kind, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, ResolutionResponse{ID: res.ID, Created: res.Created})
}

// ListEmployees returns all registered employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.API.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// ListProjects returns all registered projects.
// GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.API.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// LogEntry records a validated time entry.
// POST /api/entries
func (h *Handler) LogEntry(w http.ResponseWriter, r *http.Request) {
	var req LogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	id, err := h.API.LogEntry(r.Context(), services.LogRequest{
		Employee: req.Employee,
		Project:  req.Project,
		Hours:    req.Hours,
		Date:     req.Date,
		Remarks:  req.Remarks,
		Today:    h.now(),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, EntryResponse{ID: id})
}

// UpdateEntry replaces the hours and/or date of an entry selected by ID.
// PUT /api/entries/{id}
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id", err)
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.API.UpdateEntry(r.Context(), services.ByID(id), services.EntryChanges{
		Hours: req.Hours,
		Date:  req.Date,
		Today: h.now(),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EntryResponse{ID: updated})
}

// DeleteEntry removes an entry selected by ID.
// DELETE /api/entries/{id}
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id", err)
		return
	}

	deleted, err := h.API.DeleteEntry(r.Context(), services.ByID(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EntryResponse{ID: deleted})
}

// Report runs a report query described entirely by query parameters:
// employee, project, from, to, group_by (comma separated) and period.
// GET /api/report
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	spec := services.ReportSpec{
		Employee: queryPtr(r, "employee"),
		Project:  queryPtr(r, "project"),
		Period:   services.Granularity(r.URL.Query().Get("period")),
	}

	dateRange, err := queryDateRange(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	spec.Range = dateRange

	if groupBy := r.URL.Query().Get("group_by"); groupBy != "" {
		for _, dim := range strings.Split(groupBy, ",") {
			spec.GroupBy = append(spec.GroupBy, services.Dimension(strings.TrimSpace(dim)))
		}
	}

	report, err := h.API.Report(r.Context(), spec)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := ReportResponse{Report: report}
	if report.Empty() {
		resp.Message = "no entries found"
	}
	writeJSON(w, http.StatusOK, resp)
}

// TopEmployees ranks employees by total hours.
// GET /api/top
func (h *Handler) TopEmployees(w http.ResponseWriter, r *http.Request) {
	spec := services.TopSpec{Project: queryPtr(r, "project")}

	dateRange, err := queryDateRange(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	spec.Range = dateRange

	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit", err)
			return
		}
		spec.Limit = n
	}

	ranked, err := h.API.TopEmployees(r.Context(), spec)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ranked)
}

// Overworked lists employees with a pattern of long days. The threshold
// and days query parameters override the detection defaults.
// GET /api/overworked
func (h *Handler) Overworked(w http.ResponseWriter, r *http.Request) {
	var spec services.OverworkSpec

	dateRange, err := queryDateRange(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	spec.Range = dateRange

	if threshold := r.URL.Query().Get("threshold"); threshold != "" {
		d, err := decimal.NewFromString(threshold)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid threshold", err)
			return
		}
		spec.Threshold = d
	}

	if days := r.URL.Query().Get("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid days", err)
			return
		}
		spec.Days = n
	}

	flagged, err := h.API.Overworked(r.Context(), spec)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OverworkedResponse{Employees: flagged})
}

// EmployeeDistribution breaks one employee's hours down per project.
// GET /api/distribution
func (h *Handler) EmployeeDistribution(w http.ResponseWriter, r *http.Request) {
	employee := r.URL.Query().Get("employee")
	if employee == "" {
		writeError(w, http.StatusBadRequest, "employee query parameter is required", nil)
		return
	}

	dateRange, err := queryDateRange(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	distribution, err := h.API.EmployeeDistribution(r.Context(), employee, dateRange)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, distribution)
}

// CreateProjectRecord stores a management-facing project record.
// POST /api/project-records
func (h *Handler) CreateProjectRecord(w http.ResponseWriter, r *http.Request) {
	var record domain.ProjectRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.API.CreateProjectRecord(r.Context(), record)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListProjectRecords returns all managed project records.
// GET /api/project-records
func (h *Handler) ListProjectRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.API.ListProjectRecords(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// AssignUser assigns a user to a managed project.
// POST /api/project-records/{id}/assignments
func (h *Handler) AssignUser(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id", err)
		return
	}

	var req AssignUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.API.AssignUser(r.Context(), projectID, req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, AssignUserResponse{Created: created})
}

// ListAssignments returns the users assigned to a managed project.
// GET /api/project-records/{id}/assignments
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id", err)
		return
	}

	assignments, err := h.API.ListAssignments(r.Context(), projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}

func queryPtr(r *http.Request, key string) *string {
	if value := r.URL.Query().Get(key); value != "" {
		return &value
	}
	return nil
}

func queryDateRange(r *http.Request) (services.DateRange, error) {
	var dateRange services.DateRange

	if from := r.URL.Query().Get("from"); from != "" {
		start, err := time.Parse(domain.DateLayout, from)
		if err != nil {
			return dateRange, validation.NewEntryError(validation.ReasonMalformedDate, "from",
				"must be a calendar date in YYYY-MM-DD form", from)
		}
		dateRange.Start = &start
	}
	if to := r.URL.Query().Get("to"); to != "" {
		end, err := time.Parse(domain.DateLayout, to)
		if err != nil {
			return dateRange, validation.NewEntryError(validation.ReasonMalformedDate, "to",
				"must be a calendar date in YYYY-MM-DD form", to)
		}
		dateRange.End = &end
	}

	return dateRange, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps service-layer errors to HTTP status codes:
// validation failures are 400 with their reason, missing resources 404,
// conflicts 409, storage failures 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var entryErr *validation.EntryError
	if errors.As(err, &entryErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  entryErr.Message,
			Reason: string(entryErr.Reason),
		})
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		status := http.StatusInternalServerError
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrorTypeConflict:
			status = http.StatusConflict
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeInvalidInput:
			status = http.StatusBadRequest
		}
		writeJSON(w, status, ErrorResponse{Error: apperrors.GetUserMessage(err)})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal error", err)
}
