package domain

import (
	"github.com/shopspring/decimal"

	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:   employee.ID,
		Name: employee.Name,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:   dbEmployee.ID,
		Name: dbEmployee.Name,
	}
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:   project.ID,
		Name: project.Name,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:   dbProject.ID,
		Name: dbProject.Name,
	}
}

// EntryMapper handles conversion between domain entries and database rows.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// FromRecord converts a joined database EntryRecord to a domain Entry.
func (m *EntryMapper) FromRecord(record sqlite.EntryRecord) Entry {
	return Entry{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		ProjectID:    record.ProjectID,
		EmployeeName: record.EmployeeName,
		ProjectName:  record.ProjectName,
		EntryDate:    record.EntryDate,
		Hours:        decimal.NewFromFloat(record.Hours),
		Remarks:      record.Remarks,
	}
}

// FromRecordSlice converts a slice of joined database records to domain Entries.
func (m *EntryMapper) FromRecordSlice(records []*sqlite.EntryRecord) []Entry {
	entries := make([]Entry, len(records))
	for i, record := range records {
		entries[i] = m.FromRecord(*record)
	}
	return entries
}

// ProjectRecordMapper handles conversion between domain and database ProjectRecord models.
type ProjectRecordMapper struct{}

// NewProjectRecordMapper creates a new ProjectRecordMapper instance.
func NewProjectRecordMapper() *ProjectRecordMapper {
	return &ProjectRecordMapper{}
}

// ToDatabase converts a domain ProjectRecord to a database ProjectRecord.
func (m *ProjectRecordMapper) ToDatabase(record ProjectRecord) sqlite.ProjectRecord {
	return sqlite.ProjectRecord{
		ID:             record.ID,
		Code:           record.Code,
		Name:           record.Name,
		Client:         record.Client,
		ManagerID:      record.ManagerID,
		StartDate:      record.StartDate,
		EndDate:        record.EndDate,
		EstimatedHours: record.EstimatedHours,
		ActualHours:    record.ActualHours,
		Status:         record.Status,
		BillingType:    record.BillingType,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// FromDatabase converts a database ProjectRecord to a domain ProjectRecord.
func (m *ProjectRecordMapper) FromDatabase(dbRecord sqlite.ProjectRecord) ProjectRecord {
	return ProjectRecord{
		ID:             dbRecord.ID,
		Code:           dbRecord.Code,
		Name:           dbRecord.Name,
		Client:         dbRecord.Client,
		ManagerID:      dbRecord.ManagerID,
		StartDate:      dbRecord.StartDate,
		EndDate:        dbRecord.EndDate,
		EstimatedHours: dbRecord.EstimatedHours,
		ActualHours:    dbRecord.ActualHours,
		Status:         dbRecord.Status,
		BillingType:    dbRecord.BillingType,
		CreatedAt:      dbRecord.CreatedAt,
		UpdatedAt:      dbRecord.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database ProjectRecords to domain ProjectRecords.
func (m *ProjectRecordMapper) FromDatabaseSlice(dbRecords []*sqlite.ProjectRecord) []ProjectRecord {
	records := make([]ProjectRecord, len(dbRecords))
	for i, dbRecord := range dbRecords {
		records[i] = m.FromDatabase(*dbRecord)
	}
	return records
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee      *EmployeeMapper
	Project       *ProjectMapper
	Entry         *EntryMapper
	ProjectRecord *ProjectRecordMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee:      NewEmployeeMapper(),
		Project:       NewProjectMapper(),
		Entry:         NewEntryMapper(),
		ProjectRecord: NewProjectRecordMapper(),
	}
}
