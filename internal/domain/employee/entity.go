package employee

import "time"

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Status enum
type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
	StatusProbation  Status = "Probation"
)

// Employee - directory record. Read-only from the asset and payroll
// subsystems' perspective.
type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	Role         Role
	Status       Status
	PasswordHash string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
