package domain

import "time"

// Employee is the domain entity for one employee record.
// Не зависит от Gin, Postgres, Redis.
type Employee struct {
	ID               string
	Name             string
	Position         string
	Department       string
	ContactInfo      string
	EmploymentStatus string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeFields are the five mutable fields of a record. Create and Update
// always apply all five: a field left empty is stored empty.
type EmployeeFields struct {
	Name             string
	Position         string
	Department       string
	ContactInfo      string
	EmploymentStatus string
}
