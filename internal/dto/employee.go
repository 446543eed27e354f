package dto

import dom "Staff/internal/domain"

// EmployeeForm is the body for the create and update forms. All fields are
// optional: a field missing from the form is stored as an empty string.
type EmployeeForm struct {
	Name             string `form:"name"`
	Position         string `form:"position"`
	Department       string `form:"department"`
	ContactInfo      string `form:"contact_info"`
	EmploymentStatus string `form:"employment_status"`
}

// Fields converts the form to domain fields.
func (f EmployeeForm) Fields() dom.EmployeeFields {
	return dom.EmployeeFields{
		Name:             f.Name,
		Position:         f.Position,
		Department:       f.Department,
		ContactInfo:      f.ContactInfo,
		EmploymentStatus: f.EmploymentStatus,
	}
}
