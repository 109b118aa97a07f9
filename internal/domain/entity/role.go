// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleHeadOffice indicates head-office staff with system-wide visibility.
	RoleHeadOffice Role = "head_office"
	// RoleRDCStaff indicates regional distribution-center staff.
	RoleRDCStaff Role = "rdc_staff"
	// RoleLogistics indicates a logistics driver.
	RoleLogistics Role = "logistics"
	// RoleCustomer indicates a retail customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleHeadOffice, RoleRDCStaff, RoleLogistics, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to internal staff rather than a customer.
func (r Role) IsStaff() bool {
	switch r {
	case RoleHeadOffice, RoleRDCStaff, RoleLogistics:
		return true
	default:
		return false
	}
}
