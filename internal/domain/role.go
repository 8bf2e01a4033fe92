package domain

type RoleName string

const (
	RoleSuperAdmin RoleName = "super_admin"
	RoleAdmin      RoleName = "admin"
	RoleStaff      RoleName = "staff"
	RoleCustomer   RoleName = "customer"
)

// ImportRoles are the roles allowed to run bulk imports.
var ImportRoles = []RoleName{RoleSuperAdmin, RoleAdmin}
