package models

// Role gates what an authenticated user may do
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Permission names a capability checked before an operation proceeds
type Permission string

const (
	PermPurchaseCourse      Permission = "courses:purchase"
	PermManageCourses       Permission = "courses:manage"
	PermManageCoupons       Permission = "coupons:manage"
	PermViewOwnTransactions Permission = "transactions:view_own"
	PermViewAllTransactions Permission = "transactions:view_all"
	PermExportTransactions  Permission = "transactions:export"
)

var rolePermissions = map[Role][]Permission{
	RoleStudent: {
		PermPurchaseCourse,
		PermViewOwnTransactions,
	},
	RoleAdmin: {
		PermPurchaseCourse,
		PermManageCourses,
		PermManageCoupons,
		PermViewOwnTransactions,
		PermViewAllTransactions,
		PermExportTransactions,
	},
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role grants the permission
func (r Role) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
