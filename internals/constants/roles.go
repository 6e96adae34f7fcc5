package constants

// Role yang dikenal backend. "super_admin" boleh mengelola admin lain,
// template kontrak, dan edit/hapus kontrak; "admin" hanya lihat + print.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

const (
	ErrOnlySuperAdmin = "هذه الصفحة متاحة للمدير العام فقط"
	ErrLoginRequired  = "يجب تسجيل الدخول أولاً"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
