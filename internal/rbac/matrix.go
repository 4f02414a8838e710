// Package rbac holds the static section/role permission matrix. The matrix is
// built once at process start and queried by exact-match lookup; unknown
// sections or roles fail closed.
package rbac

// Section identifiers.
const (
	SectionAdmissions = "admissions"
	SectionFees       = "fees"
	SectionHostel     = "hostel"
	SectionExams      = "exams"
	SectionLibrary    = "library"
	SectionTransport  = "transport"
	SectionDashboard  = "dashboard"
)

// Role labels. Role is a caller-supplied label, not an authenticated identity.
const (
	RoleAdmin     = "Admin"
	RoleClerk     = "Clerk"
	RoleAccounts  = "Accounts"
	RoleWarden    = "Warden"
	RoleExamCell  = "ExamCell"
	RoleLibrarian = "Librarian"
	RoleTransport = "Transport"
	RoleViewer    = "Viewer"
)

var allRoles = []string{
	RoleAdmin,
	RoleClerk,
	RoleAccounts,
	RoleWarden,
	RoleExamCell,
	RoleLibrarian,
	RoleTransport,
	RoleViewer,
}

var allSections = []string{
	SectionAdmissions,
	SectionFees,
	SectionHostel,
	SectionExams,
	SectionLibrary,
	SectionTransport,
	SectionDashboard,
}

type capability struct {
	view map[string]struct{}
	edit map[string]struct{}
}

var matrix = map[string]capability{
	SectionAdmissions: {view: roleSet(RoleAdmin, RoleClerk), edit: roleSet(RoleAdmin, RoleClerk)},
	SectionFees:       {view: roleSet(RoleAdmin, RoleAccounts), edit: roleSet(RoleAdmin, RoleAccounts)},
	SectionHostel:     {view: roleSet(RoleAdmin, RoleWarden), edit: roleSet(RoleAdmin, RoleWarden)},
	SectionExams:      {view: roleSet(RoleAdmin, RoleExamCell), edit: roleSet(RoleAdmin, RoleExamCell)},
	SectionLibrary:    {view: roleSet(RoleAdmin, RoleLibrarian), edit: roleSet(RoleAdmin, RoleLibrarian)},
	SectionTransport:  {view: roleSet(RoleAdmin, RoleTransport), edit: roleSet(RoleAdmin, RoleTransport)},
	SectionDashboard:  {view: roleSet(allRoles...), edit: roleSet(RoleAdmin)},
}

func roleSet(roles ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// CanView reports whether the role may view the section.
func CanView(section, role string) bool {
	cap, ok := matrix[section]
	if !ok {
		return false
	}
	_, allowed := cap.view[role]
	return allowed
}

// CanEdit reports whether the role may perform mutating actions on the section.
func CanEdit(section, role string) bool {
	cap, ok := matrix[section]
	if !ok {
		return false
	}
	_, allowed := cap.edit[role]
	return allowed
}

// ValidRole reports whether the label is one of the eight recognised roles.
func ValidRole(role string) bool {
	for _, known := range allRoles {
		if role == known {
			return true
		}
	}
	return false
}

// Roles returns the recognised role labels in display order.
func Roles() []string {
	return append([]string(nil), allRoles...)
}

// Sections returns every section identifier, dashboard last.
func Sections() []string {
	return append([]string(nil), allSections...)
}
