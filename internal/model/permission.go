package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionCoursesRead allows viewing courses and their chapters and tasks.
	PermissionCoursesRead Permission = "courses:read"

	// PermissionCoursesCopy allows duplicating a course with its chapters and tasks.
	PermissionCoursesCopy Permission = "courses:copy"

	// PermissionOrdersPreview allows building order line items for preview.
	PermissionOrdersPreview Permission = "orders:preview"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionCoursesRead,
	PermissionCoursesCopy,
	PermissionOrdersPreview,
}
