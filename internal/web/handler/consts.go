package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// AdminPath is the admin login page.
	AdminPath = "/admin"

	// DashboardPath is the admin dashboard page.
	DashboardPath = AdminPath + "/dashboard"

	// APIPath is the prefix of all JSON endpoints.
	APIPath = "/api"

	// MsgServerError is the body of every unexpected failure.
	MsgServerError = "Server error"

	// MsgInvalidRequest is returned for bodies that can not be parsed.
	MsgInvalidRequest = "Invalid request body"
)
