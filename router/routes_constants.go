package router

// Route path constants
// Client-side destinations the application can navigate to
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// Backend API paths
const (
	APIUserLogin = "/user/login"
	APIPage      = "/api/page/"
	APIPreview   = "/api/preview"
)
