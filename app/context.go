package app

import (
	"github.com/jrsteele09/go-wiki-client/interceptor"
	"github.com/jrsteele09/go-wiki-client/notifications"
	"github.com/jrsteele09/go-wiki-client/router"
	"github.com/jrsteele09/go-wiki-client/sessions"
)

// Context is the application state shared by the HTTP pipeline and the flows around it.
// Login writes Sessions, logout clears it, and the pipeline reads Sessions while
// writing to Notifications and Router.
type Context struct {
	Sessions      sessions.Store
	Notifications notifications.Sink
	Router        router.Navigator
}

// New creates a Context backed by in-memory implementations
func New() *Context {
	return &Context{
		Sessions:      sessions.NewMemoryStore(),
		Notifications: notifications.NewBoard(),
		Router:        router.NewHistory(router.RouteHome),
	}
}

// Middleware returns the interception pipeline in order: credentials are attached
// to the request, then the response is classified before the caller sees it.
func (c *Context) Middleware(opts ...interceptor.ResponseOption) []interceptor.Middleware {
	return []interceptor.Middleware{
		interceptor.AttachCredentials(c.Sessions),
		interceptor.ClassifyResponse(c.Notifications, c.Router, opts...),
	}
}
