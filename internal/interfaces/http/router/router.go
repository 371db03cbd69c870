package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// StaticMount maps a URL path to a file or directory on disk
type StaticMount struct {
	URLPath string
	Target  string
	Dir     bool
}

// Router wires handlers and static mounts onto a gin engine
type Router struct {
	engine *gin.Engine
}

// New creates a Router over the given engine
func New(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Register registers all handlers at the engine root
func (r *Router) Register(registrars ...RouteRegistrar) {
	root := r.engine.Group("")
	for _, reg := range registrars {
		reg.RegisterRoutes(root)
	}
}

// Mount attaches static file and directory routes. Artifact files are served
// even when they do not exist yet; gin answers 404 until the first upload.
func (r *Router) Mount(mounts ...StaticMount) {
	for _, m := range mounts {
		if m.Dir {
			r.engine.Static(m.URLPath, m.Target)
			continue
		}
		r.engine.StaticFile(m.URLPath, m.Target)
	}
}
