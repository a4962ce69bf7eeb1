package server

import (
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Route paths relative to the base path.
const (
	RouteIndex    = "/{$}"
	RouteFeatures = "/features.json"
	RouteAssets   = "/assets/"
	RouteIcons    = "/icons/"
	RouteHealth   = "/healthz"
)

// MountPath returns the full path for routePath under basePath.
func MountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}

// RegisterRoutes mounts every server route on mux and returns the registered
// patterns.
func (s *Server) RegisterRoutes(mux Mux) []string {
	base := s.opts.BasePath
	routes := []struct {
		path    string
		handler http.Handler
	}{
		{RouteIndex, s.getOnly(http.HandlerFunc(s.handleIndex))},
		{RouteFeatures, s.getOnly(http.HandlerFunc(s.handleFeatures))},
		{RouteAssets, s.getOnly(http.StripPrefix(MountPath(base, RouteAssets), http.FileServerFS(s.assets)))},
		{RouteIcons, s.getOnly(http.StripPrefix(MountPath(base, RouteIcons), http.HandlerFunc(s.handleIcon)))},
		{RouteHealth, s.getOnly(http.HandlerFunc(s.handleHealth))},
	}

	patterns := make([]string, 0, len(routes))
	for _, route := range routes {
		pattern := MountPath(base, route.path)
		mux.Handle(pattern, route.handler)
		patterns = append(patterns, pattern)
	}
	return patterns
}

func (s *Server) getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
