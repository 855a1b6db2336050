package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// HandlerFunc is the handler signature registered on the router.
type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
}

// Router is a small net/http router with `*` path segments and request
// logging. Routes are matched in registration order, so register specific
// paths before generic ones.
type Router struct {
	routes []route
}

// New creates an empty Router.
func New() *Router {
	return &Router{}
}

func (r *Router) handle(method, path string, h HandlerFunc) {
	r.routes = append(r.routes, route{
		method:   method,
		segments: splitPath(path),
		handler:  h,
	})
}

func (r *Router) GET(path string, h HandlerFunc)    { r.handle(http.MethodGet, path, h) }
func (r *Router) POST(path string, h HandlerFunc)   { r.handle(http.MethodPost, path, h) }
func (r *Router) PUT(path string, h HandlerFunc)    { r.handle(http.MethodPut, path, h) }
func (r *Router) PATCH(path string, h HandlerFunc)  { r.handle(http.MethodPatch, path, h) }
func (r *Router) DELETE(path string, h HandlerFunc) { r.handle(http.MethodDelete, path, h) }

// ServeHTTP dispatches the request and logs it with method, status and
// duration.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	segments := splitPath(req.URL.Path)

	handler, pathKnown := r.match(req.Method, segments)
	switch {
	case handler != nil:
		handler(lrw, req)
	case pathKnown:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// match returns the first route whose pattern matches, plus whether any
// route matches the path regardless of method (for 405 responses).
func (r *Router) match(method string, segments []string) (HandlerFunc, bool) {
	pathKnown := false
	for _, rt := range r.routes {
		if !matchSegments(segments, rt.segments) {
			continue
		}
		pathKnown = true
		if rt.method == method {
			return rt.handler, true
		}
	}
	return nil, pathKnown
}

// matchSegments compares a request path against a pattern. A `*` segment
// matches exactly one path segment; a trailing `*` matches one or more
// remaining segments.
func matchSegments(path, pattern []string) bool {
	for i, p := range pattern {
		trailing := i == len(pattern)-1 && p == "*"
		if trailing {
			return len(path) > i
		}
		if i >= len(path) {
			return false
		}
		if p != "*" && p != path[i] {
			return false
		}
	}
	return len(path) == len(pattern)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Start runs the HTTP server on addr.
func (r *Router) Start(addr string) error {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	return http.ListenAndServe(addr, r)
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
