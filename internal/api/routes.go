package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Route struct {
	Name string
	// Method is empty for routes that answer every method.
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func (a *API) Routes() []Route {
	return []Route{
		{Name: "index", Pattern: "/", Handler: a.Index},
		{Name: "health", Method: http.MethodGet, Pattern: "/health", Handler: a.Health},
		{Name: EntityUser.Name, Method: http.MethodGet, Pattern: EntityUser.Pattern(), Handler: a.GetUser},
		{Name: EntityUserToken.Name, Method: http.MethodGet, Pattern: EntityUserToken.Pattern(), Handler: a.GetUserToken},
		{Name: EntityDevice.Name, Method: http.MethodGet, Pattern: EntityDevice.Pattern(), Handler: a.GetDevice},
		{Name: EntitySensor.Name, Method: http.MethodGet, Pattern: EntitySensor.Pattern(), Handler: a.GetSensor},
		{Name: EntitySensorType.Name, Method: http.MethodGet, Pattern: EntitySensorType.Pattern(), Handler: a.GetSensorType},
		{Name: EntityDatapoint.Name, Method: http.MethodGet, Pattern: EntityDatapoint.Pattern(), Handler: a.GetDatapoint},
	}
}

// NewRouter mounts the routing table. Every pattern ending in a slash also
// answers its slashless form with a permanent redirect.
func NewRouter(a *API) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	for _, route := range a.Routes() {
		mount(r, route.Method, route.Pattern, route.Handler)
		if route.Pattern != "/" && strings.HasSuffix(route.Pattern, "/") {
			mount(r, route.Method, strings.TrimSuffix(route.Pattern, "/"), appendSlash)
		}
	}
	return r
}

func mount(r chi.Router, method, pattern string, h http.HandlerFunc) {
	if method == "" {
		r.HandleFunc(pattern, h)
		return
	}
	r.MethodFunc(method, pattern, h)
}

func appendSlash(w http.ResponseWriter, r *http.Request) {
	target := r.URL.EscapedPath() + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			slog.InfoContext(r.Context(), "Request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
