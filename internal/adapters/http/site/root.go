// Package site serves the embedded dashboard front end.
package site

import (
	"context"
	"net/http"
)

// Register attaches the dashboard page and its assets to mux at /.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("GET /", noCache(http.FileServer(FS())))
}

// noCache keeps browsers from pinning an old app.js across restarts.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		next.ServeHTTP(w, r)
	})
}
