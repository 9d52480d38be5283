package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/pkg/pkguid"
	"github.com/gorilla/mux"
)

// HandlerFunc is the endpoint signature used across modules. The
// returned value is encoded as JSON; the returned error is mapped to a
// status code through its business code.
type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *mux.Router
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{mux: mux.NewRouter(), uid: uid}
}

func (rt *Router) GET(path string, h HandlerFunc) {
	rt.handle(http.MethodGet, path, h)
}

func (rt *Router) POST(path string, h HandlerFunc) {
	rt.handle(http.MethodPost, path, h)
}

func (rt *Router) PUT(path string, h HandlerFunc) {
	rt.handle(http.MethodPut, path, h)
}

func (rt *Router) DELETE(path string, h HandlerFunc) {
	rt.handle(http.MethodDelete, path, h)
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

// PathParam returns the named path variable registered on the route.
func PathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func (rt *Router) handle(method, path string, h HandlerFunc) {
	rt.mux.HandleFunc(path, rt.wrap(h)).Methods(method, http.MethodOptions)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (rt *Router) wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		requestID := rt.uid.Generate()
		w.Header().Set("X-Request-Id", requestID)
		w.Header().Set("Content-Type", "application/json")

		started := time.Now()
		resp, err := h(r.Context(), r)
		if err != nil {
			status := statusOf(err)
			slog.ErrorContext(r.Context(), "request failed",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"error", err,
			)
			w.WriteHeader(status)
			//nolint:errcheck // response writer errors are not recoverable here
			json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			return
		}

		slog.InfoContext(r.Context(), "request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"took_ms", time.Since(started).Milliseconds(),
		)
		//nolint:errcheck // response writer errors are not recoverable here
		json.NewEncoder(w).Encode(resp)
	}
}

func statusOf(err error) int {
	switch pkgerror.CodeOf(err) {
	case pkgerror.CodeInvalidInput:
		return http.StatusBadRequest
	case pkgerror.CodeNotFound:
		return http.StatusNotFound
	case pkgerror.CodeConflict:
		return http.StatusConflict
	case pkgerror.CodeNoSelection:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
