package web

import (
	"fmt"
	"net/http"

	"github.com/litgrid/litgrid/internal/logging"
)

// writeError logs the full message server-side and sends a short, sanitized
// reply to the client. Errors here are never fatal to the page: the partial
// that failed is simply replaced by the message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", message,
	)

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `<div class="alert" role="alert">%s</div>`, http.StatusText(status))
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
