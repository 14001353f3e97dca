package rest

import (
	"net/http"

	"github.com/heartmarshall/uievents-backend/internal/transport/rest/static"
)

// Index serves the embedded demo page at the site root.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(static.IndexHTML) //nolint:errcheck
}
