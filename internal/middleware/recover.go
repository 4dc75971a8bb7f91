package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"dogs-api/internal/platform/logger"
)

// Recover es el fallback de errores: cualquier panic que escape de un
// handler se loguea y se responde con un 500 genérico en JSON.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler se propaga tal cual (lo maneja net/http)
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("unhandled panic", map[string]any{
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"message": http.StatusText(http.StatusInternalServerError),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
