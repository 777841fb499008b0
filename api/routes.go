// fleetdesk/api/routes.go
package api

import (
	"net/http"
	"net/url"

	"fleetdesk/utils"
)

// RegisterRoutes registers every route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /{$}", ServeIndex)
	mux.HandleFunc("GET /ws", h.HandleWebSocket)

	mux.HandleFunc("GET /api/initial-state", h.HandleGetInitialState)
	mux.HandleFunc("GET /api/profiles", h.HandleListProfiles)
	mux.HandleFunc("POST /api/dlcs", sameOrigin(h.HandleDetectDlcs))
	mux.HandleFunc("POST /api/player-state", sameOrigin(h.HandlePlayerState))
	mux.HandleFunc("POST /api/export-job", sameOrigin(h.HandleExportJob))

	mux.HandleFunc("POST /api/select-install-path", sameOrigin(h.HandleSelectInstallPath))
	mux.HandleFunc("POST /api/reset-install-path", sameOrigin(h.HandleResetInstallPath))
}

// sameOrigin rejects browser requests sent from another site's page.
func sameOrigin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			u, err := url.Parse(origin)
			if err != nil || u.Host != r.Host {
				utils.WriteJSONError(w, http.StatusForbidden, "cross-origin request rejected")
				return
			}
		}
		next(w, r)
	}
}
