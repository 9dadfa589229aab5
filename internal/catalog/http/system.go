package http

import (
	"net/http"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
	"github.com/critiqhq/critiq/pkg/slogx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning service status, uptime and version.
//	@Description	Always returns 200 OK while the process is up.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	catalogsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, catalogsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe verifying the database is reachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	catalogsdk.HealthResponse	"ready"
//	@Failure		503	{object}	catalogsdk.ErrorResponse	"store unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness check failed", "error", err)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, catalogsdk.ErrorResponse{
				Detail: "store unreachable",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, catalogsdk.HealthResponse{Status: "ready"})
	}
}
