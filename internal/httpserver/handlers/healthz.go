package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
)

// healthzResponse is the liveness payload. It never touches the session or
// the slot, so a slow backend cannot make the process look dead.
type healthzResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Uptime    string `json:"uptime"`
	StartedAt string `json:"started_at"`
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

func Healthz(d deps.Deps) http.HandlerFunc {
	started := d.StartTime.UTC().Format(time.RFC3339)
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:    "ok",
			Service:   "makerhub",
			Uptime:    time.Since(d.StartTime).Truncate(time.Second).String(),
			StartedAt: started,
			Version:   d.Version,
			Commit:    d.Commit,
			BuildDate: d.BuildDate,
			GoVersion: d.GoVersion,
		})
	}
}
