package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Backend    string `json:"backend,omitempty"`
	Courses    *int   `json:"courses,omitempty"`
	Products   *int   `json:"products,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Saves      *int   `json:"saves,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type sessionSummary struct {
	Page      string `json:"page"`
	Points    int    `json:"points"`
	Rank      string `json:"rank"`
	Badges    int    `json:"badges"`
	CartLines int    `json:"cart_lines"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
	Session    sessionSummary             `json:"session"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.Catalog.Current()
		courses, products := len(cat.Courses), len(cat.Products)

		components := map[string]componentStatus{
			"catalog": {
				OK:         len(cat.Ranks) > 0,
				Courses:    &courses,
				Products:   &products,
				LastReload: d.Catalog.LastReload().Format("2006-01-02 15:04:05"),
			},
			"store": storeStatus(r, d),
		}

		snap := d.Session.Snapshot()
		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
			Session: sessionSummary{
				Page:      snap.Page,
				Points:    snap.Profile.Points,
				Rank:      d.Session.Rank().Current.Name,
				Badges:    len(snap.Profile.Badges),
				CartLines: len(snap.Cart),
			},
		})
	}
}

func storeStatus(r *http.Request, d deps.Deps) componentStatus {
	saves, lastErr := d.Session.PersistStats()
	st := componentStatus{OK: true, Saves: &saves}
	if d.Slot == nil {
		st.Backend = "none"
		st.Impact = "session-not-persisted"
		return st
	}

	st.Backend = d.Slot.Name()
	if err := pingSlot(r.Context(), d.Slot); err != nil {
		st.OK = false
		st.Impact = "session-changes-not-persisted"
		st.Error = err.Error()
		return st
	}
	if lastErr != nil {
		st.OK = false
		st.Impact = "last-save-failed"
		st.Error = lastErr.Error()
	}
	return st
}

func overallStatus(components map[string]componentStatus) string {
	if !components["catalog"].OK {
		return "critical"
	}
	if !components["store"].OK {
		return "degraded"
	}
	return "ok"
}
