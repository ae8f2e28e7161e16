package handlers

import (
	"net/http"
)

const landingPage = "<h1>🎉 The stock analysis page has been deployed to EKS successfully! 🎉</h1>"

// HomeHandler serves the static landing page used as a reachability probe.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(landingPage))
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.Health == nil {
		writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	if err := h.Health.HealthCheck(r.Context()); err != nil {
		h.logger().Warn("health check failed", "error", err)
		WriteError(w, "store is unavailable", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
