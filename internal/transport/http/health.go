package http

import (
	stdhttp "net/http"
)

// HealthHandler answers liveness probes. It deliberately touches no store:
// a wedged database must not fail the probe.
func HealthHandler(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
