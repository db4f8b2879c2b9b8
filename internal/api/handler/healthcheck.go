package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é satisfeito pela conexão com o postgres
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthcheckTimeout = 2 * time.Second

// HealthcheckHandler responde 200 com o horário do servidor, ou 503 quando o banco não responde
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status":   "ok",
			"time":     time.Now().UTC().Format(time.RFC3339),
			"database": "ok",
		}
		code := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: database unreachable")
				status["status"] = "degraded"
				status["database"] = "unreachable"
				code = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
