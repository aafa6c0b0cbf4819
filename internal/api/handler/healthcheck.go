package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é satisfeito pela conexão com o PostgreSQL
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Database string    `json:"database,omitempty"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{Status: "ok", Time: time.Now()}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Database = "ok"
			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				response.Status = "degraded"
				response.Database = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, status, response)
	})
}
