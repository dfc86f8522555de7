package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading"
)

// DatasetStatus expõe o snapshot carregado e quando isso aconteceu
type DatasetStatus interface {
	loading.DatasetProvider
	LoadedAt() time.Time
}

func HealthcheckHandler(datasets DatasetStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds, err := datasets.Dataset(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "unavailable"})
			return
		}

		writeJSON(w, r, map[string]any{
			"status":            "ok",
			"time":              time.Now().Format(time.RFC3339),
			"dataset_records":   ds.Len(),
			"dataset_loaded_at": datasets.LoadedAt().Format(time.RFC3339),
		})
	})
}
