package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/pkg/log"
)

func GetDashboard(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		year, ok := queryYear(w, r)
		if !ok {
			return
		}

		dashboard, err := reporter.GetDashboard(r.Context(), userClaims.UserID, year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// ExportDashboard devolve o documento de exportação como anexo JSON.
// Com ?pretty=true o JSON sai indentado.
func ExportDashboard(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		year, ok := queryYear(w, r)
		if !ok {
			return
		}

		export, err := reporter.Export(r.Context(), userClaims.UserID, year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar o painel")
			return
		}

		pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty"))

		var body []byte
		if pretty {
			body, err = json.MarshalIndent(export, "", "  ")
		} else {
			body, err = json.Marshal(export)
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao serializar exportação")
			return
		}

		filename := fmt.Sprintf("dashboard-export-%s.json", export.Timestamp.Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar exportação")
		}
	}
}
