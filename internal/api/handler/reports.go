package handler

import (
	"net/http"

	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
)

func GetMonthlyReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		rollups, err := reporter.GetMonthlyReport(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório mensal")
			return
		}

		writeJSON(w, r, http.StatusOK, rollups)
	}
}

func GetQuarterlyReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		year, ok := queryYear(w, r)
		if !ok {
			return
		}

		rollups, err := reporter.GetQuarterlyReport(r.Context(), userClaims.UserID, year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório trimestral")
			return
		}

		writeJSON(w, r, http.StatusOK, rollups)
	}
}

// GetMonthlySnapshot devolve o fechamento armazenado de ?period=mm-yyyy
func GetMonthlySnapshot(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro 'period' é obrigatório (formato mm-yyyy)", nil)
			return
		}

		snapshot, err := reporter.GetSnapshot(r.Context(), userClaims.UserID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar fechamento mensal")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}

func GetSnapshotHistory(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		year, ok := queryYear(w, r)
		if !ok {
			return
		}

		snapshots, err := reporter.GetSnapshotHistory(r.Context(), userClaims.UserID, year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de fechamentos")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	}
}

func GetSnapshotPeriods(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		periods, err := reporter.ListSnapshotPeriods(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar períodos disponíveis")
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	}
}
