package handler

import (
	"net/http"

	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
)

func ListWeeklyEntries(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		entries, err := reporter.ListWeeklyEntries(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar lançamentos semanais")
			return
		}

		writeJSON(w, r, http.StatusOK, entries)
	}
}

func CreateWeeklyEntry(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		input, ok := decodeInput(w, r, reporting.DecodeEntryInput)
		if !ok {
			return
		}

		entry, err := reporter.CreateWeeklyEntry(r.Context(), userClaims.UserID, input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar lançamento semanal")
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}
