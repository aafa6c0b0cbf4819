package handler

import (
	"net/http"

	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
)

// GetStrategyConfig devolve o plano do usuário ou o padrão com isDefault=true
func GetStrategyConfig(store strategizing.ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		response, err := store.GetEffectiveConfig(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar configuração estratégica")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func PutStrategyConfig(store strategizing.ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		input, ok := decodeInput(w, r, strategizing.DecodeInput)
		if !ok {
			return
		}

		response, err := store.PutConfig(r.Context(), userClaims.UserID, input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar configuração estratégica")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

// GetStrategicTargets devolve o funil anual e por trimestre
func GetStrategicTargets(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		targets, err := reporter.GetTargets(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular metas estratégicas")
			return
		}

		writeJSON(w, r, http.StatusOK, targets)
	}
}
