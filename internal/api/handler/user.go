package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating"
)

// ListUsers lista todos os usuários não removidos
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuários")
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}

// UpdateUser altera nome, email, status, role ou remove o usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var updateReq domain.UpdateUserRequest
		if !decodeBody(w, r, &updateReq) {
			return
		}
		updateReq.ID = id

		if err := service.UpdateUser(r.Context(), &updateReq); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		logrus.WithField("user_id", id).Info("Usuário atualizado")
		w.WriteHeader(http.StatusNoContent)
	}
}
