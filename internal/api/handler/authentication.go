package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
)

// LoginRequest aceita username ou email no campo login. O campo email é
// mantido para clientes antigos.
type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		login := req.Login
		if login == "" {
			login = req.Email
		}

		if login == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Login e senha são obrigatórios", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), login, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// Logout revoga o token usado na própria requisição
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), userClaims); err != nil {
			writeServiceError(w, r, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere apenas a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, ok := pathID(w, r)
		if !ok {
			return
		}

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if userClaims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar senha")
			return
		}

		logrus.WithField("user_id", targetUserID).Info("Senha alterada")
		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword gera uma nova senha forte para o usuário alvo (apenas admin)
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		targetUserID, ok := pathID(w, r)
		if !ok {
			return
		}

		newPassword, err := service.GenerateStrongPassword(r.Context(), userClaims.UserID, targetUserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar senha")
			return
		}

		writeJSON(w, r, http.StatusOK, GeneratePasswordResponse{
			Password: newPassword,
		})
	}
}
