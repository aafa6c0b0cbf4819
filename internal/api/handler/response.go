package handler

import (
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/planning"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategy-dashboard-api/pkg/log"
	"github.com/vfg2006/strategy-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody responde VAL_003 quando o corpo não é um JSON válido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição vazio", nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return false
	}

	return true
}

// decodeInput lê o corpo com um decoder que valida campo a campo. Tipos errados
// saem como VAL_004 com a lista de campos; corpo que não é objeto, VAL_003.
func decodeInput[T any](w http.ResponseWriter, r *http.Request, decode func([]byte) (T, error)) (T, bool) {
	var zero T

	if r.Body == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição vazio", nil)
		return zero, false
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Falha ao ler corpo da requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return zero, false
	}

	input, err := decode(data)
	if err != nil {
		var validationErrs strategizing.ValidationErrors
		if errors.As(err, &validationErrs) {
			writeServiceError(w, r, err, "Campos inválidos")
			return zero, false
		}

		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return zero, false
	}

	return input, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}

	return id, true
}

// queryYear lê ?year=. Ausente vale 0, que os serviços tratam como ano corrente.
func queryYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", map[string]string{"year": raw})
		return 0, false
	}

	return year, true
}

// writeServiceError traduz os erros de domínio para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		validationErrs strategizing.ValidationErrors
		invalidCfg     *planning.InvalidConfigurationError
		authErr        *authenticating.AuthError
	)

	switch {
	case errors.As(err, &validationErrs):
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Campos inválidos", validationErrs)

	case errors.As(err, &invalidCfg):
		apiErrors.WriteError(w, apiErrors.ErrInvalidConfiguration, "Configuração não permite calcular as metas", map[string]any{
			"fields": invalidCfg.Fields,
		})

	case errors.Is(err, planning.ErrInvalidConfiguration):
		apiErrors.WriteError(w, apiErrors.ErrInvalidConfiguration, "Configuração não permite calcular as metas", nil)

	case errors.Is(err, strategizing.ErrConfigNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Configuração não encontrada", nil)

	case errors.Is(err, reporting.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Fechamento mensal não encontrado", nil)

	case errors.As(err, &authErr):
		message := authErr.Details
		if message == "" {
			message = authErr.Err.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
