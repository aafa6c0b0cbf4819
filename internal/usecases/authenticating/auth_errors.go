package authenticating

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrRevokedToken          = errors.New("token revogado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")

	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	ErrWeakPassword = errors.New("senha fraca")
	ErrSamePassword = errors.New("nova senha deve ser diferente da atual")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrSessionStore      = errors.New("erro ao consultar sessões") // redis de revogação indisponível
)

// codes traduz cada erro base para o código da API quando o AuthError não traz um
var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
	{ErrUserDisabled, apiErrors.ErrUserDisabled},
	{ErrUserNotFound, apiErrors.ErrUserNotFound},
	{ErrExpiredToken, apiErrors.ErrExpiredToken},
	{ErrRevokedToken, apiErrors.ErrInvalidToken},
	{ErrInvalidToken, apiErrors.ErrInvalidToken},
	{ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege},
	{ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege},
	{ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists},
	{ErrWeakPassword, apiErrors.ErrWeakPassword},
	{ErrSamePassword, apiErrors.ErrWeakPassword},
	{ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
	{ErrInvalidRequest, apiErrors.ErrInvalidRequest},
	{ErrSessionStore, apiErrors.ErrCommunication},
	{ErrDatabaseOperation, apiErrors.ErrDatabaseOperation},
}

// AuthError carrega o erro base, o código da API e o usuário envolvido
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CodeOf devolve o código da API para err. Vale o Code explícito do AuthError,
// depois o do erro base; fallback quando nenhum se aplica.
func CodeOf(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}

	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return fallback
}

// IsAuthorizationError indica erro de token ou de permissão
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrRevokedToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
