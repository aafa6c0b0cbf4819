package authenticating

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/session"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const generatedPasswordLength = 12

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

type Authenticator interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	LoginUser(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context, claims *domain.Claims) error
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ListUser(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error
	GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo    repository.UserRepository
	revocations session.RevocationStore
	cfg         *config.Config
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, revocations session.RevocationStore, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:    userRepo,
		revocations: revocations,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Register cria um vendedor já ativo
func (s *Service) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if req == nil || req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário, email e senha são obrigatórios")
	}

	username := strings.TrimSpace(req.Username)
	if !usernamePattern.MatchString(username) {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidFormat, "Usuário deve ter de 3 a 32 letras, números, ponto, hífen ou sublinhado")
	}

	email := handleEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Usuário já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = username
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       true,
		RoleID:       domain.RoleSeller,
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	logrus.WithField("user_id", user.ID).Info("Usuário registrado")

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// LoginUser aceita username ou email
func (s *Service) LoginUser(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		login = handleEmail(login)
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()

	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserUsername: user.Username,
		UserEmail:    user.Email,
		UserRoleID:   user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// Logout revoga o token até o fim da sua validade
func (s *Service) Logout(ctx context.Context, claims *domain.Claims) error {
	if claims == nil || claims.ID == "" {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem identificador")
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}

	if err := s.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
		return NewUserAuthError(errors.Wrap(ErrSessionStore, err.Error()), apiErrors.ErrCommunication, claims.UserID, "Erro ao encerrar sessão")
	}

	logrus.WithField("user_id", claims.UserID).Info("Sessão encerrada")
	return nil
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	if claims.ID != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, NewUserAuthError(errors.Wrap(ErrSessionStore, err.Error()), apiErrors.ErrCommunication, claims.UserID, "Erro ao validar sessão")
		}
		if revoked {
			return nil, NewUserAuthError(ErrRevokedToken, apiErrors.ErrInvalidToken, claims.UserID, "Sessão encerrada")
		}
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar senha")
	}

	return nil
}

func (s *Service) ListUser(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUser(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error {
	if req == nil || req.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("ID %d", req.ID))
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		user.Email = handleEmail(*req.Email)
	}

	if req.Active != nil {
		user.Active = *req.Active
	}

	if req.RoleID != nil {
		switch *req.RoleID {
		case domain.RoleAdmin, domain.RoleSupervisor, domain.RoleSeller:
			user.RoleID = *req.RoleID
		default:
			return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Perfil inexistente")
		}
	}

	if req.Deleted != nil && *req.Deleted {
		now := s.now()
		user.Deleted = true
		user.DeletedAt = &now
	}

	// A senha não muda por esta rota
	user.PasswordHash = ""

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	return nil
}

// GenerateStrongPassword gera uma nova senha para o usuário alvo.
// Apenas administradores podem pedir.
func (s *Service) GenerateStrongPassword(ctx context.Context, requestUserID, targetUserID int) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(ctx, requestUserID)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if requestUser == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário solicitante não encontrado")
	}
	if requestUser.RoleID != domain.RoleAdmin {
		return "", NewUserAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, requestUserID, "")
	}

	targetUser, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if targetUser == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(generatedPasswordLength)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, targetUser); err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return newPassword, nil
}
