package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository/mocks"
	sessionmocks "github.com/vfg2006/strategy-dashboard-api/infrastructure/session/mocks"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Vendas#2025"

var loginTime = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository, *sessionmocks.MockRevocationStore) {
	ctrl := gomock.NewController(t)

	userRepo := mocks.NewMockUserRepository(ctrl)
	revocations := sessionmocks.NewMockRevocationStore(ctrl)

	cfg := &config.Config{
		SecretKey: "segredo-de-teste",
		Auth:      config.Auth{TokenTTL: 24 * time.Hour},
	}

	service := &Service{
		userRepo:    userRepo,
		revocations: revocations,
		cfg:         cfg,
		now:         func() time.Time { return loginTime },
	}

	return service, userRepo, revocations
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func authCode(t *testing.T, err error) string {
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "erro esperado do tipo AuthError, recebido %v", err)
	return authErr.Code
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Cria vendedor ativo com email normalizado", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
		userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ana.souza").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.True(t, user.Active)
				assert.Equal(t, domain.RoleSeller, user.RoleID)
				assert.Equal(t, "ana.souza", user.Name)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strongPassword)))
				user.ID = 10
				return user, nil
			})

		user, err := service.Register(ctx, &domain.RegisterRequest{
			Username: "ana.souza",
			Email:    " Ana@Loja.com ",
			Password: strongPassword,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "ana@loja.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	tests := []struct {
		name  string
		req   *domain.RegisterRequest
		setup func(userRepo *mocks.MockUserRepository)
		code  string
	}{
		{
			name: "Sem senha",
			req:  &domain.RegisterRequest{Username: "ana", Email: "ana@loja.com"},
			code: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Usuário com caracteres inválidos",
			req:  &domain.RegisterRequest{Username: "a b", Email: "ana@loja.com", Password: strongPassword},
			code: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Email inválido",
			req:  &domain.RegisterRequest{Username: "ana", Email: "ana-loja.com", Password: strongPassword},
			code: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Senha fraca",
			req:  &domain.RegisterRequest{Username: "ana", Email: "ana@loja.com", Password: "senhafraca"},
			code: apiErrors.ErrWeakPassword,
		},
		{
			name: "Email já cadastrado",
			req:  &domain.RegisterRequest{Username: "ana", Email: "ana@loja.com", Password: strongPassword},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(&domain.User{ID: 1}, nil)
			},
			code: apiErrors.ErrUserAlreadyExists,
		},
		{
			name: "Username já cadastrado",
			req:  &domain.RegisterRequest{Username: "ana", Email: "ana@loja.com", Password: strongPassword},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
				userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(&domain.User{ID: 1}, nil)
			},
			code: apiErrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := newTestService(t)
			if tt.setup != nil {
				tt.setup(userRepo)
			}

			user, err := service.Register(ctx, tt.req)
			assert.Nil(t, user)
			assert.Equal(t, tt.code, authCode(t, err))
		})
	}
}

func TestService_LoginAndValidateToken(t *testing.T) {
	ctx := context.Background()
	service, userRepo, revocations := newTestService(t)

	user := &domain.User{
		ID:           4,
		Username:     "carlos",
		Name:         "Carlos",
		Email:        "carlos@loja.com",
		PasswordHash: hashed(t, strongPassword),
		Active:       true,
		RoleID:       domain.RoleSupervisor,
	}

	userRepo.EXPECT().GetUserByLogin(gomock.Any(), "carlos@loja.com").Return(user, nil)

	token, err := service.LoginUser(ctx, " Carlos@Loja.com", strongPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var tokenID string
	revocations.EXPECT().
		IsRevoked(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (bool, error) {
			tokenID = id
			return false, nil
		})

	claims, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 4, claims.UserID)
	assert.Equal(t, "carlos", claims.UserUsername)
	assert.Equal(t, domain.RoleSupervisor, claims.UserRoleID)
	assert.Equal(t, "4", claims.Subject)
	assert.Equal(t, tokenID, claims.ID)
	assert.True(t, loginTime.Add(24*time.Hour).Equal(claims.ExpiresAt.Time))

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return loginTime.Add(25 * time.Hour) }
		defer func() { service.now = func() time.Time { return loginTime } }()

		_, err := service.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrExpiredToken))
		assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		other, _, _ := newTestService(t)
		other.cfg.SecretKey = "outro-segredo"

		_, err := other.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("Logout revoga o token pelo tempo restante", func(t *testing.T) {
		revocations.EXPECT().Revoke(gomock.Any(), claims.ID, 24*time.Hour).Return(nil)
		require.NoError(t, service.Logout(ctx, claims))

		revocations.EXPECT().IsRevoked(gomock.Any(), claims.ID).Return(true, nil)
		_, err := service.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrRevokedToken))
		assert.Equal(t, apiErrors.ErrInvalidToken, authCode(t, err))
	})

	t.Run("Falha no redis não libera o acesso", func(t *testing.T) {
		revocations.EXPECT().IsRevoked(gomock.Any(), claims.ID).Return(false, errors.New("connection refused"))

		_, err := service.ValidateToken(ctx, token)
		assert.True(t, errors.Is(err, ErrSessionStore))
		assert.Equal(t, apiErrors.ErrCommunication, authCode(t, err))
	})
}

func TestService_LoginFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		login string
		setup func(userRepo *mocks.MockUserRepository)
		err   error
	}{
		{
			name:  "Campos vazios",
			login: "",
			err:   ErrMissingRequiredData,
		},
		{
			name:  "Usuário inexistente",
			login: "ninguem",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin(gomock.Any(), "ninguem").Return(nil, nil)
			},
			err: ErrUserNotFound,
		},
		{
			name:  "Usuário desativado",
			login: "inativo",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin(gomock.Any(), "inativo").Return(&domain.User{ID: 2, Active: false}, nil)
			},
			err: ErrUserDisabled,
		},
		{
			name:  "Senha incorreta",
			login: "carlos",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin(gomock.Any(), "carlos").Return(&domain.User{
					ID: 4, Active: true, PasswordHash: hashed(t, "Outra#Senha1"),
				}, nil)
			},
			err: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := newTestService(t)
			if tt.setup != nil {
				tt.setup(userRepo)
			}

			token, err := service.LoginUser(ctx, tt.login, strongPassword)
			assert.Empty(t, token)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Troca a senha", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 4).Return(&domain.User{ID: 4, PasswordHash: hashed(t, strongPassword)}, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova#Senha9")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(ctx, 4, strongPassword, "Nova#Senha9"))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 4).Return(&domain.User{ID: 4, PasswordHash: hashed(t, strongPassword)}, nil)

		err := service.ChangePassword(ctx, 4, "errada", "Nova#Senha9")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("Nova senha igual à atual", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 4).Return(&domain.User{ID: 4, PasswordHash: hashed(t, strongPassword)}, nil)

		err := service.ChangePassword(ctx, 4, strongPassword, strongPassword)
		assert.True(t, errors.Is(err, ErrSamePassword))
	})
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Atualiza perfil e remove usuário", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 8).Return(&domain.User{ID: 8, RoleID: domain.RoleSeller, PasswordHash: "hash"}, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Equal(t, domain.RoleSupervisor, user.RoleID)
				assert.Equal(t, "novo@loja.com", user.Email)
				assert.True(t, user.Deleted)
				assert.True(t, loginTime.Equal(*user.DeletedAt))
				assert.Empty(t, user.PasswordHash)
				return nil
			})

		role := domain.RoleSupervisor
		email := "Novo@Loja.com"
		deleted := true

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 8, RoleID: &role, Email: &email, Deleted: &deleted})
		assert.NoError(t, err)
	})

	t.Run("Perfil inexistente", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 8).Return(&domain.User{ID: 8}, nil)

		role := 9
		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 8, RoleID: &role})
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Administrador gera senha válida", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 5).Return(&domain.User{ID: 5, RoleID: domain.RoleSeller}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(ctx, 1, 5)
		require.NoError(t, err)
		assert.Len(t, password, generatedPasswordLength)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("Vendedor não pode gerar senha", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 3).Return(&domain.User{ID: 3, RoleID: domain.RoleSeller}, nil)

		_, err := service.GenerateStrongPassword(ctx, 3, 5)
		assert.True(t, errors.Is(err, ErrNoAdminPrivileges))
		assert.True(t, IsAuthorizationError(err))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		password string
		valid    bool
	}{
		{password: strongPassword, valid: true},
		{password: "Cu#1", valid: false},
		{password: "semmaiuscula#1", valid: false},
		{password: "SEMMINUSCULA#1", valid: false},
		{password: "SemNumero#", valid: false},
		{password: "SemEspecial1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrWeakPassword))
		})
	}
}
