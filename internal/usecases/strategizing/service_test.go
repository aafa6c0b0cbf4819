package strategizing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetConfig(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(repo *mocks.MockStrategyConfigRepository)
		wantErr   error
		isDefault bool
	}{
		{
			name: "Usuário sem plano recebe ErrConfigNotFound",
			setup: func(repo *mocks.MockStrategyConfigRepository) {
				repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil).Times(2)
			},
			wantErr:   ErrConfigNotFound,
			isDefault: true,
		},
		{
			name: "Usuário com plano salvo",
			setup: func(repo *mocks.MockStrategyConfigRepository) {
				stored := domain.DefaultStrategyConfig()
				stored.UserID = 7
				stored.UnitPrice = 250000
				repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(stored, nil).Times(2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockStrategyConfigRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, nil)

			_, err := service.GetConfig(ctx, 7)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}

			response, err := service.GetEffectiveConfig(ctx, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.isDefault, response.IsDefault)
			assert.Equal(t, 7, response.Config.UserID)
		})
	}
}

func TestService_GetEffectiveConfigRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStrategyConfigRepository(ctrl)
	repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("conexão recusada"))

	_, err := NewService(repo, nil).GetEffectiveConfig(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestService_PutConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejeita configuração sem margem bruta sem tocar no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockStrategyConfigRepository(ctrl)

		input := validInput()
		input.GrossMargin = nil

		_, err := NewService(repo, nil).PutConfig(ctx, 3, input)

		var validationErrs ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.True(t, validationErrs.Has("grossMargin"))
	})

	t.Run("Salva configuração válida com o dono da requisição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockStrategyConfigRepository(ctrl)
		now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *domain.StrategyConfig) (*domain.StrategyConfig, error) {
				assert.Equal(t, 3, cfg.UserID)
				stored := cfg.Clone()
				stored.CreatedAt = now
				stored.UpdatedAt = now
				return stored, nil
			})

		response, err := NewService(repo, nil).PutConfig(ctx, 3, validInput())
		require.NoError(t, err)
		assert.False(t, response.IsDefault)
		assert.Equal(t, now, response.Config.UpdatedAt)
		assert.Len(t, response.Warnings, 2)
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockStrategyConfigRepository(ctrl)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := NewService(repo, nil).PutConfig(ctx, 3, validInput())
		assert.ErrorContains(t, err, "timeout")
	})
}

func TestService_DefaultConfigIsACopy(t *testing.T) {
	service := NewService(nil, nil)

	first := service.DefaultConfig()
	first.UnitPrice = 1
	first.SeasonalDistribution[domain.Q1] = domain.QuarterTarget{}

	second := service.DefaultConfig()
	assert.Equal(t, domain.DefaultStrategyConfig(), second)
}
