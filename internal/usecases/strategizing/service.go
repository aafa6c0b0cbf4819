// Package strategizing guarda o plano estratégico de cada usuário e valida
// tudo o que entra nele.
package strategizing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
)

type ConfigStore interface {
	GetConfig(ctx context.Context, userID int) (*domain.StrategyConfig, error)
	GetEffectiveConfig(ctx context.Context, userID int) (*domain.StrategyConfigResponse, error)
	PutConfig(ctx context.Context, userID int, input *domain.StrategyConfigInput) (*domain.StrategyConfigResponse, error)
	DefaultConfig() *domain.StrategyConfig
}

type Service struct {
	repo     repository.StrategyConfigRepository
	defaults *domain.StrategyConfig
}

// NewService recebe o plano padrão já validado (ver LoadDefaults)
func NewService(repo repository.StrategyConfigRepository, defaults *domain.StrategyConfig) ConfigStore {
	if defaults == nil {
		defaults = domain.DefaultStrategyConfig()
	}

	return &Service{
		repo:     repo,
		defaults: defaults,
	}
}

// GetConfig devolve o plano salvo ou ErrConfigNotFound
func (s *Service) GetConfig(ctx context.Context, userID int) (*domain.StrategyConfig, error) {
	cfg, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar configuração estratégica")
	}

	if cfg == nil {
		return nil, ErrConfigNotFound
	}

	return cfg, nil
}

// GetEffectiveConfig substitui pelo plano padrão quando o usuário não tem um salvo
func (s *Service) GetEffectiveConfig(ctx context.Context, userID int) (*domain.StrategyConfigResponse, error) {
	cfg, err := s.GetConfig(ctx, userID)
	if errors.Is(err, ErrConfigNotFound) {
		logrus.WithField("user_id", userID).Debug("Usuário sem configuração, usando plano padrão")

		defaults := s.DefaultConfig()
		defaults.UserID = userID

		return &domain.StrategyConfigResponse{
			Config:    defaults,
			IsDefault: true,
			Warnings:  Warnings(defaults),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.StrategyConfigResponse{
		Config:   cfg,
		Warnings: Warnings(cfg),
	}, nil
}

func (s *Service) PutConfig(ctx context.Context, userID int, input *domain.StrategyConfigInput) (*domain.StrategyConfigResponse, error) {
	cfg, err := Validate(input)
	if err != nil {
		return nil, err
	}

	cfg.UserID = userID

	stored, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao salvar configuração estratégica")
	}

	warnings := Warnings(stored)
	if len(warnings) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"warnings": warnings,
		}).Info("Configuração salva com avisos")
	}

	return &domain.StrategyConfigResponse{
		Config:   stored,
		Warnings: warnings,
	}, nil
}

// DefaultConfig devolve uma cópia, para que ninguém altere o plano compartilhado
func (s *Service) DefaultConfig() *domain.StrategyConfig {
	return s.defaults.Clone()
}
