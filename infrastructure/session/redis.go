package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/strategy-dashboard-api/internal/config"
)

const revokedTokenPrefix = "revoked_token:"

// RevocationStore guarda os tokens encerrados por logout até que expirem
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewClient abre a conexão a partir de REDIS_URL e confirma com um PING
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("REDIS_URL inválida: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("falha ao conectar no redis: %w", err)
	}

	return client, nil
}

type redisRevocationStore struct {
	client redis.Cmdable
}

func NewRevocationStore(client redis.Cmdable) RevocationStore {
	return &redisRevocationStore{
		client: client,
	}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	// Token já expirado não precisa ser guardado
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("falha ao revogar token: %w", err)
	}

	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("falha ao consultar token revogado: %w", err)
	}

	return n > 0, nil
}
