package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("mantém o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "abc-123")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("gera UUID quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestLoggerFields(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		fields   Fields
		expected logrus.Fields
	}{
		{
			name:     "desenvolvimento descarta campos de rastreio",
			env:      "development",
			fields:   Fields{"method": "GET", "remote_addr": "127.0.0.1", "user_id": 7},
			expected: logrus.Fields{"method": "GET", "user_id": 7},
		},
		{
			name:     "produção mantém todos os campos",
			env:      "production",
			fields:   Fields{"method": "GET", "remote_addr": "127.0.0.1"},
			expected: logrus.Fields{"method": "GET", "remote_addr": "127.0.0.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)

			base, hook := test.NewNullLogger()
			l := &logger{entry: logrus.NewEntry(base)}

			l.WithFields(tt.fields).Info("mensagem")

			require.Len(t, hook.Entries, 1)
			assert.Equal(t, tt.expected, hook.LastEntry().Data)
		})
	}
}

func TestLoggerWithContext(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base, hook := test.NewNullLogger()
	l := &logger{entry: logrus.NewEntry(base)}

	ctx, id := WithCorrelationID(context.Background(), "")
	l.WithContext(ctx).Warn("lento")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, id, hook.LastEntry().Data[correlationIDField])
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
