package strategizing

import "github.com/pkg/errors"

// ErrConfigNotFound indica que o usuário ainda não salvou um plano.
// Não é fatal: quem chama substitui pelo plano padrão.
var ErrConfigNotFound = errors.New("configuração estratégica não encontrada")
