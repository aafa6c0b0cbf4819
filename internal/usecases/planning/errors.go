package planning

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidConfiguration = errors.New("configuração inválida para o cálculo do funil")

// InvalidConfigurationError lista os campos que tornariam a divisão indefinida
type InvalidConfigurationError struct {
	Fields []string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s deve ser maior que zero", ErrInvalidConfiguration.Error(), strings.Join(e.Fields, ", "))
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}
