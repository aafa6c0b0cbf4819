package strategizing

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadDefaults lê o plano padrão de um arquivo YAML. Caminho vazio devolve
// os valores embutidos. O arquivo passa pela mesma validação do PutConfig.
func LoadDefaults(path string) (*domain.StrategyConfig, error) {
	if path == "" {
		return domain.DefaultStrategyConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler plano padrão %s", path)
	}

	cfg, err := ParseDefaults(data)
	if err != nil {
		return nil, errors.Wrapf(err, "plano padrão inválido em %s", path)
	}

	for _, warning := range Warnings(cfg) {
		logrus.WithField("file", path).Warn("Plano padrão: ", warning)
	}

	return cfg, nil
}

// ParseDefaults decodifica e valida um plano em YAML
func ParseDefaults(data []byte) (*domain.StrategyConfig, error) {
	var input domain.StrategyConfigInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, ValidationErrors{{Field: "yaml", Message: err.Error()}}
	}

	return Validate(&input)
}
