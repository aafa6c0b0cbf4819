package reporting

import "github.com/pkg/errors"

var ErrSnapshotNotFound = errors.New("fechamento mensal não encontrado")
