package api

import (
	"clinicbook/internal/infra"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
