package testutil

import (
	"github.com/flarewebs/flarewebs-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewNop()
}
