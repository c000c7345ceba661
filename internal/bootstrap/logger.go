package bootstrap

import (
	"go.uber.org/zap"
)

// InitLogger installs the global zap logger that feature packages pick up
// via zap.L().Named(...). Returns the flush func for main to defer.
func InitLogger(appEnv string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if appEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
