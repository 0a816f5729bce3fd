package state

import (
	"time"

	"go.uber.org/zap"
)

// newLocalEnv creates environment usable before configuration is loaded:
// logging goes nowhere until Before hook prepares real logger.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Log:   zap.NewNop(),
	}
}
