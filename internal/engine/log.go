package engine

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu sync.RWMutex
	logger   logrus.FieldLogger = logrus.StandardLogger().WithField("component", "clatter")
)

// SetLogger replaces the logger used for exceptional numerical events.
// A nil logger restores the default.
func SetLogger(l logrus.FieldLogger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if l == nil {
		l = logrus.StandardLogger().WithField("component", "clatter")
	}
	logger = l
}

func log() logrus.FieldLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
