package app

import (
	"sync"

	"periodic-tutor/internal/gui"
	"periodic-tutor/internal/logger"
)

// Lifecycle tears the viewer down exactly once, whichever of the window
// close, the signal handler or Run's exit gets there first.
type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Lifecycle{
		guiManager: gm,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
