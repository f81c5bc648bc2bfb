package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"managesalary/internal/infrastructure/api"
)

// Refresher exchanges the current token for a fresh one. The API client
// implements it.
type Refresher interface {
	RefreshToken(ctx context.Context) (string, error)
}

// Manager performs the one-time silent refresh at application start.
type Manager struct {
	store     Store
	refresher Refresher
	logger    *logrus.Logger
}

func NewManager(store Store, refresher Refresher, logger *logrus.Logger) *Manager {
	return &Manager{store: store, refresher: refresher, logger: logger}
}

// Refresh replaces the stored token with a refreshed one when a session is
// present. A 401/403 means the token is dead and the session is cleared; a
// transport failure keeps the stale token so a flaky network at startup does
// not destroy a valid session. The caller does not block the rest of startup
// on the outcome.
func (m *Manager) Refresh(ctx context.Context) {
	if !m.store.IsLogged() {
		return
	}

	token, err := m.refresher.RefreshToken(ctx)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			m.logger.WithField("status", statusErr.StatusCode).Info("session refresh rejected, logging out")
			if err := m.store.Logout(); err != nil {
				m.logger.WithError(err).Warn("failed to clear session")
			}
			return
		}
		m.logger.WithError(err).Warn("session refresh failed, keeping existing token")
		return
	}

	if err := m.store.SetToken(token); err != nil {
		m.logger.WithError(err).Warn("failed to persist refreshed token")
	}
}
