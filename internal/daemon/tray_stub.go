//go:build !windows

package daemon

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// TrayApp is unavailable outside Windows; the daemon logs digests instead
type TrayApp struct {
	logger *zap.Logger
}

// NewTrayApp always fails so Start falls back to the headless digest loop
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return nil, errors.New("birthday tray icon is only supported on Windows")
}

// Run returns immediately; there is no tray to block on
func (t *TrayApp) Run(ctx context.Context) {}

// Stop is a no-op
func (t *TrayApp) Stop() {}

// ShowNotification drops the digest; it has already been logged
func (t *TrayApp) ShowNotification(title, message string) {}
