package slog

import (
	"log/slog"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Ensure LoggingRegistry implements mdminer.AdapterRegistry.
var _ mdminer.AdapterRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an AdapterRegistry with logging for site resolution.
type LoggingRegistry struct {
	next   mdminer.AdapterRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next mdminer.AdapterRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Resolve logs the resolved site and delegates to the wrapped registry.
func (r *LoggingRegistry) Resolve(site mdminer.Site) (mdminer.Adapter, error) {
	adapter, err := r.next.Resolve(site)
	if err != nil {
		r.logger.Warn("adapter resolution failed", "site", string(site), "err", err)
		return nil, err
	}
	r.logger.Debug("adapter resolved", "site", string(site))
	return adapter, nil
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []mdminer.Site {
	return r.next.List()
}
