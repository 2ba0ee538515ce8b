package daemon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"strlens/src/pkg/api"
	"strlens/src/pkg/config"
	"strlens/src/pkg/store"
)

// Service represents the daemon service: it owns the record store and
// the API server and ties their lifecycles together. Status reporting
// lives in the API service, which the CLI reaches over HTTP.
type Service struct {
	config     *config.Config
	store      *store.Store
	apiServer  *api.Server
	apiService *api.Service

	version string
}

// NewService creates a new daemon service
func NewService(cfg *config.Config, version string) (*Service, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Service{
		config:  cfg,
		version: version,
	}, nil
}

// Start begins the daemon process
func (s *Service) Start(ctx context.Context) error {
	// Open the record store
	st, err := store.Open(s.config.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	s.store = st
	log.Info().Str("path", st.Path()).Msg("Record store opened")

	// Set up the API service and server
	s.apiService = api.NewService(s.store, s.config, s.version)

	apiAddr := fmt.Sprintf("%s:%d", s.config.API.Host, s.config.API.Port)
	s.apiServer = api.NewServer(apiAddr, s.apiService)

	go func() {
		if err := s.apiServer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("API server error")
		}
	}()

	// Re-apply the log level when the config file changes on disk
	config.Watch(s.applyConfigChange, func(err error) {
		log.Error().Err(err).Msg("Config reload failed")
	})

	log.Info().Str("addr", apiAddr).Msg("Daemon started successfully")

	return nil
}

// applyConfigChange picks up runtime-adjustable settings from a freshly
// reloaded configuration. Settings that require a restart (API address,
// database path) are intentionally left untouched.
func (s *Service) applyConfigChange(cfg *config.Config) {
	if cfg.Daemon.LogLevel != s.config.Daemon.LogLevel {
		level, err := zerolog.ParseLevel(cfg.Daemon.LogLevel)
		if err != nil {
			log.Warn().Str("level", cfg.Daemon.LogLevel).Msg("Ignoring invalid log level from config reload")
			return
		}

		zerolog.SetGlobalLevel(level)
		log.Info().Str("level", cfg.Daemon.LogLevel).Msg("Log level updated from config file")
		s.config.Daemon.LogLevel = cfg.Daemon.LogLevel
	}
}

// Stop gracefully shuts down the daemon
func (s *Service) Stop(ctx context.Context) error {
	// Stop the API server
	if s.apiServer != nil {
		if err := s.apiServer.Stop(); err != nil {
			log.Error().Err(err).Msg("Error stopping API server")
		}
	}

	// Close the record store
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing record store")
		}
	}

	log.Info().Msg("Daemon stopped")
	return nil
}
