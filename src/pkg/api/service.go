package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"strlens/src/pkg/analyzer"
	"strlens/src/pkg/config"
	"strlens/src/pkg/query"
	"strlens/src/pkg/store"
)

// ErrEmptyValue is returned when a create request carries no string to analyze.
var ErrEmptyValue = errors.New("value cannot be empty")

// Service represents the API service layer. It mediates between the
// HTTP handlers and the record store; the analysis and filter logic
// it calls into is pure and stateless, so the service needs no locking
// beyond what the store provides.
type Service struct {
	store   *store.Store
	config  *config.Config
	version string

	startTime time.Time
}

// NewService creates a new API service
func NewService(st *store.Store, cfg *config.Config, version string) *Service {
	return &Service{
		store:     st,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// Create analyzes value and stores the resulting record.
// Returns store.ErrExists when the value was analyzed before; the
// existing record is never overwritten.
func (s *Service) Create(ctx context.Context, value string) (*store.Record, error) {
	if value == "" {
		return nil, ErrEmptyValue
	}

	props := analyzer.Analyze(value)
	rec := store.Record{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	log.Info().
		Str("id", rec.ID).
		Int("length", props.Length).
		Bool("palindrome", props.IsPalindrome).
		Msg("Stored analyzed string")

	return &rec, nil
}

// Get retrieves the record for the exact string value.
func (s *Service) Get(ctx context.Context, value string) (*store.Record, error) {
	return s.store.GetByValue(ctx, value)
}

// Delete removes the record for the given value.
func (s *Service) Delete(ctx context.Context, value string) error {
	if err := s.store.DeleteByValue(ctx, value); err != nil {
		return err
	}

	log.Info().Str("value", value).Msg("Deleted string record")
	return nil
}

// List returns the records matching the given filter set, in storage
// order. An empty filter set matches every record.
func (s *Service) List(ctx context.Context, filters query.FilterSet) ([]store.Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	return query.Apply(records, filters), nil
}

// QueryNatural interprets free text into a filter set and applies it.
// Returns query.ErrUnparseable when no interpreter rule matches; a
// parsed query with zero matching records is a valid empty result,
// not an error.
func (s *Service) QueryNatural(ctx context.Context, text string) ([]store.Record, query.FilterSet, error) {
	filters, err := query.Interpret(text)
	if err != nil {
		return nil, query.FilterSet{}, err
	}

	log.Debug().
		Str("query", text).
		Interface("filters", filters).
		Msg("Interpreted natural language query")

	records, err := s.List(ctx, filters)
	if err != nil {
		return nil, query.FilterSet{}, err
	}

	return records, filters, nil
}

// GetStatus returns the current daemon status
func (s *Service) GetStatus(ctx context.Context) (*StatusResponse, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	configMap := make(map[string]string)
	if s.config != nil {
		configMap["database_path"] = s.config.Storage.DatabasePath
		configMap["daemon_api"] = fmt.Sprintf("%s:%d", s.config.API.Host, s.config.API.Port)
		configMap["log_level"] = s.config.Daemon.LogLevel
	}

	return &StatusResponse{
		Status:      "running",
		Uptime:      time.Since(s.startTime).String(),
		StartTime:   s.startTime,
		RecordCount: count,
		Version:     s.version,
		Config:      configMap,
	}, nil
}
