package core

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BytesPlatform/contact-ingest/internal/config"
	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// Service provides the core business logic for contact ingestion: mapping
// sessions, column validation, contact normalization, and persistence.
type Service struct {
	pool   *pgxpool.Pool
	engine *mapping.Engine

	sessionTTL time.Duration

	mu       sync.RWMutex
	sessions map[string]*MappingSession
}

// NewService creates a Service backed by the given connection pool. The
// mapping engine is built from the configured thresholds so deployments can
// tune scoring without a code change.
func NewService(pool *pgxpool.Pool, cfg *config.Config) *Service {
	opt := mapping.DefaultOptions()
	if cfg != nil {
		if cfg.Mapping.MinScore > 0 {
			opt.MinScore = cfg.Mapping.MinScore
		}
		if cfg.Mapping.MaxSamples > 0 {
			opt.MaxSamples = cfg.Mapping.MaxSamples
		}
		if cfg.Mapping.SampleRows > 0 {
			opt.SampleRows = cfg.Mapping.SampleRows
		}
	}

	ttl := 30 * time.Minute
	if cfg != nil && cfg.Mapping.SessionTTL > 0 {
		ttl = cfg.Mapping.SessionTTL
	}

	return &Service{
		pool:       pool,
		engine:     mapping.NewEngine(mapping.DefaultDictionary(), opt),
		sessionTTL: ttl,
		sessions:   make(map[string]*MappingSession),
	}
}

// Engine exposes the service's mapping engine for one-off validation and
// phone normalization calls.
func (s *Service) Engine() *mapping.Engine {
	return s.engine
}
