package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/spartakiad-scoring/internal/config"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	domainstore "github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
	cacherepo "github.com/riskibarqy/spartakiad-scoring/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/spartakiad-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/spartakiad-scoring/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/spartakiad-scoring/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/spartakiad-scoring/internal/platform/cache"
	idgen "github.com/riskibarqy/spartakiad-scoring/internal/platform/id"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/resilience"
	"github.com/riskibarqy/spartakiad-scoring/internal/usecase"
)

// backend is what both storage drivers provide: transactional writes, pool
// level reads and a liveness probe.
type backend interface {
	domainstore.Transactor
	httpapi.HealthChecker
	SportTypes() sport.Repository
	Faculties() faculty.Repository
	Competitions() competition.Repository
	Teams() team.Repository
	Performances() performance.Repository
	Standings() standing.Repository
}

// App holds the HTTP server and the resources that must be released with it.
type App struct {
	Server *http.Server
	close  func() error
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, closeStore, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		sports      sport.Repository   = st.SportTypes()
		faculties   faculty.Repository = st.Faculties()
		invalidator usecase.CatalogInvalidator
	)
	if cfg.CacheEnabled {
		catalogCache := basecache.NewStore(cfg.CacheTTL)
		sports = cacherepo.NewSportTypeRepository(sports, catalogCache)
		faculties = cacherepo.NewFacultyRepository(faculties, catalogCache)
		invalidator = cacherepo.NewInvalidator(catalogCache)
		logger.Info("catalog cache enabled", "ttl", cfg.CacheTTL.String())
	}

	recalcSvc := usecase.NewRecalculationService(
		st,
		idgen.NewUUIDGenerator(),
		logger,
		usecase.RecalculationConfig{Workers: cfg.RecalcWorkers, Timeout: cfg.RecalcTimeout},
	)
	catalogSvc := usecase.NewCatalogService(st, sports, faculties, st.Competitions(), st.Teams())
	performanceSvc := usecase.NewPerformanceService(st.Performances(), recalcSvc)
	standingsSvc := usecase.NewStandingsService(sports, faculties, st.Performances(), st.Standings())
	adminSvc := usecase.NewAdminService(recalcSvc, usecase.DefaultSeedDataset(), invalidator, logger)

	if cfg.SeedOnStart {
		report, err := adminSvc.ResetAndSeed(ctx)
		if err != nil {
			_ = closeStore()
			return nil, fmt.Errorf("seed on start: %w", err)
		}
		logger.Info("seed on start completed",
			"sport_types", report.Counts.SportTypes,
			"performances", report.Counts.Performances,
			"recalculated", report.Recalculation.SuccessCount,
		)
	}

	handler := httpapi.NewHandler(catalogSvc, performanceSvc, standingsSvc, recalcSvc, adminSvc, st, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{Server: server, close: closeStore}, nil
}

var (
	_ backend = (*memory.Store)(nil)
	_ backend = (*postgres.Store)(nil)
)

func openBackend(ctx context.Context, cfg config.Config, logger *logging.Logger) (backend, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		breaker := resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBBreakerEnabled,
			FailureThreshold: cfg.DBBreakerFailureThreshold,
			OpenTimeout:      cfg.DBBreakerOpenTimeout,
			HalfOpenMaxReq:   cfg.DBBreakerHalfOpenMaxReq,
		}
		logger.Info("storage driver selected",
			"driver", config.StoragePostgres,
			"db_name", databaseName(cfg.DBURL),
			"breaker_enabled", breaker.Enabled,
		)
		return postgres.NewStore(db, breaker), db.Close, nil
	default:
		logger.Info("storage driver selected", "driver", config.StorageMemory)
		return memory.NewStore(), func() error { return nil }, nil
	}
}
