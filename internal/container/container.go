package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"shopchannel/search/internal/api"
	"shopchannel/search/internal/cache"
	"shopchannel/search/internal/client"
	"shopchannel/search/internal/config"
	"shopchannel/search/internal/repository"
	"shopchannel/search/internal/search"
	"shopchannel/search/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Backend    client.SearchBackend
	Repository repository.ProductRepository
	NameCache  cache.NameCache
	Service    *service.Service
	Server     *api.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	db, err := pgxpool.New(context.Background(),
		fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Warehouse.Host,
			cfg.Warehouse.Port,
			cfg.Warehouse.User,
			cfg.Warehouse.Password,
			cfg.Warehouse.Name,
		))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	container.db = db
	container.Repository = repository.NewProductRepository(db, cfg.Warehouse.Table)

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	// Test connection
	_, err = rdb.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("✅ Connected to Redis successfully")

	container.redis = rdb
	container.NameCache = cache.NewRedisNameCache(rdb, time.Duration(cfg.Redis.NameTTLMinutes)*time.Minute)

	container.Backend = client.NewSearchBackend(cfg.Backend)

	pipeline := search.NewPipeline(cfg.Search.MaxPageSize)
	container.Service = service.NewService(
		container.Backend,
		container.Repository,
		container.NameCache,
		pipeline,
		cfg.Search,
	)

	container.Server = api.NewServer(container.Service, *cfg)

	return container, nil
}

// Run serves the HTTP API until the context is cancelled
func (c *Container) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	c.Server.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", c.Config.Server.Host, c.Config.Server.Port),
		Handler:           c.Server.CorsMiddleware(mux),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("🚀 Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		log.Info("🛑 Shutting down HTTP server...")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	c.db.Close()
	c.redis.Close()

	log.Info("Container shut down successfully")
	return nil
}
