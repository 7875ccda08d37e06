package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/config"
	authorhandler "library-backend/internal/domains/author/handler"
	authorrepo "library-backend/internal/domains/author/repository"
	authorservice "library-backend/internal/domains/author/service"
	bookhandler "library-backend/internal/domains/book/handler"
	bookrepo "library-backend/internal/domains/book/repository"
	bookservice "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/catalog"
	cataloghandler "library-backend/internal/domains/catalog/handler"
	genrehandler "library-backend/internal/domains/genre/handler"
	genrerepo "library-backend/internal/domains/genre/repository"
	genreservice "library-backend/internal/domains/genre/service"
	userhandler "library-backend/internal/domains/user/handler"
	userrepo "library-backend/internal/domains/user/repository"
	userservice "library-backend/internal/domains/user/service"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/jwt"
)

// Container giữ toàn bộ dependencies đã được wire sẵn.
// Thứ tự khởi tạo: config → database → cache → managers → repositories
// → services → handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *cache.RedisCache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	// Catalog engine - expose riêng cho worker process
	CatalogImporter *catalog.Importer

	AuthorHandler  *authorhandler.Handler
	GenreHandler   *genrehandler.Handler
	BookHandler    *bookhandler.BookHandler
	UserHandler    *userhandler.UserHandler
	CatalogHandler *cataloghandler.CatalogHandler
}

// Options điều khiển những phần optional của container
type Options struct {
	// Worker process không cần enqueue client
	WithAsynqClient bool
}

// New khởi tạo container đầy đủ. Fail fast nếu database không sẵn sàng;
// Redis down chỉ log warn vì cache là best-effort.
func New(ctx context.Context, opts Options) (*Container, error) {
	c := &Container{}

	// ===== Config =====
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] ✅ Config loaded")

	// ===== Database =====
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := c.DB.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := c.DB.Seed(ctx, database.SeedOptions{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	}); err != nil {
		return nil, fmt.Errorf("seed database: %w", err)
	}

	// ===== Cache =====
	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		// Cache down không chặn startup - mọi Get sẽ là miss
		log.Warn().Err(err).Msg("[CONTAINER] ⚠️ Redis unavailable, running without cache")
	} else {
		log.Info().Msg("[CONTAINER] ✅ Redis connected")
	}

	// ===== Managers =====
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	if opts.WithAsynqClient {
		c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// ===== Repositories =====
	authorRepository := authorrepo.NewPostgresRepository(c.DB.Pool)
	genreRepository := genrerepo.NewPostgresRepository(c.DB.Pool)
	bookRepository := bookrepo.NewPostgresRepository(c.DB.Pool)
	userRepository := userrepo.NewPostgresRepository(c.DB.Pool)

	// ===== Catalog engine =====
	gutendexClient := catalog.NewClient(cfg.Gutendex.BaseURL, cfg.Gutendex.Timeout)
	resolver := catalog.NewAuthorResolver(authorRepository)
	c.CatalogImporter = catalog.NewImporter(gutendexClient, resolver, bookRepository, genreRepository)
	enricher := catalog.NewEnricher(gutendexClient)
	searchService := catalog.NewSearchService(bookRepository, gutendexClient, enricher)

	// ===== Services =====
	authorService := authorservice.NewService(authorRepository)
	genreService := genreservice.NewService(genreRepository)
	bookService := bookservice.NewBookService(bookRepository, authorRepository, c.Cache)
	userService := userservice.NewUserService(userRepository, c.JWTManager)

	// ===== Handlers =====
	c.AuthorHandler = authorhandler.NewHandler(authorService)
	c.GenreHandler = genrehandler.NewHandler(genreService)
	c.BookHandler = bookhandler.NewBookHandler(bookService)
	c.UserHandler = userhandler.NewUserHandler(userService)
	c.CatalogHandler = cataloghandler.NewCatalogHandler(
		gutendexClient, c.CatalogImporter, searchService, enricher, c.AsynqClient)

	log.Info().Msg("[CONTAINER] ✅ Dependency injection completed")
	return c, nil
}

// Cleanup đóng các connections theo thứ tự ngược với khởi tạo
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close asynq client")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
	log.Info().Msg("[CONTAINER] 🧹 Cleanup completed")
}
