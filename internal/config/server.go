package config

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/database/mongodb"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/database/postgres"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/database/sqlite"
	blogHandler "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog/handler"
	blogRepository "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog/repository"
	blogService "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog/service"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/middleware"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/anthropic"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/gemini"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/openai"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/redis"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	env        *Env
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	blogsRepo  blogRepository.Repository
	cache      redis.ICache
	inference  inference.IInference
	handlers   []handler
	closers    []func(ctx context.Context) error
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			server.closeAll(context.Background())
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithEnv(env *Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

// WithDatabase connects the store selected by DB_DRIVER and prepares its
// schema or indexes.
func WithDatabase(ctx context.Context) ServerOption {
	return func(s *Server) error {
		if s.env == nil || s.log == nil {
			return fmt.Errorf("env and logger must be initialized before database")
		}
		if s.utils == nil {
			s.utils = utils.New()
		}

		switch s.env.DBDriver {
		case "mongodb":
			client, err := mongodb.New(ctx, s.env.MongoURI)
			if err != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
				return fmt.Errorf("failed to create database connection: %w", err)
			}
			s.closers = append(s.closers, client.Disconnect)

			coll := client.Database(s.env.MongoDatabase).Collection(s.env.MongoCollection)
			if err := blogRepository.EnsureIndexes(ctx, coll); err != nil {
				return fmt.Errorf("failed to create blog indexes: %w", err)
			}
			s.blogsRepo = blogRepository.NewMongo(coll, s.log)

		case "postgres", "sqlite":
			var (
				db  *sqlx.DB
				err error
			)
			if s.env.DBDriver == "postgres" {
				db, err = postgres.New(s.env.DatabaseURL)
			} else {
				db, err = sqlite.New(s.env.DatabaseURL)
			}
			if err != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
				return fmt.Errorf("failed to create database connection: %w", err)
			}
			s.closers = append(s.closers, closeWith(db))

			if err := blogRepository.Migrate(ctx, db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			s.blogsRepo = blogRepository.New(db, s.log, s.utils)

		default:
			return fmt.Errorf("unsupported DB_DRIVER %q", s.env.DBDriver)
		}

		s.log.WithField("driver", s.env.DBDriver).Info("Connected to database")
		return nil
	}
}

// WithRedisCache enables the listing cache when REDIS_ADDRESS is set. An
// unreachable redis only disables the cache.
func WithRedisCache() ServerOption {
	return func(s *Server) error {
		if s.env == nil || s.env.RedisAddress == "" {
			return nil
		}

		cache, err := redis.New(redis.Options{
			Address:  s.env.RedisAddress,
			Password: s.env.RedisPassword,
			DB:       s.env.RedisDB,
		}, s.log)
		if err != nil {
			s.log.WithField("error", err.Error()).Warn("Redis unavailable, blog listing cache disabled")
			return nil
		}

		s.cache = cache
		s.closers = append(s.closers, closeWith(cache))
		return nil
	}
}

func WithInferenceClient(ctx context.Context) ServerOption {
	return func(s *Server) error {
		if s.env == nil {
			return fmt.Errorf("env must be initialized before inference client")
		}

		client, err := newInferenceClient(ctx, s.env)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create inference client: %v", err)
			}
			return fmt.Errorf("failed to create inference client: %w", err)
		}

		if c, ok := client.(io.Closer); ok {
			s.closers = append(s.closers, closeWith(c))
		}
		s.inference = client
		return nil
	}
}

func newInferenceClient(ctx context.Context, env *Env) (inference.IInference, error) {
	params := inference.Params{
		Model:       env.InferenceModel,
		MaxTokens:   inference.DefaultMaxTokens,
		Temperature: inference.DefaultTemperature,
	}

	switch env.InferenceProvider {
	case "openai":
		return openai.NewChat(env.HFToken, env.InferenceBaseURL, params), nil
	case "gemini":
		return gemini.NewGeminiClient(ctx, env.HFToken, params)
	case "anthropic":
		return anthropic.NewAnthropicClient(env.HFToken, params), nil
	default:
		return nil, fmt.Errorf("unsupported INFERENCE_PROVIDER %q", env.InferenceProvider)
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.utils == nil {
			s.utils = utils.New()
		}
		s.middleware = middleware.New(s.log, s.utils)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	repo := s.blogsRepo
	if s.cache != nil {
		repo = blogRepository.WithCache(repo, s.cache, s.env.CacheTTL, s.log)
	}

	blogServices := blogService.NewBlogsService(s.log, repo, s.inference)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.handlers = append(s.handlers, blogHandlers)
}

// setupRoutes mounts middleware, API routes and finally the static files, so
// the API always wins over a file of the same name.
func (s *Server) setupRoutes() {
	s.engine.Use(recover.New())
	s.engine.Use(cors.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	s.engine.Static("/", s.env.PublicDir)
}

func (s *Server) Run() error {
	s.setupRoutes()

	s.log.WithField("port", s.env.Port).Info("Server listening")
	return s.engine.Listen(fmt.Sprintf(":%s", s.env.Port))
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases the store, cache and inference clients.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)
	return errors.Join(err, s.closeAll(ctx))
}

func (s *Server) closeAll(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func closeWith(c io.Closer) func(context.Context) error {
	return func(context.Context) error {
		return c.Close()
	}
}
