package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "aspirebot-backend/internal/auth"
	"aspirebot-backend/internal/counsel"
	"aspirebot-backend/internal/llm"
	"aspirebot-backend/internal/llm/cohere"
	"aspirebot-backend/internal/llm/gemini"
	"aspirebot-backend/internal/shared/config"
	"aspirebot-backend/internal/shared/server"
	"aspirebot-backend/internal/shared/storage/db"
	"aspirebot-backend/internal/users"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	UsersRepo      users.Repo
	UsersService   *users.Service
	Providers      []llm.Generator
	CounselService *counsel.Service
	UsersHandler   *users.Handler
	CounselHandler *counsel.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		UserHandler:    app.UsersHandler,
		CounselHandler: app.CounselHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildProviders(cfg config.Config) ([]llm.Generator, error) {
	var providers []llm.Generator

	if strings.TrimSpace(cfg.CohereAPIKey) != "" {
		client, err := cohere.NewClient(cfg.CohereAPIKey, cfg.CohereModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, client)
	} else {
		log.Printf("bootstrap: COHERE_API_KEY empty; cohere provider disabled")
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, client)
	} else {
		log.Printf("bootstrap: GEMINI_API_KEY empty; gemini provider disabled")
	}

	if len(providers) == 0 && !isDevLike(cfg.Env) {
		return nil, fmt.Errorf("at least one provider API key is required")
	}
	return providers, nil
}

func buildServices(app *App) error {
	var userRepo users.Repo
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
	}

	providers, err := buildProviders(app.Config)
	if err != nil {
		return err
	}

	userSvc := users.NewService(userRepo)
	counselSvc := counsel.NewService(providers, app.Config.ProviderTimeout)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.UsersRepo = userRepo
	app.UsersService = userSvc
	app.Providers = providers
	app.CounselService = counselSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.CounselHandler = counsel.NewHandler(counselSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
