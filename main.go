package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/proraahi-core/server/internal/agent/graph"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	"github.com/proraahi-core/server/internal/agent/repo"
	"github.com/proraahi-core/server/internal/catalog"
	"github.com/proraahi-core/server/internal/core"
	api "github.com/proraahi-core/server/internal/http"
	"github.com/proraahi-core/server/internal/http/handlers"
	"github.com/proraahi-core/server/internal/travelinfo"
	"github.com/proraahi-core/server/pkg/breaker"
	logx "github.com/proraahi-core/server/pkg/logger"
	pkgpostgres "github.com/proraahi-core/server/pkg/postgres"
	pkgredis "github.com/proraahi-core/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis    pkgredis.Config
	Postgres pkgpostgres.Config
	HTTP     api.Config

	// LLM provider; an empty key runs on the local fallbacks only.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	NLU          model.NLUModelConfig
	Response     model.ResponseModelConfig
	Conversation model.ConversationConfig
	Workflow     model.WorkflowConfig
	CatalogLimit int `envconfig:"CATALOG_LIMIT" default:"20"`

	NLUBreaker      breaker.Config `envconfig:"NLU_BREAKER"`
	ResponseBreaker breaker.Config `envconfig:"RESPONSE_BREAKER"`

	TravelInfo travelinfo.Config
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logx.Warn().Err(err).Msg("Could not load .env file")
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}
	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Env), Service: "proraahi"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sessions      model.SessionStore           = repo.NewMemorySessionStore()
		conversations model.ConversationRepository = repo.NewMemoryConversationRepository()
	)
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
		}
		defer rdb.Close()
		sessions = repo.NewRedisSessionStore(rdb, envCfg.Conversation.SessionTTL)
		conversations = repo.NewRedisConversationRepository(rdb, envCfg.Conversation.TTL)
		logx.Info().Msg("Connected to Redis")
	} else {
		logx.Warn().Msg("REDIS_URL not set; sessions are kept in memory")
	}

	var store catalog.Store = catalog.NewMemoryStore()
	if envCfg.Postgres.Enabled() {
		db, err := envCfg.Postgres.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to connect to Postgres")
		}
		defer db.Close()
		store = catalog.NewPostgresStore(db)
		logx.Info().Msg("Connected to Postgres catalog")
	} else {
		logx.Warn().Msg("POSTGRES_URL not set; catalog is empty")
	}
	lookup := catalog.NewLookup(store, envCfg.CatalogLimit)

	engine, err := graph.BuildEngine(ctx, graph.Config{
		APIKey:           envCfg.APIKey,
		BaseURL:          envCfg.BaseURL,
		NLUModel:         envCfg.NLU,
		ResponseModel:    envCfg.Response,
		Conversation:     envCfg.Conversation,
		Workflow:         envCfg.Workflow,
		ConversationRepo: conversations,
		SessionStore:     sessions,
		Catalog:          lookup,
		NLUBreaker:       envCfg.NLUBreaker.New("nlu"),
		ResponseBreaker:  envCfg.ResponseBreaker.New("response"),
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build dialogue engine")
	}

	info, err := envCfg.TravelInfo.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build travel info service")
	}

	router := api.NewRouter(api.RouterDeps{
		Chat:    handlers.NewChatHandler(engine, envCfg.HTTP.ChatTimeout),
		Webhook: handlers.NewWebhookHandler(nlu.NewAssistant()),
		Catalog: handlers.NewCatalogHandler(lookup),
		Travel:  handlers.NewTravelHandler(info),
	})

	if err := api.Serve(ctx, envCfg.HTTP, router); err != nil {
		logx.Fatal().Err(err).Msg("HTTP server failed")
	}
	logx.Info().Msg("Server stopped")
}
