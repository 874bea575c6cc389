package main

import (
	"context"
	"fmt"

	"crisis-alert-srv/config"
	"crisis-alert-srv/config/postgre"
	configRedis "crisis-alert-srv/config/redis"
	"crisis-alert-srv/internal/alert"
	alertUsecase "crisis-alert-srv/internal/alert/usecase"
	chatUsecase "crisis-alert-srv/internal/chat/usecase"
	"crisis-alert-srv/internal/httpserver"
	"crisis-alert-srv/internal/metrics"
	"crisis-alert-srv/internal/risk"
	"crisis-alert-srv/internal/riskevent/repository"
	riskEventPostgre "crisis-alert-srv/internal/riskevent/repository/postgre"
	riskEventRedis "crisis-alert-srv/internal/riskevent/repository/redis"
	riskEventUsecase "crisis-alert-srv/internal/riskevent/usecase"
	"crisis-alert-srv/pkg/llm"
	"crisis-alert-srv/pkg/log"
	pkgRedis "crisis-alert-srv/pkg/redis"
	"crisis-alert-srv/pkg/telegram"
	"crisis-alert-srv/pkg/webhook"
)

// @title Crisis Alert API
// @description Risk screening for support chat messages with responder alerting.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	m := metrics.New()

	// Risk artifacts
	lexicon, err := risk.LoadLexicon(cfg.Risk.LexiconPath)
	if err != nil {
		logger.Error(ctx, "Failed to load risk lexicon: ", err)
		return
	}
	responses, err := risk.LoadResponses(cfg.Risk.ResponsesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load response catalogs: ", err)
		return
	}
	logger.Infof(ctx, "Risk lexicon version %s loaded", lexicon.Version)

	// Risk event sinks. Both are optional: the warn log line is always written.
	var repo repository.Repository
	var publisher repository.Publisher

	db, err := connectPostgres(ctx, logger, cfg.Postgres)
	if err != nil {
		logger.Warnf(ctx, "PostgreSQL unavailable, risk events will not be persisted: %v", err)
	} else if db != nil {
		defer postgre.Disconnect(ctx, logger, db)
		repo = riskEventPostgre.New(logger, db)
	}

	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, logger, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, risk events will not be streamed: %v", err)
			redisClient = nil
		} else {
			defer configRedis.Disconnect(redisClient)
			publisher = riskEventRedis.New(logger, redisClient, cfg.Redis.Stream, cfg.Redis.StreamMaxLen)
		}
	}

	// Alert channels. A missing channel is reported on every dispatch, not here.
	var wh webhook.IWebhook
	if hook, err := webhook.New(logger, webhook.Config{
		URL:        cfg.Alert.Webhook.URL,
		Timeout:    cfg.Alert.Webhook.Timeout,
		RetryCount: cfg.Alert.Webhook.RetryCount,
		RetryDelay: cfg.Alert.Webhook.RetryDelay,
	}); err != nil {
		logger.Warnf(ctx, "Primary alert channel disabled: %v", err)
	} else {
		wh = hook
		defer wh.Close()
	}

	var bot telegram.IBot
	if b, err := telegram.New(logger, telegram.Config{
		Token:      cfg.Alert.Telegram.Token,
		BaseURL:    cfg.Alert.Telegram.BaseURL,
		Timeout:    cfg.Alert.Telegram.Timeout,
		RetryCount: cfg.Alert.Telegram.RetryCount,
	}); err != nil {
		logger.Warnf(ctx, "Secondary alert channel disabled: %v", err)
	} else {
		bot = b
		defer bot.Close()
	}

	llmClient := llm.New(logger, llm.Config{
		BaseURL:      cfg.LLM.BaseURL,
		APIKey:       cfg.LLM.APIKey,
		Model:        cfg.LLM.Model,
		SystemPrompt: cfg.LLM.SystemPrompt,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		Timeout:      cfg.LLM.Timeout,
	})
	if !llmClient.Configured() {
		logger.Warn(ctx, "LLM API key not set, chat replies will use the fallback text")
	}

	// Use cases
	alertUC := alertUsecase.New(logger, wh, bot, m, alert.Config{
		ChatID:      cfg.Alert.Telegram.ChatID,
		ServiceName: cfg.Alert.ServiceName,
		Timeout:     cfg.Alert.DispatchTimeout,
	})
	riskEventUC := riskEventUsecase.New(logger, repo, publisher, m, cfg.RiskEvent.Timeout)
	chatUC := chatUsecase.New(logger, risk.NewScorer(lexicon), responses, alertUC, riskEventUC, llmClient, m)

	if cfg.Internal.Key == "" {
		logger.Warn(ctx, "INTERNAL_KEY not set, internal routes will reject every request")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Authentication & Security Configuration
		InternalKey: cfg.Internal.Key,
		CORS:        cfg.HTTPServer.CORS,

		// Domain
		ChatUC:      chatUC,
		AlertUC:     alertUC,
		RiskEventUC: riskEventUC,

		// External services
		DB:      db,
		Redis:   redisClient,
		Metrics: m,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
