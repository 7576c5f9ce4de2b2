// cmd/chat-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"rulecraft-chat/internal/common/cache"
	"rulecraft-chat/internal/common/config"
	"rulecraft-chat/internal/common/httpclient"
	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/gateways/chucknorris"
	"rulecraft-chat/internal/gateways/currency"
	"rulecraft-chat/internal/gateways/dictionary"
	"rulecraft-chat/internal/gateways/funfeeds"
	"rulecraft-chat/internal/gateways/movies"
	"rulecraft-chat/internal/gateways/news"
	"rulecraft-chat/internal/gateways/quotes"
	"rulecraft-chat/internal/gateways/recipes"
	"rulecraft-chat/internal/gateways/translate"
	"rulecraft-chat/internal/gateways/weather"
	"rulecraft-chat/internal/gateways/wiki"
	"rulecraft-chat/internal/responder"
	"rulecraft-chat/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting chat server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Optional gateway result cache ---
	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache, err = cache.New(cfg.Cache)
		if err == nil {
			err = resultCache.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("redis unavailable, continuing without cache", zap.Error(err))
			resultCache = nil
		} else {
			defer resultCache.Close()
			zapLog.Info("gateway cache connected", zap.String("address", cfg.Cache.Address))
		}
	}

	// --- Gateways ---
	hc := httpclient.NewClient(config.GetDuration(cfg.APIs.Timeout))

	gateways := responder.Gateways{
		Weather:    weather.NewClient(cfg.APIs.Weather, hc, resultCache, log),
		News:       news.NewClient(cfg.APIs.News, hc, resultCache, log),
		Dictionary: dictionary.NewClient(cfg.APIs.Dictionary, hc, log),
		Currency:   currency.NewClient(cfg.APIs.Currency, hc, log),
		Jokes:      chucknorris.NewClient(cfg.APIs.Jokes, hc, log),
		Quotes:     quotes.NewClient(cfg.APIs.Quotes, hc, log),
		Movies:     movies.NewClient(cfg.APIs.Movies, hc, log),
		Recipes:    recipes.NewClient(cfg.APIs.Recipes, hc, log),
		Translate:  translate.NewClient(cfg.APIs.Translate, hc, log),
		Trivia:     funfeeds.NewClient(cfg.APIs.CatFacts, cfg.APIs.DogImages, hc, log),
		Wiki:       wiki.NewClient(cfg.APIs.Wiki, hc, resultCache, log),
	}

	bot := responder.New(gateways, responder.WithLogger(log))

	// --- HTTP server ---
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.New(bot, log).Handler(),
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
}
