// README: API server entry point.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmate/internal/config"
	httptransport "tripmate/internal/http"
	"tripmate/internal/infra"
	"tripmate/internal/logger"
	"tripmate/internal/modules/chat"
	"tripmate/internal/modules/user"
	"tripmate/internal/modules/vault"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("tripmate-api", "info")
		l.Fatal().Err(err).Msg("load config")
	}
	log := logger.New("tripmate-api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := infra.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer db.Close()

	rdb := infra.NewRedis(cfg.RedisAddr)
	defer rdb.Close()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("init firebase verifier")
		}
		log.Info().Str("project", cfg.Firebase.ProjectID).Msg("auth enabled")
	} else {
		log.Warn().Msg("auth disabled, no firebase project configured")
	}

	userSvc := user.NewService(user.NewStore(db, rdb, cfg.ProfileCacheTTL))
	chatSvc := chat.NewService(chat.NewStore(db))
	vaultSvc := vault.NewService(vault.NewStore(db), vault.NewBlobStorage(cfg.MediaRoot))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Users:    userSvc,
		Chat:     chatSvc,
		Vault:    vaultSvc,
		DB:       db,
		Redis:    rdb,
		Verifier: verifier,
		Log:      log,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
	log.Info().Msg("stopped")
}
