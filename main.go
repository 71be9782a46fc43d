package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"auction-market/internal/chain"
	"auction-market/internal/config"
	market "auction-market/internal/marketService"
	"auction-market/internal/repository"
	"auction-market/internal/server"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	signerKey, err := cfg.SignerKey()
	if err != nil {
		utils.Fatal("invalid signer key", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialCtx, cancelDial := context.WithTimeout(ctx, 15*time.Second)
	client, err := chain.Dial(dialCtx, cfg.RPCURL, chain.Config{
		FactoryAddress:   cfg.Factory(),
		RegistryAddress:  cfg.Registry(),
		ChainID:          cfg.ChainID,
		SignerKey:        signerKey,
		HistoryBlockSpan: cfg.HistoryBlockSpan,
		StartBlock:       cfg.StartBlock,
		RateLimit:        cfg.RPCRateLimit,
	})
	cancelDial()
	if err != nil {
		utils.Fatal("failed to connect to chain", map[string]any{"rpc_url": cfg.RPCURL, "error": err.Error()})
	}
	defer client.Close()

	store, closeStore := newStore(cfg)
	defer closeStore()

	// a nil writer keeps the service read-only
	var writer market.ChainWriter
	if signerKey != nil {
		writer = client
	} else {
		utils.Warn("no signer configured, write endpoints are disabled", nil)
	}

	svc := market.NewMarketService(client, writer, store, market.Options{
		ReadRetries:    cfg.ReadRetries,
		ReadRetryDelay: cfg.ReadRetryDelay,
		RevealWindow:   cfg.RevealWindow,
		MirrorTimeout:  cfg.MirrorTimeout,
	})

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		market.NewPoller(svc, cfg.PollInterval).Run(ctx)
	}()

	health := server.HealthInfo{ChainID: client.ChainID(), Registry: client.HasRegistry()}
	if signerKey != nil {
		health.Signer = client.SignerAddress().Hex()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.SetupRouter(svc, health),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Minute, // writes wait for a block confirmation
	}

	errChan := make(chan error, 1)
	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr, "chain_id": cfg.ChainID})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		utils.Error("server error", map[string]any{"error": err.Error()})
		stop()
	case <-ctx.Done():
		utils.Info("shutdown signal received", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}

	<-pollerDone
	svc.Wait()
	utils.Info("server stopped", nil)
}

// newStore returns the redis-backed store when REDIS_ADDR is set and the
// in-memory store otherwise.
func newStore(cfg *config.Config) (repository.MetadataStore, func()) {
	if cfg.RedisAddr == "" {
		utils.Info("using in-memory metadata store", nil)
		return repository.NewMemoryRepo(), func() {}
	}

	client, err := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
	}
	repo := repository.NewRedisRepo(client)
	utils.Info("using redis metadata store", map[string]any{"addr": cfg.RedisAddr, "db": cfg.RedisDB})

	return repo, func() {
		if err := repo.Close(); err != nil {
			utils.Warn("error closing redis client", map[string]any{"error": err.Error()})
		}
	}
}
