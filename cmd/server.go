package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"dexgate/internal/bridge"
	"dexgate/internal/chain"
	"dexgate/internal/config"
	"dexgate/internal/core"
	"dexgate/internal/db"
	"dexgate/internal/http/handler"
	"dexgate/internal/http/handler/middleware"
	"dexgate/internal/http/payload"
	"dexgate/internal/http/server"
	"dexgate/internal/prices"
	"dexgate/internal/registry"
	"dexgate/internal/repository"
	"dexgate/internal/store"
	"dexgate/internal/swap"
	"dexgate/internal/wallet"
	"dexgate/pkg/jwt"
	"dexgate/pkg/log"
)

const priceRefreshInterval = 30 * time.Second

func Start() error {
	logger := log.NewZapLogger("dexgate", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	target, ok := registry.ChainByID(cfg.ChainID)
	if !ok {
		err := fmt.Errorf("unsupported chain id: %s", cfg.ChainID)
		logger.Errorw("failed to resolve target chain", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// storage driver
	var dexStore core.Store
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}
		repo := repository.NewStore(dbConn)
		if err := repo.MigrateAndSeed(); err != nil {
			logger.Errorw("failed to migrate and seed database", "error", err)
			return err
		}
		dexStore = repo
	default:
		mem := store.NewMemStore()
		if err := mem.MigrateAndSeed(); err != nil {
			logger.Errorw("failed to seed in-memory store", "error", err)
			return err
		}
		dexStore = mem
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	signer := wallet.NewKeyStoreSigner(cfg.KeystorePath)

	node, err := chain.NewService(logger, client, signer, common.HexToAddress(cfg.RouterAddress))
	if err != nil {
		logger.Errorw("failed to create chain service", "error", err)
		return err
	}

	// wallet session
	session := wallet.NewSession(logger, node, wallet.EthDialer{}, signer, cfg.KeystorePassphrase, target)
	if err := session.Connect(context.Background()); err != nil {
		// the gateway still serves prices and history without a wallet
		logger.Errorw("wallet session not connected at startup", "error", err)
	}

	wrapped := common.HexToAddress(cfg.WrappedNativeAddr)
	estimator := swap.NewEstimator(logger, node, wrapped)
	executor := swap.NewExecutor(logger, estimator, node, common.HexToAddress(cfg.RouterAddress), wrapped)

	bridger := bridge.NewOrchestrator(logger)

	feed := prices.NewFeed(logger)
	feed.Refresh()

	// dex service
	dex := core.NewService(
		logger,
		target,
		session,
		estimator,
		executor,
		bridger,
		feed,
		dexStore,
		jwtService)

	// handler
	dexHlr := handler.NewDexHandler(
		logger,
		payload.DecodeValidator{},
		dex)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, dexHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetPrices, dexHlr.HandleGetPrices)
	mux.HandleFunc(handler.CreateTransaction, dexHlr.HandleCreateTransaction)
	mux.HandleFunc(handler.GetTransactions, dexHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetBalances, dexHlr.HandleGetBalances)
	mux.HandleFunc(handler.QuoteSwap, dexHlr.HandleQuote)
	mux.HandleFunc(handler.ExecuteSwap, dexHlr.HandleExecuteSwap)
	mux.HandleFunc(handler.InitiateBridge, dexHlr.HandleInitiateBridge)
	mux.HandleFunc(handler.GetBridgeTransfers, dexHlr.HandleGetBridgeTransfers)

	stopPrices := make(chan struct{})
	defer close(stopPrices)
	go refreshPrices(feed, stopPrices)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func refreshPrices(feed *prices.Feed, stop <-chan struct{}) {
	ticker := time.NewTicker(priceRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			feed.Refresh()
		}
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
