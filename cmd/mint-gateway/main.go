package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/goodnatureofminers/cryptocator-backend/internal/chain"
	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/journal"
	"github.com/goodnatureofminers/cryptocator-backend/internal/metrics"
	"github.com/goodnatureofminers/cryptocator-backend/internal/mint"
	"github.com/goodnatureofminers/cryptocator-backend/internal/page"
	"github.com/goodnatureofminers/cryptocator-backend/internal/stats"
	"github.com/goodnatureofminers/cryptocator-backend/internal/store"
	"github.com/goodnatureofminers/cryptocator-backend/internal/transport"
	"github.com/goodnatureofminers/cryptocator-backend/internal/wallet"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type config struct {
	Addr     string `long:"addr" env:"MINT_GATEWAY_ADDR" description:"gRPC health address" default:":8000"`
	RestAddr string `long:"rest-addr" env:"MINT_GATEWAY_REST_ADDR" description:"REST address" default:":8001"`

	RPCURL         string `long:"rpc-url" env:"MINT_GATEWAY_RPC_URL" description:"Ethereum JSON-RPC endpoint" required:"true"`
	ChainID        uint64 `long:"chain-id" env:"MINT_GATEWAY_CHAIN_ID" description:"expected chain id" default:"11155111"`
	FalconsAddress string `long:"falcons-address" env:"MINT_GATEWAY_FALCONS_ADDRESS" description:"Falcons contract address" required:"true"`
	WhalesAddress  string `long:"whales-address" env:"MINT_GATEWAY_WHALES_ADDRESS" description:"Whales contract address" required:"true"`

	PrivateKey         string `long:"private-key" env:"MINT_GATEWAY_PRIVATE_KEY" description:"hex private key offered by the privatekey connector"`
	KeystorePath       string `long:"keystore-path" env:"MINT_GATEWAY_KEYSTORE_PATH" description:"keystore v3 file offered by the keystore connector"`
	KeystorePassphrase string `long:"keystore-passphrase" env:"MINT_GATEWAY_KEYSTORE_PASSPHRASE" description:"keystore passphrase"`

	FalconsFreePresale  bool          `long:"falcons-free-presale" env:"MINT_GATEWAY_FALCONS_FREE_PRESALE" description:"send Falcons presale mints without payment"`
	ReceiptPollInterval time.Duration `long:"receipt-poll-interval" env:"MINT_GATEWAY_RECEIPT_POLL_INTERVAL" description:"receipt polling interval" default:"2s"`
	ReadRPS             int           `long:"read-rps" env:"MINT_GATEWAY_READ_RPS" description:"max contract reads per second" default:"20"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"MINT_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN for the mint journal; journal disabled when empty"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"MINT_GATEWAY_JOURNAL_FLUSH_SIZE" description:"mint events per journal batch" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"MINT_GATEWAY_JOURNAL_FLUSH_INTERVAL" description:"max delay before journal events are written" default:"5s"`
	JournalRPS           int           `long:"journal-rps" env:"MINT_GATEWAY_JOURNAL_RPS" description:"max journal inserts per second" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("mint gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	deployment, err := contracts.NewDeployment(cfg.ChainID, cfg.FalconsAddress, cfg.WhalesAddress)
	if err != nil {
		return fmt.Errorf("init deployment: %w", err)
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial rpc: %w", err)
	}
	defer eth.Close()

	state := store.New()
	session := wallet.NewSession(cfg.ChainID, state, logger, connectors(cfg)...)

	client := chain.NewClient(eth, deployment, session, metrics.NewRPCClient(cfg.ChainID), cfg.ReceiptPollInterval)
	if err := client.VerifyChain(ctx, cfg.ChainID); err != nil {
		return err
	}

	mintJournal, closeJournal, err := newJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	loader := stats.NewLoader(client, deployment, metrics.NewStatsLoader(), logger, cfg.ReadRPS)
	orchestrator := mint.NewOrchestrator(
		client,
		loader,
		session,
		state,
		mintJournal,
		metrics.NewMintOrchestrator(),
		deployment,
		mint.Options{FalconsFreePresale: cfg.FalconsFreePresale},
		logger,
	)
	defer orchestrator.Shutdown()
	if cfg.FalconsFreePresale {
		logger.Warn("falcons presale mints are sent without payment")
	}

	navigator := page.NewNavigator(session, state, loader, orchestrator, logger)

	grpcServer, err := startGRPCServer(ctx, cfg.Addr, logger)
	if err != nil {
		return err
	}
	defer grpcServer.GracefulStop()

	return serveHTTP(ctx, cfg.RestAddr, navigator, orchestrator, state, logger)
}

func connectors(cfg config) []wallet.Connector {
	var out []wallet.Connector
	if cfg.PrivateKey != "" {
		out = append(out, wallet.NewPrivateKeyConnector(cfg.PrivateKey))
	}
	if cfg.KeystorePath != "" {
		out = append(out, wallet.NewKeystoreConnector(cfg.KeystorePath, cfg.KeystorePassphrase))
	}
	return out
}

// newJournal returns the ClickHouse-backed journal, or a no-op one when no DSN is set.
func newJournal(ctx context.Context, cfg config, logger *zap.Logger) (mint.Journal, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("mint journal disabled")
		return journal.Nop{}, func() {}, nil
	}

	repo, err := journal.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init journal repository: %w", err)
	}
	j := journal.New(repo, journal.Config{
		FlushSize:     cfg.JournalFlushSize,
		FlushInterval: cfg.JournalFlushInterval,
		RPS:           cfg.JournalRPS,
	}, logger)
	j.Start(context.WithoutCancel(ctx))

	return j, func() {
		j.Stop()
		if err := repo.Close(); err != nil {
			logger.Error("failed to close journal repository", zap.Error(err))
		}
	}, nil
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) (*grpc.Server, error) {
	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	health := transport.RegisterHealth(grpcServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		health.Shutdown()
	}()
	return grpcServer, nil
}

func serveHTTP(ctx context.Context, addr string, console transport.Console, minter transport.Minter, state transport.State, logger *zap.Logger) error {
	gw := gwruntime.NewServeMux()
	if _, err := transport.NewRESTHandler(gw, console, minter, state, logger); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
