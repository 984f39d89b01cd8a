package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
	"github.com/KirkDiggler/battle-api/internal/config"
	"github.com/KirkDiggler/battle-api/internal/pkg/telemetry"
)

const serviceName = "battle-api"

var flags struct {
	port         int
	redisAddr    string
	maxTurns     int
	seedFile     string
	rngSeed      uint64
	idStyle      string
	logLevel     string
	logFormat    string
	otelEndpoint string
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Battle API gRPC server. Settings come from BATTLE_API_* environment
variables; flags given on the command line win.`,
	RunE: runServer,
}

func init() {
	bindServerFlags(serverCmd.Flags())
}

func bindServerFlags(f *pflag.FlagSet) {
	f.IntVar(&flags.port, "port", 50051, "gRPC server port")
	f.StringVar(&flags.redisAddr, "redis-addr", "", "Redis address; empty keeps records in memory")
	f.IntVar(&flags.maxTurns, "max-turns", 1000, "Turn limit of a single battle before it is drawn")
	f.StringVar(&flags.seedFile, "seed-file", "", "YAML file of moves, combatants and trainers to load at startup")
	f.Uint64Var(&flags.rngSeed, "rng-seed", 0, "Seed for reproducible battles; 0 uses the crypto roller")
	f.StringVar(&flags.idStyle, "id-style", "sequential", "Record id style: sequential or uuid")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	f.StringVar(&flags.otelEndpoint, "otel-endpoint", "", "OTLP/HTTP collector endpoint; empty disables trace export")
}

// loadConfig reads the environment and lets explicitly set flags override it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("port") {
		cfg.Port = flags.port
	}
	if f.Changed("redis-addr") {
		cfg.RedisAddr = flags.redisAddr
	}
	if f.Changed("max-turns") {
		cfg.MaxTurns = flags.maxTurns
	}
	if f.Changed("seed-file") {
		cfg.SeedFile = flags.seedFile
	}
	if f.Changed("rng-seed") {
		cfg.RNGSeed = flags.rngSeed
	}
	if f.Changed("id-style") {
		cfg.IDStyle = flags.idStyle
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if f.Changed("otel-endpoint") {
		cfg.OTelEndpoint = flags.otelEndpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	svc, cleanup, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, healthServer := newGRPCServer(svc.handler)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(battlev1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port, "store", svc.storeKind)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer builds a server with logging, panic recovery and tracing, and registers
// the battle and health services
func newGRPCServer(handler battlev1.BattleServiceServer) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	battlev1.RegisterBattleServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	return srv, healthServer
}

// logFunc routes middleware logs to slog; the middleware levels share slog's values
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
