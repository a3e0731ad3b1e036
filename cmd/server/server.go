package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/junglerando/rando-api/internal/config"
	"github.com/junglerando/rando-api/internal/executor"
	"github.com/junglerando/rando-api/internal/generator"
	"github.com/junglerando/rando-api/internal/handlers/api/v1alpha1"
	"github.com/junglerando/rando-api/internal/orchestrators/generation"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	"github.com/junglerando/rando-api/internal/pkg/idgen"
	redisclient "github.com/junglerando/rando-api/internal/redis"
	"github.com/junglerando/rando-api/internal/repositories/errorlog"
	"github.com/junglerando/rando-api/internal/repositories/results"
	"github.com/junglerando/rando-api/internal/repositories/seeds"
)

// healthService is the name generation readiness is reported under
const healthService = "rando.v1alpha1.Generation"

var (
	httpPort   int
	grpcPort   int
	redisAddr  string
	maxWorkers int
	jobTimeout time.Duration
	hosted     bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the generation server",
	Long: `Start the HTTP generation API and the gRPC health server.

Settings are read from the environment (RANDO_*, HOSTED_SERVER); flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8000, "HTTP server port")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC health server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address")
	serverCmd.Flags().IntVar(&maxWorkers, "workers", executor.DefaultMaxWorkers, "Concurrent generations")
	serverCmd.Flags().DurationVar(&jobTimeout, "timeout", executor.DefaultTimeout, "Wall clock limit per generation")
	serverCmd.Flags().BoolVar(&hosted, "hosted", false, "Keep seeds and generation errors")
}

// loadConfig reads the environment and applies any flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("workers") {
		cfg.MaxWorkers = maxWorkers
	}
	if flags.Changed("timeout") {
		cfg.JobTimeout = jobTimeout
	}
	if flags.Changed("hosted") {
		cfg.Hosted = hosted
	}

	return cfg, cfg.Validate()
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clk := clock.New()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	resultsRepo, err := results.NewRedisRepository(&results.Config{Client: redisClient, Clock: clk})
	if err != nil {
		return fmt.Errorf("failed to create results repository: %w", err)
	}

	orchestratorCfg := &generation.Config{
		ResultsRepo: resultsRepo,
		Clock:       clk,
		Hosted:      cfg.Hosted,
		ResultTTL:   cfg.ResultTTL,
	}

	if cfg.Hosted {
		seedsRepo, err := seeds.NewRedisRepository(&seeds.Config{Client: redisClient, Clock: clk})
		if err != nil {
			return fmt.Errorf("failed to create seeds repository: %w", err)
		}
		errorLogRepo, err := errorlog.Open(&errorlog.Config{Path: cfg.ErrorLogPath, Clock: clk})
		if err != nil {
			return fmt.Errorf("failed to open error log: %w", err)
		}
		defer func() { _ = errorLogRepo.Close() }()

		orchestratorCfg.SeedsRepo = seedsRepo
		orchestratorCfg.ErrorLogRepo = errorLogRepo
	}

	gen, err := generator.New(&generator.Config{IDGenerator: idgen.NewUUID("")})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	orchestratorCfg.Generator = gen

	pool, err := executor.New[*generator.GenerateOutput](&executor.Config{
		MaxWorkers: cfg.MaxWorkers,
		Timeout:    cfg.JobTimeout,
		Clock:      clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	orchestratorCfg.Pool = pool

	generationService, err := generation.NewOrchestrator(orchestratorCfg)
	if err != nil {
		return fmt.Errorf("failed to create generation orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewGenerateHandler(&v1alpha1.GenerateHandlerConfig{
		GenerationService: generationService,
		CORSOrigin:        cfg.CORSOrigin,
	})
	if err != nil {
		return fmt.Errorf("failed to create generate handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	errChan := make(chan error, 2)
	go func() {
		log.Printf("gRPC health server starting on port %d...", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		log.Printf("HTTP server starting on port %d (workers=%d, hosted=%t)...", cfg.HTTPPort, cfg.MaxWorkers, cfg.Hosted)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Println("Received shutdown signal, gracefully stopping...")
	case serveErr = <-errChan:
	}

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		log.Printf("Worker pool shutdown: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Println("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		log.Println("Server stopped gracefully")
	}

	return serveErr
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
