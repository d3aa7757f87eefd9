package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
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

	"github.com/KirkDiggler/arena-api/internal/config"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/chat"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/inventory"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/world"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
	"github.com/KirkDiggler/arena-api/internal/repositories/entities"
	"github.com/KirkDiggler/arena-api/internal/repositories/inventories"
	"github.com/KirkDiggler/arena-api/internal/repositories/matchqueue"
	"github.com/KirkDiggler/arena-api/internal/repositories/results"
	"github.com/KirkDiggler/arena-api/internal/repositories/rooms"
)

var (
	configPath string
	grpcPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the arena gRPC server with the world, chat, inventory, and matchmaking services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file (defaults and ARENA_ env vars apply when omitted)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
}

// services bundles the four bootstrap-reachable service surfaces. The
// capability transport dispatches calls onto these and onto the handles
// they mint.
type services struct {
	World       world.Service
	Chat        chat.Service
	Inventory   inventory.Service
	Matchmaking matchmaking.Service
}

func buildServices(cfg config.Config) (*services, error) {
	redisClient, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	clk := clock.New()

	resultRepo, err := results.NewRedisRepository(&results.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create result repository: %w", err)
	}

	worldSvc, err := world.NewOrchestrator(&world.Config{
		EntityRepo: entities.NewInMemory(),
		IDSequence: idgen.NewCounter(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world service: %w", err)
	}

	chatSvc, err := chat.NewOrchestrator(&chat.Config{
		RoomRepo:   rooms.NewInMemory(),
		IDSequence: idgen.NewCounter(),
		Clock:      clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	inventorySvc, err := inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: inventories.NewInMemory(),
		TradeIDGen:    idgen.NewUUID("trade"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory service: %w", err)
	}

	matchmakingSvc, err := matchmaking.NewOrchestrator(&matchmaking.Config{
		QueueRepo:  matchqueue.NewInMemory(),
		ResultRepo: resultRepo,
		TicketIDs:  idgen.NewCounter(),
		MatchIDs:   idgen.NewCounter(),
		Clock:      clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create matchmaking service: %w", err)
	}

	return &services{
		World:       worldSvc,
		Chat:        chatSvc,
		Inventory:   inventorySvc,
		Matchmaking: matchmakingSvc,
	}, nil
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "console" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}

	setupLogging(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	// Build the four service surfaces; the capability transport binds
	// them and dispatches calls onto the handles they mint.
	if _, err := buildServices(cfg); err != nil {
		return err
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range serviceNames {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on %s...", cfg.Server.Addr())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// serviceNames lists the service surfaces reported healthy once
// buildServices succeeds
var serviceNames = []string{
	"arena.api.v1.WorldService",
	"arena.api.v1.ChatService",
	"arena.api.v1.InventoryService",
	"arena.api.v1.MatchmakingService",
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
