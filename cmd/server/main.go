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

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"mealmatch/auth"
	mealgrpc "mealmatch/grpc"
	"mealmatch/moderation"
	"mealmatch/projection"
	pbaccount "mealmatch/proto/account"
	pbbargain "mealmatch/proto/bargain"
	"mealmatch/repositories"
	"mealmatch/runtime"
	"mealmatch/runtime/workers"
	"mealmatch/search"
	"mealmatch/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer (database and index
// cleanup included) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Storage (BadgerDB) & Search Index
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := search.OpenMealIndex(config.BlugeFilepath)
	if err != nil {
		return fmt.Errorf("meal index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing meal index...")
		_ = index.Close()
	}()

	// 3. Repositories & Catalog
	negotiationRepository := repositories.NewNegotiationRepository(db, log)
	mealRepository := repositories.NewMealRepository(db)
	orderRepository := repositories.NewOrderRepository(db, log)
	userRepository := repositories.NewUserRepository(db)

	if err = seedCatalog(log, mealRepository, index); err != nil {
		return fmt.Errorf("catalog seeding failed: %w", err)
	}

	// 4. Moderation
	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("loading censored words failed: %w", err)
	}
	log.Info("Moderation lists loaded", "languages", censored.Languages, "words", len(censored.Words))
	moderator, err := moderation.NewModerator(censored.Words, config.ModerationCharReplacement)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 5. Engine Services
	materializer := services.NewOrderMaterializer(orderRepository, config.DeliveryFee)
	bargainService := services.NewBargainService(log, negotiationRepository,
		mealRepository, materializer, &moderator, config.BargainExpiry)
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)

	// 6. Fan-out Runtime & Supervision
	registry := runtime.NewRegistry()
	dashboard := projection.NewDashboard()
	notifier := workers.NewNotifier(log, registry, config.BufferSize, config.SinkTimeout).
		Add(dashboard)
	healthWorker := workers.NewHealthWorker(log, config.MetricInterval)

	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(notifier, healthWorker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go supervisor.Run(ctx)

	// 7. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(auth.IdentityInterceptor))
	gateway := mealgrpc.NewGateway(log, bargainService, registry, notifier, config.ConnectionBufferSize)
	pbbargain.RegisterBargainServiceServer(s, mealgrpc.NewBargainServer(bargainService, gateway))
	pbbargain.RegisterOrderServiceServer(s, mealgrpc.NewOrderServer(orderRepository))
	pbbargain.RegisterMealServiceServer(s, mealgrpc.NewMealServer(log, mealRepository, index))
	pbaccount.RegisterAuthServiceServer(s, mealgrpc.NewAuthServer(authService))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	s.GracefulStop()
	supervisor.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "DEBUG":
		logLevel = slog.LevelDebug
	case "WARN":
		logLevel = slog.LevelWarn
	case "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
