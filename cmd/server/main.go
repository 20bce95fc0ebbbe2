package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"charges/internal/calendar"
	"charges/internal/config"
	"charges/internal/domain"
	"charges/internal/events"
	"charges/internal/handler"
	"charges/internal/logging"
	"charges/internal/messaging/kafka"
	"charges/internal/messaging/noop"
	"charges/internal/port"
	"charges/internal/repository/postgres"
	"charges/internal/repository/settings"
	"charges/internal/router"
	"charges/internal/service"
	s3storage "charges/internal/storage/s3"
	"charges/internal/validation"
	"charges/internal/validation/factory"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	clock := calendar.NewSystemClock()
	zone, err := calendar.NewZonedDateTimeService(clock, cfg.Rules.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load market time zone: %w", err)
	}

	// Initialize repositories
	chargeRepo := postgres.NewChargeRepo(db)
	participantRepo := postgres.NewMarketParticipantRepo(db)
	rulesRepo := settings.NewRulesConfigurationRepo(cfg.Rules)

	// Initialize messaging
	var publisher port.EventPublisher
	switch cfg.Messaging.Provider {
	case "kafka":
		kp, err := kafka.NewPublisher(cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize kafka publisher: %w", err)
		}
		defer func() { _ = kp.Close() }()
		publisher = kp
	default:
		publisher = noop.NewPublisher(logger)
	}
	logger.Info("event publisher configured", zap.String("provider", cfg.Messaging.Provider))

	// Initialize storage
	var archive port.DocumentArchive
	if cfg.S3.Enabled {
		archive, err = s3storage.NewArchive(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
	}

	// Initialize validation
	validators := service.Validators{
		Information: validation.NewValidator[*domain.ChargeInformationCommand](
			factory.ChargeInformationInputRulesFactory{},
			factory.NewChargeInformationBusinessRulesFactory(chargeRepo, participantRepo, rulesRepo, zone),
		),
		Price: validation.NewValidator[*domain.ChargePriceCommand](
			factory.NewChargePriceInputRulesFactory(zone),
			factory.NewChargePriceBusinessRulesFactory(chargeRepo, participantRepo, rulesRepo, zone),
		),
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT)
	chargeSvc := service.NewChargeCommandService(
		validators, chargeRepo, participantRepo, publisher, archive,
		events.NewFactory(clock.Now), logger,
	)

	// Initialize handlers
	chargeH := handler.NewChargeHandler(chargeSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(logger, authSvc, chargeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
