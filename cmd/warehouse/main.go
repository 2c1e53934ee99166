package main

import (
	"context"

	clientshandler "freezestore/internal/clients/handler"
	clientsrepo "freezestore/internal/clients/repository"
	clientsservice "freezestore/internal/clients/service"
	clientsvalidator "freezestore/internal/clients/validator"
	dashboardhandler "freezestore/internal/dashboard/handler"
	dashboardservice "freezestore/internal/dashboard/service"
	"freezestore/internal/events"
	"freezestore/internal/pricing"
	reservationshandler "freezestore/internal/reservations/handler"
	reservationsrepo "freezestore/internal/reservations/repository"
	reservationsservice "freezestore/internal/reservations/service"
	reservationsvalidator "freezestore/internal/reservations/validator"
	"freezestore/internal/seed"
	spaceshandler "freezestore/internal/spaces/handler"
	spacesservice "freezestore/internal/spaces/service"
	"freezestore/internal/store"
	"freezestore/internal/sweep"
	ticketshandler "freezestore/internal/tickets/handler"
	ticketsservice "freezestore/internal/tickets/service"
	"freezestore/pkg/app"
	"freezestore/pkg/clock"
	"freezestore/pkg/config"
	"freezestore/pkg/contracts"
	"freezestore/pkg/kafka"
	kafka_config "freezestore/pkg/kafka/config"
	kafka_middleware "freezestore/pkg/kafka/middleware"
)

const ServiceName = "warehouse"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	kafkaCfg := kafka_config.Load()
	if err := kafkaCfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	cfg.Log.Info("Starting Warehouse service")
	if cfg.UsesMongo() {
		cfg.SetMongo()
	}

	clk := clock.NewSystem()
	pricingCfg := pricing.Config{
		PricePerDayPerSpace: cfg.PricePerDayPerSpace,
		HandlingFee:         cfg.HandlingFee,
		TaxRate:             cfg.TaxRate,
	}

	st := initStore(cfg, clk)
	if cfg.SeedData {
		if _, err := seed.Load(context.Background(), st, pricingCfg, clk, cfg.Log); err != nil {
			cfg.Log.Fatal("Failed to load seed data", "error", err)
		}
	}

	publisher := initPublisher(cfg, kafkaCfg)

	sweeper := sweep.New(st, publisher, cfg.Log)
	if err := sweeper.Schedule(cfg.ExpirySweepSchedule); err != nil {
		cfg.Log.Fatal("Failed to schedule expiry sweep", "error", err)
	}
	sweeper.Start()

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown("expiry-sweep", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})
	serverApp.OnShutdown("event-publisher", func(context.Context) error {
		return publisher.Close()
	})
	serverApp.SetApp(initHandlers(cfg, st, pricingCfg, publisher)...)
	serverApp.Run()
}

func initStore(cfg *config.Config, clk clock.Clock) *store.Store {
	var (
		clientRepo      clientsrepo.ClientRepository
		reservationRepo reservationsrepo.ReservationRepository
	)
	if cfg.UsesMongo() {
		clientRepo = clientsrepo.NewMongoClientRepository(cfg)
		reservationRepo = reservationsrepo.NewMongoReservationRepository(cfg)
	} else {
		clientRepo = clientsrepo.NewMemoryClientRepository()
		reservationRepo = reservationsrepo.NewMemoryReservationRepository()
	}

	st := store.New(clientRepo, reservationRepo, clk, cfg.Log)
	if err := st.Load(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to load store", "backend", cfg.StoreBackend, "error", err)
	}
	return st
}

func initPublisher(cfg *config.Config, kafkaCfg *kafka_config.Config) events.Publisher {
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Kafka disabled, domain events will not be published")
		return events.NewNoopPublisher()
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.Topic)
	return events.NewKafkaPublisher(producer, ServiceName, kafkaCfg.PublishTimeout)
}

func initHandlers(cfg *config.Config, st *store.Store, pricingCfg pricing.Config, publisher events.Publisher) []contracts.Handler {
	clientService := clientsservice.NewClientService(st, clientsvalidator.NewClientValidator(cfg.Log), publisher, cfg.Log)
	reservationService := reservationsservice.NewReservationService(
		st,
		reservationsvalidator.NewReservationValidator(cfg.Log),
		pricingCfg,
		publisher,
		cfg.Log,
	)

	cfg.Log.Info("Warehouse services initialized", "store_backend", cfg.StoreBackend)
	return []contracts.Handler{
		clientshandler.NewClientHandler(clientService, cfg.Log),
		reservationshandler.NewReservationHandler(reservationService, cfg.Log),
		spaceshandler.NewSpaceHandler(spacesservice.NewSpaceService(st, cfg.Log), cfg.Log),
		dashboardhandler.NewDashboardHandler(dashboardservice.NewDashboardService(st, cfg.Log), cfg.Log),
		ticketshandler.NewTicketHandler(ticketsservice.NewTicketService(st, cfg.Log), cfg.Log),
	}
}
