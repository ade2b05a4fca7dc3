package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/laglace/stock-portal/docs"
	appanalytics "github.com/laglace/stock-portal/internal/application/analytics"
	"github.com/laglace/stock-portal/internal/application/auth"
	appinventory "github.com/laglace/stock-portal/internal/application/inventory"
	"github.com/laglace/stock-portal/internal/application/orders"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/reporting"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/application/usecase"
	"github.com/laglace/stock-portal/internal/domain/entity"
	infraai "github.com/laglace/stock-portal/internal/infrastructure/ai"
	"github.com/laglace/stock-portal/internal/infrastructure/kafka"
	infrapdf "github.com/laglace/stock-portal/internal/infrastructure/pdf"
	"github.com/laglace/stock-portal/internal/infrastructure/persistence"
	"github.com/laglace/stock-portal/internal/infrastructure/redisx"
	infraxlsx "github.com/laglace/stock-portal/internal/infrastructure/xlsx"
	httpRouter "github.com/laglace/stock-portal/internal/interfaces/http"
	"github.com/laglace/stock-portal/internal/seed"
	"github.com/laglace/stock-portal/pkg/config"
	"github.com/laglace/stock-portal/pkg/logger"
)

// @title                       LAGLACE Stock Portal API
// @version                     1.0
// @description                 Solicitudes de stock por canal, mesa de bodega y reportes.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Persistence.Driver).
		Msg("iniciando aplicación")

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redisx.New(appCtx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
	}

	gateway, closeGateway, err := persistence.Open(appCtx, cfg, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("gateway de persistencia")
	}
	defer closeGateway()

	seedHash, err := auth.HashPassword(cfg.Auth.SeedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña inicial")
	}
	store := state.NewStore(gateway, cfg.Persistence.SnapshotKey)
	if err := store.Load(appCtx, func() entity.State { return seed.State(seedHash, time.Now()) }); err != nil {
		log.Fatal().Err(err).Str("key", cfg.Persistence.SnapshotKey).Msg("cargar estado")
	}

	var events ports.EventPublisher = ports.NoopPublisher{}
	var producer *kafka.Producer
	if cfg.Kafka.Enabled() {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic, cfg.App.Name, cfg.Kafka.ProducerBufferSize)
		producer.Start(appCtx)
		events = producer
	}

	var dashboardCache ports.DashboardCache = ports.NoopDashboardCache{}
	if rdb != nil {
		dashboardCache = redisx.NewDashboardCache(rdb, cfg.Cache.DashboardTTL)
	}

	pinGate, err := auth.NewPINGate(cfg.Auth.AdminPIN, cfg.Auth.AdminPINHash)
	if err != nil {
		log.Fatal().Err(err).Msg("ADMIN_PIN_HASH inválido")
	}
	if !pinGate.Enabled() {
		log.Warn().Msg("sin PIN de administrador: confirmaciones y ajustes quedarán bloqueados")
	}

	llm, err := infraai.NewFromConfig(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("proveedor de IA")
	}

	ordersUC := orders.NewUseCase(store, events)
	deps := httpRouter.RouterDeps{
		OrdersUC:    ordersUC,
		StockUC:     appinventory.NewStockUseCase(store, events),
		ProductUC:   usecase.NewProductUseCase(store),
		UserUC:      usecase.NewUserUseCase(store),
		DirectoryUC: usecase.NewDirectoryUseCase(store),
		SettingsUC:  usecase.NewSettingsUseCase(store),
		DashboardUC: appanalytics.NewDashboardUseCase(store, dashboardCache),
		ReportUC:    reporting.NewUseCase(store, infrapdf.NewReportGenerator(cfg.Report.PDFFontPath), infraxlsx.NewReportWriter()),
		AIUC:        usecase.NewAIUseCase(llm, store, cfg.AI.Timeout),
		AuthUC: auth.NewAuthUseCase(store, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		PINGate:   pinGate,
		JWTSecret: cfg.JWT.Secret,
	}

	// Pedidos remotos por Kafka; sin Redis no hay dedup y se confía en que Import ignora ids repetidos.
	if cfg.Kafka.Enabled() && cfg.Kafka.RemoteOrdersTopic != "" {
		var dedup kafka.Deduper
		if rdb != nil {
			dedup = redisx.NewDeduper(rdb, cfg.Kafka.GroupID)
		}
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RemoteOrdersTopic, cfg.Kafka.ConsumerWorkers)
		go func() {
			if err := consumer.Start(appCtx, kafka.NewRemoteOrderHandler(ordersUC, dedup)); err != nil {
				log.Error().Err(err).Str("topic", cfg.Kafka.RemoteOrdersTopic).Msg("consumidor de pedidos remotos detenido")
			}
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // imágenes en data URL
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LAGLACE Stock Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "revision": store.Revision()})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Detiene el consumidor y deja que el productor vacíe su buffer.
	stop()
	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}

	log.Info().Msg("aplicación detenida")
}
