package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	catalogapp "github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/catalog"
	orderapp "github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/order"
	userapp "github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/user"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
	ginserver "github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/http/gin"
	kafkainfra "github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/messaging/kafka"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/persistence/postgres"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/interfaces/http/handler"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/interfaces/http/router"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := logger.NewZapLogger(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.MigrateURL()); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	pool, err := postgres.NewPool(cfg.DB, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	var publisher orderapp.Publisher
	if cfg.Kafka.Enabled {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, log)
		if err != nil {
			return err
		}
		defer producer.Close()
		publisher = producer
	}

	handlers := router.Handlers{
		Health:      handler.NewHealthHandler(pool, log),
		Users:       handler.NewUserHandler(userapp.NewService(postgres.NewUserRepository(pool), log), log),
		Orders:      handler.NewOrderHandler(orderapp.NewService(postgres.NewOrderRepository(pool), publisher, log), log),
		Products:    catalogHandler[catalog.Product]("product", "Producto", postgres.NewProductRepository(pool), productMessages, log),
		Clients:     catalogHandler[catalog.Client]("client", "Cliente", postgres.NewClientRepository(pool), clientMessages, log),
		Suppliers:   catalogHandler[catalog.Supplier]("supplier", "Proveedor", postgres.NewSupplierRepository(pool), supplierMessages, log),
		Carriers:    catalogHandler[catalog.Carrier]("carrier", "Transportadora", postgres.NewCarrierRepository(pool), carrierMessages, log),
		Insurances:  catalogHandler[catalog.Insurance]("insurance", "Seguro", postgres.NewInsuranceRepository(pool), insuranceMessages, log),
		BorderCosts: catalogHandler[catalog.BorderCost]("border cost", "Costo fronterizo", postgres.NewBorderCostRepository(pool), borderCostMessages, log),
		TaxRates:    catalogHandler[catalog.TaxRate]("tax rate", "Tasa impositiva", postgres.NewTaxRateRepository(pool), taxRateMessages, log),
	}

	engine := ginserver.NewEngine(cfg.Server, log)
	router.RegisterRoutes(engine, handlers)

	return ginserver.NewServer(cfg.Server, engine, log).Run(ctx)
}

func catalogHandler[T catalog.Entity](
	name, entity string,
	repo repository.CatalogRepository[T],
	msgs handler.CatalogMessages,
	log logger.Logger,
) *handler.CatalogHandler[T] {
	return handler.NewCatalogHandler[T](catalogapp.NewService[T](name, entity, repo, log), msgs, log)
}
